package triage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_EndToEnd(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.txt", "hello world")
	writeFile(t, root, "b.log", "nothing here")

	result, err := Search(root, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, []string{a}, result.Hits)

	result, err = Search(root, "hello", "log")
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "notes.md", "first line\nThe PassWord is here\nlast")

	result, err := Search(root, "  password ", "")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, result.Hits)
	assert.Equal(t, "password", result.Keyword)
}

func TestSearch_ExtensionFilterIgnoresCase(t *testing.T) {
	root := t.TempDir()
	upper := writeFile(t, root, "REPORT.TXT", "secret")
	writeFile(t, root, "report.csv", "secret")

	result, err := Search(root, "secret", " Txt ")
	require.NoError(t, err)
	assert.Equal(t, []string{upper}, result.Hits)
}

func TestSearch_RecursesDepthFirst(t *testing.T) {
	root := t.TempDir()
	first := writeFile(t, root, "a/deep/one.txt", "needle")
	second := writeFile(t, root, "b.txt", "needle")
	writeFile(t, root, "c/miss.txt", "haystack")

	result, err := Search(root, "needle", "")
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, result.Hits)
}

func TestSearch_SkipsLargeFiles(t *testing.T) {
	root := t.TempDir()

	big := strings.Repeat("x", int(MaxSearchFileSize)) + "\nkeyword\n"
	writeFile(t, root, "big.txt", big)

	limit := "keyword" + strings.Repeat("y", int(MaxSearchFileSize)-len("keyword"))
	atLimit := writeFile(t, root, "limit.txt", limit)

	result, err := Search(root, "keyword", "")
	require.NoError(t, err)
	assert.Equal(t, []string{atLimit}, result.Hits)
}

func TestSearch_EmptyKeywordRejected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "anything")

	for _, kw := range []string{"", "   ", "\t"} {
		result, err := Search(root, kw, "")
		assert.True(t, errors.Is(err, ErrEmptyKeyword), "keyword %q: got %v", kw, err)
		assert.Nil(t, result)
	}
}

func TestSearch_InvalidRoot(t *testing.T) {
	_, err := Search(filepath.Join(t.TempDir(), "missing"), "x", "")
	assert.True(t, errors.Is(err, ErrInvalidPath))
}

func TestSearch_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	hit := writeFile(t, root, "a.txt", "loop test")
	if err := os.Symlink(root, filepath.Join(root, "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	result, err := Search(root, "loop", "")
	require.NoError(t, err)
	assert.Equal(t, []string{hit}, result.Hits)
}

func TestSearch_UnreadableFileIsNoMatch(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	root := t.TempDir()
	locked := writeFile(t, root, "locked.txt", "needle")
	open := writeFile(t, root, "open.txt", "needle")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0644) })

	result, err := Search(root, "needle", "")
	require.NoError(t, err)
	assert.Equal(t, []string{open}, result.Hits)
}
