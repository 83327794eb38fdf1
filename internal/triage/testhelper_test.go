package triage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/triage/internal/session"
)

// writeFile creates dir/name with content, making parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// newTestService returns a Service over a fresh log with logging disabled.
func newTestService(t *testing.T) (*Service, *session.Log) {
	t.Helper()
	log := session.New()
	return NewService(log, filepath.Join(t.TempDir(), "recovered_files"), zerolog.Nop()), log
}
