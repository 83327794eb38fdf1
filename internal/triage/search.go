package triage

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// MaxSearchFileSize bounds the size of files read by Search. Larger files
// are skipped even if they contain the keyword.
const MaxSearchFileSize int64 = 5 * 1024 * 1024

// SearchResult holds the hits of one Search call in traversal order.
type SearchResult struct {
	Root    string // absolute
	Keyword string // trimmed, original case
	Hits    []string
}

// Search walks root depth-first and returns every regular file containing
// keyword on at least one line, compared case-insensitively.
//
// When ext is non-empty only files whose extension equals it (ignoring case)
// are read. Files over MaxSearchFileSize and files that cannot be read are
// never hits. Symlinked directories are followed, but each directory is
// visited at most once.
func Search(root, keyword, ext string) (*SearchResult, error) {
	rootAbs, err := RequireDir(root)
	if err != nil {
		return nil, err
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	s := &searcher{
		keyword: strings.ToLower(keyword),
		ext:     strings.ToLower(strings.TrimSpace(ext)),
		visited: make(map[string]bool),
	}
	s.walk(rootAbs)

	return &SearchResult{
		Root:    rootAbs,
		Keyword: keyword,
		Hits:    s.hits,
	}, nil
}

type searcher struct {
	keyword string
	ext     string
	visited map[string]bool
	hits    []string
}

func (s *searcher) walk(dir string) {
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		canonical = dir
	}
	if s.visited[canonical] {
		return
	}
	s.visited[canonical] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		if info.IsDir() {
			s.walk(path)
			continue
		}

		if !info.Mode().IsRegular() || !s.accepts(entry.Name(), info.Size()) {
			continue
		}

		if containsKeyword(path, s.keyword) {
			s.hits = append(s.hits, path)
		}
	}
}

func (s *searcher) accepts(name string, size int64) bool {
	if s.ext != "" && strings.ToLower(Extension(name)) != s.ext {
		return false
	}
	return size <= MaxSearchFileSize
}

// containsKeyword reports whether any line of path contains keywordLower
// after lower-casing. Read errors count as no match.
func containsKeyword(path, keywordLower string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), int(MaxSearchFileSize)+1)
	for scanner.Scan() {
		if strings.Contains(strings.ToLower(scanner.Text()), keywordLower) {
			return true
		}
	}

	return false
}
