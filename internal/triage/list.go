package triage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Listing is the result of enumerating one directory.
type Listing struct {
	Path    string   // absolute path of the directory
	Entries []string // immediate child names
}

// ListDirectory returns the immediate children of path without recursing.
//
// A path that is missing or not a directory yields ErrInvalidPath. If the
// directory exists but cannot be read, an empty Listing is returned together
// with ErrAccessDenied.
func ListDirectory(path string) (*Listing, error) {
	abs, err := RequireDir(path)
	if err != nil {
		return nil, err
	}

	listing := &Listing{Path: abs}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return listing, fmt.Errorf("%w: %s: %v", ErrAccessDenied, abs, err)
	}

	listing.Entries = make([]string, 0, len(entries))
	for _, entry := range entries {
		listing.Entries = append(listing.Entries, entry.Name())
	}

	return listing, nil
}

// RequireDir checks that path is an existing directory and returns its
// absolute form. It fails with ErrInvalidPath otherwise.
func RequireDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// RequireRegularFile checks that path is an existing regular file, following
// symlinks. It fails with ErrInvalidPath otherwise.
func RequireRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidPath, path)
	}
	return nil
}
