// Package triage implements the file triage operations: directory listing,
// metadata inspection, hashing, recovery copies and keyword search.
//
// The package-level functions are pure filesystem operations. Service wraps
// them and records one session.Entry for every operation that completes.
package triage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/triage/internal/session"
)

// Service runs triage operations and records them in a session log.
type Service struct {
	log          *session.Log
	recoveredDir string
	logger       zerolog.Logger
}

// NewService creates a Service that appends to log and uses recoveredDir as
// the default recovery destination.
func NewService(log *session.Log, recoveredDir string, logger zerolog.Logger) *Service {
	return &Service{
		log:          log,
		recoveredDir: recoveredDir,
		logger:       logger,
	}
}

// RecoveredDir returns the default recovery destination.
func (s *Service) RecoveredDir() string {
	return s.recoveredDir
}

// List enumerates a directory.
func (s *Service) List(path string) (*Listing, error) {
	listing, err := ListDirectory(path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", path).Msg("directory listing failed")
		return listing, err
	}

	s.log.Append(session.Entry(fmt.Sprintf("Scanned directory: %s (%d entries)",
		listing.Path, len(listing.Entries))))
	return listing, nil
}

// Inspect reads metadata for path.
func (s *Service) Inspect(path string) (*Metadata, error) {
	md, err := Inspect(path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", path).Msg("metadata inspection failed")
		return nil, err
	}

	s.log.Append(session.Entry(fmt.Sprintf("Metadata viewed for: %s, size=%d", md.Path, md.Size)))
	return md, nil
}

// HashResult is a digest together with the file it was computed for.
type HashResult struct {
	Path      string // absolute
	Algorithm Algorithm
	Digest    string
}

// Hash computes the digest of path.
func (s *Service) Hash(path string, alg Algorithm) (*HashResult, error) {
	digest, err := HashFile(path, alg)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", path).Stringer("algorithm", alg).Msg("hash failed")
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashFailed, err)
	}

	s.log.Append(session.Entry(fmt.Sprintf("Hash %s computed for: %s => %s", alg, abs, digest)))
	return &HashResult{Path: abs, Algorithm: alg, Digest: digest}, nil
}

// Recover copies the regular files of src into dst. A blank dst selects the
// default recovery directory.
func (s *Service) Recover(src, dst string) (*RecoveryResult, error) {
	if strings.TrimSpace(dst) == "" {
		dst = s.recoveredDir
	}

	result, err := Recover(src, dst)
	if err != nil {
		s.logger.Debug().Err(err).Str("source", src).Str("destination", dst).Msg("recovery failed")
		return result, err
	}

	for _, o := range result.Outcomes {
		if o.Err != nil {
			s.logger.Warn().Err(o.Err).Str("file", o.Name).Msg("recovery copy failed")
		}
	}

	s.log.Append(session.Entry(fmt.Sprintf("Recovered files from %s to %s: %d file(s)",
		result.Source, result.Destination, result.Recovered())))
	return result, nil
}

// Search runs a keyword search under root.
func (s *Service) Search(root, keyword, ext string) (*SearchResult, error) {
	result, err := Search(root, keyword, ext)
	if err != nil {
		s.logger.Debug().Err(err).Str("root", root).Msg("keyword search rejected")
		return nil, err
	}

	s.log.Append(session.Entry(fmt.Sprintf("Keyword search: '%s' under %s -> %d match(es)",
		result.Keyword, result.Root, len(result.Hits))))
	return result, nil
}
