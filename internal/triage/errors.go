package triage

import "errors"

var (
	// ErrInvalidPath is returned when a path is missing or is the wrong kind
	// of filesystem entry for the operation.
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotFound is returned when a metadata target does not exist.
	ErrNotFound = errors.New("file does not exist")

	// ErrEmptyKeyword is returned when a search keyword is blank after trimming.
	ErrEmptyKeyword = errors.New("keyword cannot be empty")

	// ErrAccessDenied is returned when a directory exists but cannot be listed.
	ErrAccessDenied = errors.New("no files found or access denied")

	// ErrHashFailed is returned when a digest could not be computed.
	ErrHashFailed = errors.New("failed to compute hash")
)
