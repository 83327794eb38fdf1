package triage

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// hashChunkSize is the read size used when streaming a file into a digest.
const hashChunkSize = 4096

// Algorithm selects a digest function.
type Algorithm int

const (
	// SHA256 is the 256-bit digest and the default.
	SHA256 Algorithm = iota
	// MD5 is the 128-bit digest.
	MD5
)

// String returns the display name used in output and log entries.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	default:
		return "SHA-256"
	}
}

// HexLen is the length of the hex-encoded digest.
func (a Algorithm) HexLen() int {
	return a.new().Size() * 2
}

func (a Algorithm) new() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	default:
		return sha256.New()
	}
}

// ParseAlgorithm maps a menu choice to an Algorithm: "1" is MD5 and "2" is
// SHA-256. Any other input falls back to SHA-256 with ok set to false so the
// caller can warn about it.
func ParseAlgorithm(choice string) (alg Algorithm, ok bool) {
	switch choice {
	case "1":
		return MD5, true
	case "2":
		return SHA256, true
	default:
		return SHA256, false
	}
}

// HashFile streams path through alg and returns the lowercase hex digest.
//
// path must be an existing regular file, otherwise ErrInvalidPath is
// returned. Read failures are wrapped in ErrHashFailed.
func HashFile(path string, alg Algorithm) (string, error) {
	if err := RequireRegularFile(path); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashFailed, err)
	}
	defer f.Close()

	h := alg.new()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrHashFailed, path, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
