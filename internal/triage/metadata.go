package triage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout renders modification times as dd-mm-yyyy hh:mm:ss.
const TimestampLayout = "02-01-2006 15:04:05"

// Metadata is a read-only view of one filesystem entry at inspection time.
type Metadata struct {
	Name       string
	Path       string // absolute
	Size       int64
	Readable   bool
	Writable   bool
	Executable bool
	Hidden     bool
	ModTime    time.Time
	Extension  string
	IsDir      bool
}

// FormattedModTime returns ModTime in local time using TimestampLayout.
func (m *Metadata) FormattedModTime() string {
	return m.ModTime.Local().Format(TimestampLayout)
}

// Inspect reads the attributes of path. Symlinks are followed.
// Any path that cannot be stat'ed is reported as ErrNotFound.
func Inspect(path string) (*Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	name := filepath.Base(abs)
	readable, writable, executable := accessFlags(abs, info.Mode())

	return &Metadata{
		Name:       name,
		Path:       abs,
		Size:       info.Size(),
		Readable:   readable,
		Writable:   writable,
		Executable: executable,
		Hidden:     strings.HasPrefix(name, "."),
		ModTime:    info.ModTime(),
		Extension:  Extension(name),
		IsDir:      info.IsDir(),
	}, nil
}
