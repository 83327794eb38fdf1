//go:build unix

package triage

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// accessFlags asks the kernel whether the current user may read, write or
// execute path.
func accessFlags(path string, _ fs.FileMode) (readable, writable, executable bool) {
	readable = unix.Access(path, unix.R_OK) == nil
	writable = unix.Access(path, unix.W_OK) == nil
	executable = unix.Access(path, unix.X_OK) == nil
	return readable, writable, executable
}
