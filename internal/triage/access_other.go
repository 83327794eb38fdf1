//go:build !unix

package triage

import "io/fs"

// accessFlags falls back to the owner permission bits.
func accessFlags(_ string, mode fs.FileMode) (readable, writable, executable bool) {
	perm := mode.Perm()
	return perm&0400 != 0, perm&0200 != 0, perm&0100 != 0
}
