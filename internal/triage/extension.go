package triage

import "strings"

// Extension returns the part of name after its last '.'.
// Names without a dot, or ending in one, have no extension.
// Case is preserved; callers that filter compare with strings.EqualFold.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx == -1 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}
