package triage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyOutcome records what happened to one source file during recovery.
type CopyOutcome struct {
	Name string
	Err  error // nil when the file was recovered
}

// RecoveryResult summarizes a Recover call.
type RecoveryResult struct {
	Source      string // absolute
	Destination string // absolute
	Outcomes    []CopyOutcome
}

// Recovered returns the number of files copied successfully.
func (r *RecoveryResult) Recovered() int {
	count := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			count++
		}
	}
	return count
}

// Recover copies every regular file directly inside src into dst, replacing
// files of the same name. Subdirectories are not descended into.
//
// dst is created if needed. A failure on one file, including a destination
// that could not be created, is recorded in the result and the remaining
// files are still attempted. If src cannot be enumerated,
// ErrAccessDenied is returned alongside the partially filled result.
func Recover(src, dst string) (*RecoveryResult, error) {
	srcAbs, err := RequireDir(src)
	if err != nil {
		return nil, err
	}

	// A destination that cannot be created surfaces as a failed copy per file.
	_ = os.MkdirAll(dst, 0755)
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dst, err)
	}

	result := &RecoveryResult{Source: srcAbs, Destination: dstAbs}

	entries, err := os.ReadDir(srcAbs)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrAccessDenied, srcAbs, err)
	}

	for _, entry := range entries {
		from := filepath.Join(srcAbs, entry.Name())

		info, err := os.Stat(from)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		to := filepath.Join(dstAbs, entry.Name())
		result.Outcomes = append(result.Outcomes, CopyOutcome{
			Name: entry.Name(),
			Err:  copyFile(from, to, info),
		})
	}

	return result, nil
}

// copyFile copies from to to, truncating any existing file at to.
func copyFile(from, to string, info os.FileInfo) error {
	if existing, err := os.Stat(to); err == nil && os.SameFile(info, existing) {
		return nil
	}

	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
