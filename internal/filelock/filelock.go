// Package filelock serializes access to shared files across processes.
package filelock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock is an exclusive advisory lock backed by a lock file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock using the file at path. The file is created on first
// use and left in place afterwards.
func New(path string) *Lock {
	return &Lock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock blocks until the lock is acquired.
func (l *Lock) Lock() error {
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	return nil
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *Lock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (l *Lock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// WithLock runs fn while holding the lock at path.
func WithLock(path string, fn func() error) error {
	l := New(path)
	if err := l.Lock(); err != nil {
		return err
	}
	defer l.Unlock()

	return fn()
}
