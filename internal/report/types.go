// Package report writes the session log to plain-text report files and keeps
// a catalog of the reports that were written.
package report

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/triage/internal/store"
)

const (
	// Header is the first line of every report.
	Header = "===== FORENSIC REPORT ====="

	// generatedLayout renders the generation time as an ISO-like local timestamp.
	generatedLayout = "2006-01-02T15:04:05.000"
)

// Report describes a report file that was written.
type Report struct {
	ID         int64 // catalog ID, zero when the catalog is disabled or unavailable
	Path       string
	CreatedAt  time.Time
	EntryCount int
}

// Opener opens the catalog store. It is called at most once per Manager.
type Opener func() (*store.Store, error)

// Manager writes reports into a directory and records them in an optional
// catalog store.
type Manager struct {
	store      *store.Store
	open       Opener
	openOnce   sync.Once
	openErr    error
	owned      bool // store was opened by the Manager and is closed by Close
	reportsDir string
	logger     zerolog.Logger
	now        func() time.Time
}

// New creates a Manager. st may be nil to disable the catalog.
func New(st *store.Store, reportsDir string, logger zerolog.Logger) *Manager {
	return &Manager{
		store:      st,
		reportsDir: reportsDir,
		logger:     logger,
		now:        time.Now,
	}
}

// NewLazy creates a Manager whose catalog is opened by open the first time
// it is needed. A nil open disables the catalog.
func NewLazy(open Opener, reportsDir string, logger zerolog.Logger) *Manager {
	m := New(nil, reportsDir, logger)
	m.open = open
	return m
}

// Dir returns the directory reports are written to.
func (m *Manager) Dir() string {
	return m.reportsDir
}

// Close releases a catalog store opened by the Manager.
func (m *Manager) Close() error {
	if !m.owned || m.store == nil {
		return nil
	}
	return m.store.Close()
}

// catalog returns the catalog store, opening it on first use.
func (m *Manager) catalog() (*store.Store, error) {
	m.openOnce.Do(func() {
		if m.store != nil || m.open == nil {
			return
		}
		st, err := m.open()
		if err != nil {
			m.openErr = fmt.Errorf("failed to open report catalog: %w", err)
			return
		}
		m.store = st
		m.owned = true
	})

	if m.openErr != nil {
		return nil, m.openErr
	}
	if m.store == nil {
		return nil, ErrCatalogDisabled
	}
	return m.store, nil
}

// lockPath is the lock file serializing report writes. It sits beside the
// reports directory so the directory holds only reports.
func (m *Manager) lockPath() string {
	dir := filepath.Clean(m.reportsDir)
	return filepath.Join(filepath.Dir(dir), "."+filepath.Base(dir)+".lock")
}
