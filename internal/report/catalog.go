package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/triage/internal/store"
)

var (
	// ErrCatalogDisabled is returned by catalog queries when the Manager has no store.
	ErrCatalogDisabled = errors.New("report catalog is disabled")

	// ErrEmptyLog is returned when a report is requested for an empty session log.
	ErrEmptyLog = errors.New("no log entries in this session")
)

// List returns catalogued reports, newest first.
func (m *Manager) List() ([]*store.Report, error) {
	st, err := m.catalog()
	if err != nil {
		return nil, err
	}

	reports, err := st.ListReports()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// Prune removes catalog records whose report files no longer exist and
// returns how many were removed.
func (m *Manager) Prune() (int, error) {
	reports, err := m.List()
	if err != nil {
		return 0, err
	}
	st, err := m.catalog()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, r := range reports {
		if _, err := os.Stat(r.ReportPath); !os.IsNotExist(err) {
			continue
		}
		if err := st.DeleteReport(r.ID); err != nil {
			return removed, fmt.Errorf("failed to prune report %d: %w", r.ID, err)
		}
		removed++
	}

	return removed, nil
}
