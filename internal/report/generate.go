package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/triage/internal/filelock"
	"github.com/blackwell-systems/triage/internal/session"
)

// Generate writes entries to a new report_<epoch-millis>.txt file.
//
// An empty entries slice yields ErrEmptyLog. The entries are only
// read; the caller's log is never modified. Report files are created under
// a lock held beside the reports directory and never overwrite an existing
// report.
func (m *Manager) Generate(sessionID string, entries []session.Entry) (*Report, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyLog
	}

	if err := os.MkdirAll(m.reportsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	created := m.now()
	var path string

	err := filelock.WithLock(m.lockPath(), func() error {
		f, p, err := m.createUnique(created)
		if err != nil {
			return err
		}
		path = p

		if err := writeReport(f, created, entries); err != nil {
			f.Close()
			os.Remove(p)
			return fmt.Errorf("failed to write report: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(p)
			return fmt.Errorf("failed to close report: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	report := &Report{
		Path:       abs,
		CreatedAt:  created,
		EntryCount: len(entries),
	}

	st, err := m.catalog()
	switch {
	case errors.Is(err, ErrCatalogDisabled):
	case err != nil:
		m.logger.Warn().Err(err).Str("path", abs).Msg("report not catalogued")
	default:
		texts := make([]string, len(entries))
		for i, e := range entries {
			texts[i] = string(e)
		}

		id, err := st.InsertReport(sessionID, abs, created, texts)
		if err != nil {
			// The report file is already on disk; the catalog is only an index.
			m.logger.Warn().Err(err).Str("path", abs).Msg("failed to catalog report")
		} else {
			report.ID = id
		}
	}

	m.logger.Debug().Str("path", abs).Int("entries", len(entries)).Msg("report written")
	return report, nil
}

// createUnique creates report_<millis>.txt exclusively, moving to the next
// millisecond while the name is taken.
func (m *Manager) createUnique(t time.Time) (*os.File, string, error) {
	millis := t.UnixMilli()
	for {
		path := filepath.Join(m.reportsDir, fmt.Sprintf("report_%d.txt", millis))

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("failed to create report file: %w", err)
		}
		millis++
	}
}

// writeReport renders the report body to w.
func writeReport(w io.Writer, generated time.Time, entries []session.Entry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)
	fmt.Fprintf(bw, "Generated on: %s\n\n", generated.Local().Format(generatedLayout))
	for i, e := range entries {
		fmt.Fprintf(bw, "%d) %s\n", i+1, e)
	}

	return bw.Flush()
}
