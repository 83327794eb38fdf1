package store

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InsertReport records a report file and its entries in one transaction
// and returns the new report ID.
func (s *Store) InsertReport(sessionID, path string, createdAt time.Time, entries []string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO reports (session_id, created_at, entry_count, report_path)
		VALUES (?, ?, ?, ?)
	`,
		sessionID,
		createdAt.UTC().Format(timeLayout),
		len(entries),
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report ID: %w", err)
	}

	for i, text := range entries {
		_, err := tx.Exec(`
			INSERT INTO report_entries (report_id, position, text)
			VALUES (?, ?, ?)
		`, id, i+1, text)
		if err != nil {
			return 0, fmt.Errorf("failed to insert report entry %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report: %w", err)
	}

	return id, nil
}

// GetReport retrieves a report by ID.
func (s *Store) GetReport(id int64) (*Report, error) {
	query := `
		SELECT id, session_id, created_at, entry_count, report_path
		FROM reports
		WHERE id = ?
	`

	var report Report
	var createdAt string

	err := s.db.QueryRow(query, id).Scan(
		&report.ID,
		&report.SessionID,
		&createdAt,
		&report.EntryCount,
		&report.ReportPath,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report %d: %w", id, err)
	}

	report.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for report %d: %w", id, err)
	}

	return &report, nil
}

// ListReports returns all reports ordered by creation time (newest first).
func (s *Store) ListReports() ([]*Report, error) {
	query := `
		SELECT id, session_id, created_at, entry_count, report_path
		FROM reports
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		var report Report
		var createdAt string

		err := rows.Scan(
			&report.ID,
			&report.SessionID,
			&createdAt,
			&report.EntryCount,
			&report.ReportPath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}

		report.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for report %d: %w", report.ID, err)
		}

		reports = append(reports, &report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}

// GetReportEntries returns the entries of a report in their original order.
func (s *Store) GetReportEntries(reportID int64) ([]*ReportEntry, error) {
	query := `
		SELECT report_id, position, text
		FROM report_entries
		WHERE report_id = ?
		ORDER BY position
	`

	rows, err := s.db.Query(query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report entries: %w", err)
	}
	defer rows.Close()

	var entries []*ReportEntry
	for rows.Next() {
		var entry ReportEntry
		if err := rows.Scan(&entry.ReportID, &entry.Position, &entry.Text); err != nil {
			return nil, fmt.Errorf("failed to scan report entry row: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report entries: %w", err)
	}

	return entries, nil
}

// DeleteReport removes a report record and its entries.
func (s *Store) DeleteReport(id int64) error {
	result, err := s.db.Exec(`DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("report %d not found", id)
	}

	return nil
}
