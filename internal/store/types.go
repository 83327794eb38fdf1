package store

import "time"

// Report is the catalog record of one written report file.
type Report struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	CreatedAt  time.Time `json:"created_at"`
	EntryCount int       `json:"entry_count"`
	ReportPath string    `json:"report_path"`
}

// ReportEntry is one numbered line of a catalogued report.
type ReportEntry struct {
	ReportID int64
	Position int // 1-based
	Text     string
}
