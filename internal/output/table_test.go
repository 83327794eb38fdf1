package output

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blackwell-systems/triage/internal/store"
	"github.com/blackwell-systems/triage/internal/triage"
)

func TestMain(m *testing.M) {
	// Keep rendered strings free of escape codes regardless of the terminal.
	os.Setenv("NO_COLOR", "1")
	os.Exit(m.Run())
}

func TestRenderListing(t *testing.T) {
	got := RenderListing(&triage.Listing{Path: "/evidence", Entries: []string{"a.txt", "b.log"}})

	assert.Contains(t, got, "Files in: /evidence\n")
	assert.Contains(t, got, "1. a.txt\n")
	assert.Contains(t, got, "2. b.log\n")
}

func TestRenderMetadata(t *testing.T) {
	md := &triage.Metadata{
		Name:      "report.TXT",
		Path:      "/cases/report.TXT",
		Size:      2048,
		Readable:  true,
		Writable:  false,
		ModTime:   time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local),
		Extension: "TXT",
	}

	got := RenderMetadata(md)
	for _, want := range []string{
		"=== FILE METADATA ===",
		"Name: report.TXT",
		"Path: /cases/report.TXT",
		"Size: 2048 bytes (2.0 KiB)",
		"Readable: true",
		"Writable: false",
		"Executable: false",
		"Hidden: false",
		"Last Modified: 02-01-2024 03:04:05",
		"Extension: TXT",
	} {
		assert.Contains(t, got, want)
	}
}

func TestRenderMetadata_NoExtension(t *testing.T) {
	got := RenderMetadata(&triage.Metadata{Name: "Makefile", ModTime: time.Now()})
	assert.Contains(t, got, "Extension: (none)")
}

func TestRenderRecovery(t *testing.T) {
	got := RenderRecovery(&triage.RecoveryResult{
		Destination: "/out",
		Outcomes: []triage.CopyOutcome{
			{Name: "a.txt"},
			{Name: "b.txt", Err: errors.New("permission denied")},
		},
	})

	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Equal(t, []string{
		"Recovered: a.txt",
		"Failed: b.txt -> permission denied",
		"1 of 2 file(s) recovered to /out",
	}, lines)
}

func TestRenderHits(t *testing.T) {
	assert.Equal(t, "No matches found.\n", RenderHits(nil))

	got := RenderHits([]string{"/a.txt", "/b/c.txt"})
	assert.Contains(t, got, "Matches:\n1. /a.txt\n2. /b/c.txt\n")
}

func TestRenderReportTable(t *testing.T) {
	assert.Equal(t, "No reports found.\n", RenderReportTable(nil))

	got := RenderReportTable([]*store.Report{
		{ID: 7, CreatedAt: time.Now().Add(-2 * time.Hour), EntryCount: 3, ReportPath: "/r/report_1.txt"},
	})
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "Entries")
	assert.Contains(t, got, "2 hours ago")
	assert.Contains(t, got, "/r/report_1.txt")
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Time{}, "never"},
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-25 * time.Hour), "1 day ago"},
		{now.Add(-400 * 24 * time.Hour), "1 year ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRelativeTime(tt.in))
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "short", truncateLeft("short", 10))
	assert.Equal(t, "...efghij", truncateLeft("abcdefghij", 9))
	assert.Equal(t, "hij", truncateLeft("abcdefghij", 3))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", formatSize(0))
	assert.Equal(t, "1.0 KiB", formatSize(1024))
	assert.Equal(t, "5.0 MiB", formatSize(5*1024*1024))
}
