// Package output renders triage results for the terminal.
//
// Rendering functions return strings so callers decide where they are
// written. ANSI colors are emitted only when stdout is a TTY and NO_COLOR is
// unset.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/triage/internal/store"
	"github.com/blackwell-systems/triage/internal/triage"
)

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderListing renders a numbered directory listing.
func RenderListing(l *triage.Listing) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nFiles in: %s\n", l.Path))
	for i, name := range l.Entries {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
	}

	return sb.String()
}

// RenderMetadata renders a metadata snapshot, one attribute per line.
func RenderMetadata(md *triage.Metadata) string {
	var sb strings.Builder

	ext := md.Extension
	if ext == "" {
		ext = colorize(colorGray, "(none)")
	}

	sb.WriteString("\n=== FILE METADATA ===\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", md.Name))
	sb.WriteString(fmt.Sprintf("Path: %s\n", md.Path))
	sb.WriteString(fmt.Sprintf("Size: %d bytes (%s)\n", md.Size, formatSize(md.Size)))
	sb.WriteString(fmt.Sprintf("Readable: %t\n", md.Readable))
	sb.WriteString(fmt.Sprintf("Writable: %t\n", md.Writable))
	sb.WriteString(fmt.Sprintf("Executable: %t\n", md.Executable))
	sb.WriteString(fmt.Sprintf("Hidden: %t\n", md.Hidden))
	sb.WriteString(fmt.Sprintf("Last Modified: %s\n", md.FormattedModTime()))
	sb.WriteString(fmt.Sprintf("Extension: %s\n", ext))

	return sb.String()
}

// RenderRecovery renders one line per attempted copy, in the order attempted.
func RenderRecovery(r *triage.RecoveryResult) string {
	var sb strings.Builder

	for _, o := range r.Outcomes {
		if o.Err != nil {
			sb.WriteString(colorize(colorRed, fmt.Sprintf("Failed: %s -> %v", o.Name, o.Err)))
		} else {
			sb.WriteString(colorize(colorGreen, "Recovered: "+o.Name))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("%d of %d file(s) recovered to %s\n",
		r.Recovered(), len(r.Outcomes), r.Destination))

	return sb.String()
}

// RenderHits renders search hits as a numbered list.
func RenderHits(hits []string) string {
	if len(hits) == 0 {
		return "No matches found.\n"
	}

	var sb strings.Builder
	sb.WriteString("\nMatches:\n")
	for i, hit := range hits {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, hit))
	}

	return sb.String()
}

// RenderReportTable renders catalogued reports in the order given.
func RenderReportTable(reports []*store.Report) string {
	if len(reports) == 0 {
		return "No reports found.\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("%-5s %-17s %-8s %s\n",
		"ID", "Created", "Entries", "Path"))
	sb.WriteString(strings.Repeat("─", 80))
	sb.WriteString("\n")

	// Rows
	for _, r := range reports {
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-8d %s\n",
			r.ID,
			formatRelativeTime(r.CreatedAt),
			r.EntryCount,
			truncateLeft(r.ReportPath, 48)))
	}

	return sb.String()
}

// formatSize converts bytes to a human-readable IEC size.
func formatSize(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(bytes))
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case diff < 365*24*time.Hour:
		months := int(diff.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := int(diff.Hours() / 24 / 365)
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}

// truncateLeft shortens s to maxLen by dropping leading characters, keeping
// the file name end of a path visible.
func truncateLeft(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[len(s)-maxLen:]
	}
	return "..." + s[len(s)-(maxLen-3):]
}
