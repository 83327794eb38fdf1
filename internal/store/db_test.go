package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates an in-memory store with the schema applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.CreateSchema())
	t.Cleanup(func() { st.Close() })
	return st
}

func TestCreateSchema_Idempotent(t *testing.T) {
	st := newTestStore(t)
	assert.NoError(t, st.CreateSchema())
}

func TestInsertAndGetReport(t *testing.T) {
	st := newTestStore(t)
	created := time.Date(2024, time.June, 1, 10, 30, 0, 123000000, time.UTC)
	entries := []string{"Scanned directory: /tmp (3 entries)", "Metadata viewed for: /tmp/a, size=1"}

	id, err := st.InsertReport("session-1", "/reports/report_1.txt", created, entries)
	require.NoError(t, err)
	assert.Positive(t, id)

	report, err := st.GetReport(id)
	require.NoError(t, err)
	assert.Equal(t, "session-1", report.SessionID)
	assert.Equal(t, "/reports/report_1.txt", report.ReportPath)
	assert.Equal(t, 2, report.EntryCount)
	assert.True(t, created.Equal(report.CreatedAt), "created_at = %v, want %v", report.CreatedAt, created)

	got, err := st.GetReportEntries(id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, e := range got {
		assert.Equal(t, i+1, e.Position)
		assert.Equal(t, entries[i], e.Text)
		assert.Equal(t, id, e.ReportID)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	st := newTestStore(t)
	_, err := st.GetReport(42)
	assert.ErrorContains(t, err, "not found")
}

func TestListReports_NewestFirst(t *testing.T) {
	st := newTestStore(t)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i, path := range []string{"old.txt", "mid.txt", "new.txt"} {
		_, err := st.InsertReport("s", path, base.Add(time.Duration(i)*time.Hour), []string{"e"})
		require.NoError(t, err)
	}

	reports, err := st.ListReports()
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "new.txt", reports[0].ReportPath)
	assert.Equal(t, "mid.txt", reports[1].ReportPath)
	assert.Equal(t, "old.txt", reports[2].ReportPath)
}

func TestListReports_Empty(t *testing.T) {
	st := newTestStore(t)
	reports, err := st.ListReports()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestDeleteReport_CascadesEntries(t *testing.T) {
	st := newTestStore(t)
	id, err := st.InsertReport("s", "r.txt", time.Now(), []string{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteReport(id))

	entries, err := st.GetReportEntries(id)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorContains(t, st.DeleteReport(id), "not found")
}
