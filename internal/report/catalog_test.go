package report

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/triage/internal/session"
	"github.com/blackwell-systems/triage/internal/store"
)

func TestList_CatalogDisabled(t *testing.T) {
	m := New(nil, t.TempDir(), zerolog.Nop())

	_, err := m.List()
	assert.True(t, errors.Is(err, ErrCatalogDisabled))

	_, err = m.Prune()
	assert.True(t, errors.Is(err, ErrCatalogDisabled))
}

func TestList_ReturnsGeneratedReports(t *testing.T) {
	m := New(newTestStore(t), t.TempDir(), zerolog.Nop())

	first, err := m.Generate("s", []session.Entry{"a"})
	require.NoError(t, err)
	second, err := m.Generate("s", []session.Entry{"b", "c"})
	require.NoError(t, err)

	reports, err := m.List()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, second.ID, reports[0].ID)
	assert.Equal(t, first.ID, reports[1].ID)
}

func TestPrune_RemovesMissingFiles(t *testing.T) {
	m := New(newTestStore(t), t.TempDir(), zerolog.Nop())

	gone, err := m.Generate("s", []session.Entry{"a"})
	require.NoError(t, err)
	kept, err := m.Generate("s", []session.Entry{"b"})
	require.NoError(t, err)
	require.NoError(t, os.Remove(gone.Path))

	removed, err := m.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	reports, err := m.List()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, kept.ID, reports[0].ID)
}

func TestNewLazy_OpensCatalogOnFirstUse(t *testing.T) {
	opened := 0
	m := NewLazy(func() (*store.Store, error) {
		opened++
		st, err := store.New(":memory:")
		if err != nil {
			return nil, err
		}
		return st, st.CreateSchema()
	}, t.TempDir(), zerolog.Nop())
	assert.Equal(t, 0, opened, "catalog must not be opened before it is needed")

	first, err := m.Generate("s", []session.Entry{"a"})
	require.NoError(t, err)
	assert.Positive(t, first.ID)
	_, err = m.Generate("s", []session.Entry{"b"})
	require.NoError(t, err)

	reports, err := m.List()
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 1, opened)

	require.NoError(t, m.Close())
}

func TestNewLazy_NilOpenerDisablesCatalog(t *testing.T) {
	m := NewLazy(nil, t.TempDir(), zerolog.Nop())

	_, err := m.List()
	assert.True(t, errors.Is(err, ErrCatalogDisabled))
	assert.NoError(t, m.Close())
}

func TestNewLazy_OpenFailureStillWritesReport(t *testing.T) {
	m := NewLazy(func() (*store.Store, error) {
		return nil, errors.New("disk on fire")
	}, t.TempDir(), zerolog.Nop())

	report, err := m.Generate("s", []session.Entry{"entry"})
	require.NoError(t, err)
	assert.Zero(t, report.ID)
	assert.FileExists(t, report.Path)

	_, err = m.List()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCatalogDisabled))
	assert.ErrorContains(t, err, "disk on fire")
}
