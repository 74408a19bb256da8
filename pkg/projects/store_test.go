package projects

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("SERVR_HOME", t.TempDir())
	return New(filepath.Join(t.TempDir(), "recent.yml"))
}

func TestAddAndTopN(t *testing.T) {
	s := newTestStore(t)

	a := t.TempDir()
	b := t.TempDir()

	s.Add(a)
	s.Add(a)
	s.Add(a)
	s.Add(b)

	got := s.TopN(10)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].Path)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, b, got[1].Path)
	assert.Equal(t, 1, got[1].Count)
}

func TestTopNTieBreakMostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	older := t.TempDir()
	newer := t.TempDir()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	s.Add(older)
	s.now = func() time.Time { return base.Add(time.Minute) }
	s.Add(newer)

	got := s.TopN(10)
	require.Len(t, got, 2)
	assert.Equal(t, newer, got[0].Path, "equal counts should rank the most recently used first")
	assert.Equal(t, older, got[1].Path)
}

func TestTopNLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		s.Add(t.TempDir())
	}

	assert.Len(t, s.TopN(3), 3)
	assert.Len(t, s.TopN(10), 5)
	assert.Empty(t, s.TopN(0))
}

func TestTopNPrunesVanishedPaths(t *testing.T) {
	s := newTestStore(t)

	kept := t.TempDir()
	gone := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, os.Mkdir(gone, 0755))

	s.Add(kept)
	s.Add(gone)
	require.NoError(t, os.Remove(gone))

	got := s.TopN(10)
	require.Len(t, got, 1)
	assert.Equal(t, kept, got[0].Path)

	// The prune is persisted: a fresh store no longer sees the entry.
	reloaded := New(s.FilePath())
	assert.Equal(t, 1, reloaded.Len())
}

func TestClearPersistsEmptyState(t *testing.T) {
	s := newTestStore(t)

	s.Add(t.TempDir())
	s.Clear()

	assert.Empty(t, s.TopN(10))

	data, err := os.ReadFile(s.FilePath())
	require.NoError(t, err)

	var records map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &records))
	assert.Empty(t, records)
}

func TestPersistenceAcrossLoads(t *testing.T) {
	t.Setenv("SERVR_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "recent.yml")

	dir := t.TempDir()
	s := New(path)
	s.Add(dir)
	s.Add(dir)

	reloaded := New(path)
	got := reloaded.TopN(10)
	require.Len(t, got, 1)
	assert.Equal(t, dir, got[0].Path)
	assert.Equal(t, 2, got[0].Count)
}

func TestMissingOrCorruptFileLoadsEmpty(t *testing.T) {
	t.Setenv("SERVR_HOME", t.TempDir())

	t.Run("missing file", func(t *testing.T) {
		s := New(filepath.Join(t.TempDir(), "does-not-exist.yml"))
		assert.Empty(t, s.TopN(10))
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "recent.yml")
		require.NoError(t, os.WriteFile(path, []byte("{{{ not yaml"), 0644))

		s := New(path)
		assert.Empty(t, s.TopN(10))

		// The store stays usable and overwrites the corrupt file on the
		// next add.
		dir := t.TempDir()
		s.Add(dir)
		reloaded := New(path)
		assert.Equal(t, 1, reloaded.Len())
	})
}
