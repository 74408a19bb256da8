package launcher

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mattsolo1/servr/config"
	"github.com/mattsolo1/servr/errors"
	"github.com/mattsolo1/servr/pkg/projects"
	"github.com/mattsolo1/servr/pkg/server"
	"github.com/mattsolo1/servr/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher(t *testing.T) *Launcher {
	t.Helper()
	t.Setenv("SERVR_HOME", t.TempDir())

	cfg := config.Default()
	cfg.Server.Command = []string{"sleep", "60"}

	return New(Options{
		Config: cfg,
		Store:  projects.New(filepath.Join(t.TempDir(), "recent.yml")),
		Manager: server.New(server.Options{
			Command:     cfg.Server.Command,
			StopTimeout: 2 * time.Second,
		}),
	})
}

func drainEvent(t *testing.T, l *Launcher) server.Event {
	t.Helper()
	select {
	case ev := <-l.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return server.Event{}
	}
}

func TestStartRecordsProjectAndPicksIndexURL(t *testing.T) {
	l := newTestLauncher(t)

	dir := testutil.SiteDir(t, map[string]string{"about.html": "x"})
	port := testutil.FreePort(t)

	res, err := l.Start(dir, port, false)
	require.NoError(t, err)
	defer l.Stop()

	assert.Equal(t, "about.html", res.IndexFile)
	assert.Contains(t, res.URL, "about.html")

	ev := drainEvent(t, l)
	assert.Equal(t, server.EventStarted, ev.Type)
	assert.True(t, l.IsRunning())

	recent := l.ListRecent(10)
	require.Len(t, recent, 1)
	assert.Equal(t, dir, recent[0].Path)
	assert.Equal(t, 1, recent[0].Count)
}

func TestStartWithoutIndexFallsBackToRoot(t *testing.T) {
	l := newTestLauncher(t)

	dir := t.TempDir()
	res, err := l.Start(dir, testutil.FreePort(t), false)
	require.NoError(t, err)
	defer l.Stop()

	assert.Empty(t, res.IndexFile)
	assert.Equal(t, res.Session.URL()+"/", res.URL)
}

func TestStartFailureLeavesNoTrace(t *testing.T) {
	l := newTestLauncher(t)

	_, err := l.Start(filepath.Join(t.TempDir(), "missing"), testutil.FreePort(t), false)
	assert.True(t, errors.Is(err, errors.ErrCodeDirectoryNotFound))

	// Fail fast, no partial state change: nothing recorded, nothing running.
	assert.Empty(t, l.ListRecent(10))
	assert.False(t, l.IsRunning())
}

func TestRecentLifecycle(t *testing.T) {
	l := newTestLauncher(t)

	a := t.TempDir()
	b := t.TempDir()
	l.RecordUse(a)
	l.RecordUse(a)
	l.RecordUse(b)

	recent := l.ListRecent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, a, recent[0].Path)

	l.ClearRecent()
	assert.Empty(t, l.ListRecent(0))
}

func TestValidateAndListFolder(t *testing.T) {
	l := newTestLauncher(t)

	dir := testutil.SiteDir(t, map[string]string{"index.html": "x"})

	require.NoError(t, l.ValidateFolder(dir))

	entries, err := l.ListFolder(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.html", entries[0].Name)

	err = l.ValidateFolder(filepath.Join(dir, "index.html"))
	assert.True(t, errors.Is(err, errors.ErrCodeNotADirectory))
}
