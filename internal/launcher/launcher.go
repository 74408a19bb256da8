// Package launcher is the control layer behind every servr surface: it
// composes the server lifecycle manager, the recent-projects store, and the
// folder inspector into the API the CLI and TUI consume.
package launcher

import (
	"fmt"

	"github.com/mattsolo1/servr/config"
	"github.com/mattsolo1/servr/internal/browser"
	"github.com/mattsolo1/servr/logging"
	"github.com/mattsolo1/servr/pkg/inspect"
	"github.com/mattsolo1/servr/pkg/projects"
	"github.com/mattsolo1/servr/pkg/server"
	"github.com/sirupsen/logrus"
)

// StartResult describes a successfully spawned session.
type StartResult struct {
	Session *server.Session
	// URL is the address chosen by the index-file policy, handed to the
	// browser when open-on-start is enabled.
	URL string
	// IndexFile is the filename the policy picked, empty when the folder
	// has no HTML-like candidate.
	IndexFile string
}

// Launcher owns the single active session and the recent-projects history.
// All methods are called from the control thread; lifecycle notifications
// arrive asynchronously on Events.
type Launcher struct {
	cfg     *config.Config
	manager *server.Manager
	store   *projects.Store
	logger  *logrus.Entry
}

// Options configures a Launcher. Zero-valued fields fall back to the
// config-derived defaults.
type Options struct {
	Config  *config.Config
	Store   *projects.Store
	Manager *server.Manager
}

// New creates a Launcher.
func New(opts Options) *Launcher {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	st := opts.Store
	if st == nil {
		st = projects.NewDefault()
	}
	mgr := opts.Manager
	if mgr == nil {
		mgr = server.New(server.Options{
			Command:     cfg.Server.Command,
			StopTimeout: cfg.StopTimeout(),
		})
	}
	return &Launcher{
		cfg:     cfg,
		manager: mgr,
		store:   st,
		logger:  logging.NewLogger("launcher"),
	}
}

// Start validates and spawns a server for directory on port, records the
// project as used, and (when enabled) opens the chosen URL in the browser.
// Validation failures surface before any state changes.
func (l *Launcher) Start(directory string, port int, openBrowser bool) (*StartResult, error) {
	session, err := l.manager.Start(directory, port)
	if err != nil {
		return nil, err
	}

	l.store.Add(directory)

	result := &StartResult{Session: session, URL: session.URL() + "/"}
	if index, ok := inspect.FindIndexFile(directory); ok {
		result.IndexFile = index
		result.URL = fmt.Sprintf("%s/%s", session.URL(), index)
	}

	if openBrowser && l.cfg.ShouldOpenBrowser() {
		if err := browser.Open(result.URL); err != nil {
			// A browser failure never rolls back a started server.
			l.logger.WithError(err).Warn("Failed to open browser")
		}
	}

	return result, nil
}

// Stop terminates the active session, if any. Idempotent.
func (l *Launcher) Stop() error {
	return l.manager.Stop()
}

// IsRunning reports whether a session is active.
func (l *Launcher) IsRunning() bool {
	return l.manager.IsRunning()
}

// SessionState returns the active session's lifecycle state.
func (l *Launcher) SessionState() server.State {
	return l.manager.SessionState()
}

// Events exposes the manager's asynchronous lifecycle notifications.
func (l *Launcher) Events() <-chan server.Event {
	return l.manager.Events()
}

// ListRecent returns up to n ranked recent projects; n <= 0 uses the
// configured limit.
func (l *Launcher) ListRecent(n int) []projects.Entry {
	if n <= 0 {
		n = l.cfg.Recent.Limit
	}
	return l.store.TopN(n)
}

// RecordUse increments the usage count for a directory.
func (l *Launcher) RecordUse(path string) {
	l.store.Add(path)
}

// ClearRecent empties the recent-projects history.
func (l *Launcher) ClearRecent() {
	l.store.Clear()
}

// ValidateFolder checks that path exists and is a directory.
func (l *Launcher) ValidateFolder(path string) error {
	return inspect.Validate(path)
}

// ListFolder returns the folder's contents, sorted and categorized.
func (l *Launcher) ListFolder(path string) ([]inspect.Entry, error) {
	return inspect.ListContents(path)
}

// DefaultPort returns the configured default port.
func (l *Launcher) DefaultPort() int {
	return l.cfg.Server.Port
}
