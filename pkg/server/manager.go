// Package server manages the start/stop lifecycle of the child static-file
// server process and surfaces state transitions asynchronously.
package server

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/mattsolo1/servr/config"
	"github.com/mattsolo1/servr/errors"
	"github.com/mattsolo1/servr/logging"
	"github.com/mattsolo1/servr/pkg/inspect"
	"github.com/mattsolo1/servr/pkg/process"
	"github.com/sirupsen/logrus"
)

const (
	// MinPort and MaxPort bound the accepted port range.
	MinPort = 1000
	MaxPort = 65535
)

// Options configures a Manager.
type Options struct {
	// Command overrides the child server command. "{dir}" and "{port}"
	// are substituted before spawning. When empty, the current executable
	// is re-invoked with the `serve` subcommand.
	Command []string

	// StopTimeout bounds the graceful-terminate wait before escalating to
	// SIGKILL. Zero means config.DefaultStopTimeout.
	StopTimeout time.Duration

	Logger *logrus.Entry
}

// Manager owns at most one active Session per application instance.
type Manager struct {
	mu      sync.Mutex
	session *Session

	command     []string
	stopTimeout time.Duration
	logger      *logrus.Entry
	events      chan Event
}

// New creates a Manager.
func New(opts Options) *Manager {
	if opts.StopTimeout <= 0 {
		opts.StopTimeout = config.DefaultStopTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger("server")
	}
	return &Manager{
		command:     opts.Command,
		stopTimeout: opts.StopTimeout,
		logger:      opts.Logger,
		events:      make(chan Event, 64),
	}
}

// emit delivers an event without ever blocking the worker. A full buffer
// means the listener is long gone; dropping is safer than wedging Stop.
func (m *Manager) emit(ev Event) {
	select {
	case m.events <- ev:
	default:
		m.logger.WithField("event", ev.Type).Warn("Event buffer full, dropping notification")
	}
}

// Events returns the channel on which asynchronous lifecycle notifications
// are delivered. For a given session, a started event always precedes its
// stopped or failed event.
func (m *Manager) Events() <-chan Event {
	return m.events
}

// Start validates the directory and port, probes the port, spawns the child
// server process, and returns the session in Starting state. The started
// notification arrives asynchronously once the process is confirmed alive.
func (m *Manager) Start(directory string, port int) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil && (m.session.state == StateStarting || m.session.state == StateRunning) {
		return nil, errors.ServerAlreadyRunning(m.session.Port)
	}

	if err := inspect.Validate(directory); err != nil {
		return nil, err
	}
	if port < MinPort || port > MaxPort {
		return nil, errors.PortOutOfRange(port)
	}
	// Fail fast with a clear error rather than letting the child fail
	// silently. Racy against the child's own bind; losing the race only
	// costs a visible startup failure.
	if !inspect.IsPortAvailable(port) {
		return nil, errors.PortUnavailable(port)
	}

	cmd, err := m.buildCommand(directory, port)
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.SpawnFailed(strings.Join(cmd.Args, " "), err)
	}

	session := &Session{
		Directory: directory,
		Port:      port,
		PID:       cmd.Process.Pid,
		state:     StateStarting,
		cmd:       cmd,
		done:      make(chan struct{}),
	}
	m.session = session

	m.logger.WithFields(logrus.Fields{
		"dir":  directory,
		"port": port,
		"pid":  session.PID,
	}).Info("Server process spawned")

	go m.watch(session)

	return session, nil
}

// watch is the per-session worker: it confirms the child is alive, emits
// started, then blocks until the child exits and emits the terminal event.
// It performs no shared-state mutation beyond the session it owns.
func (m *Manager) watch(session *Session) {
	defer close(session.done)

	if process.IsAlive(session.PID) {
		m.mu.Lock()
		session.state = StateRunning
		m.mu.Unlock()
		m.emit(Event{Type: EventStarted, Directory: session.Directory, Port: session.Port})
	}

	waitErr := session.cmd.Wait()

	m.mu.Lock()
	stopRequested := session.stopRequested
	if waitErr != nil && !stopRequested {
		session.state = StateFailed
	} else {
		session.state = StateStopped
	}
	state := session.state
	m.mu.Unlock()

	if state == StateFailed {
		m.logger.WithError(waitErr).WithField("port", session.Port).Warn("Server process exited with error")
		m.emit(Event{Type: EventFailed, Directory: session.Directory, Port: session.Port, Err: waitErr})
		return
	}

	m.logger.WithField("port", session.Port).Info("Server process stopped")
	m.emit(Event{Type: EventStopped, Directory: session.Directory, Port: session.Port})
}

// Stop requests graceful termination of the active session's child process
// and waits for the worker to reap it. The wait is bounded: after the stop
// timeout the child is force-killed. Stop is idempotent; without an active
// session it is a no-op.
func (m *Manager) Stop() error {
	m.mu.Lock()
	session := m.session
	if session == nil || (session.state != StateStarting && session.state != StateRunning) {
		m.mu.Unlock()
		return nil
	}
	session.stopRequested = true
	m.mu.Unlock()

	if err := session.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// Process already gone; the worker will observe the exit.
		m.logger.WithError(err).Debug("SIGTERM delivery failed, process likely exited")
	}

	select {
	case <-session.done:
	case <-time.After(m.stopTimeout):
		m.logger.WithField("pid", session.PID).Warn("Graceful stop timed out, killing server process")
		_ = session.cmd.Process.Kill()
		<-session.done
	}

	return nil
}

// IsRunning reports whether a session is active (starting or running).
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil && (m.session.state == StateStarting || m.session.state == StateRunning)
}

// Session returns the current session, or nil. The terminal session is kept
// until the next Start so callers can inspect how it ended.
func (m *Manager) Session() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// SessionState returns the current session's state, or StateIdle without one.
func (m *Manager) SessionState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return StateIdle
	}
	return m.session.state
}

// buildCommand constructs the child server command. The child always runs
// with the served directory as its working directory.
func (m *Manager) buildCommand(directory string, port int) (*exec.Cmd, error) {
	if len(m.command) > 0 {
		args := make([]string, len(m.command))
		for i, a := range m.command {
			a = strings.ReplaceAll(a, "{dir}", directory)
			a = strings.ReplaceAll(a, "{port}", strconv.Itoa(port))
			args[i] = a
		}
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = directory
		return cmd, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, errors.SpawnFailed("servr serve", err)
	}
	cmd := exec.Command(exe, "serve", ".", "--port", strconv.Itoa(port))
	cmd.Dir = directory
	return cmd, nil
}
