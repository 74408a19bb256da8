package server

import (
	"fmt"
	"os/exec"
)

// State is the lifecycle state of a server session.
type State string

const (
	StateIdle     State = "idle"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopped  State = "stopped"
	StateFailed   State = "failed"
)

// Session represents one running server instance: a directory served over
// HTTP on a port by a spawned child process.
type Session struct {
	Directory string `json:"directory"`
	Port      int    `json:"port"`
	PID       int    `json:"pid"`

	state State
	cmd   *exec.Cmd

	// stopRequested distinguishes an explicit Stop from the child exiting
	// on its own, so the worker can emit Stopped instead of Failed after a
	// SIGTERM-driven nonzero exit.
	stopRequested bool

	// done is closed by the worker once the child has been reaped.
	done chan struct{}
}

// State returns the session's current lifecycle state. Callers outside the
// manager should read state through Manager methods, which lock.
func (s *Session) State() State {
	return s.state
}

// URL returns the root URL the session serves.
func (s *Session) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.Port)
}

// EventType identifies an asynchronous lifecycle notification.
type EventType string

const (
	// EventStarted is emitted once the spawned process is confirmed alive.
	EventStarted EventType = "started"
	// EventStopped is emitted when the child exits cleanly or after an
	// explicit Stop.
	EventStopped EventType = "stopped"
	// EventFailed is emitted when the child exits with an error on its own.
	EventFailed EventType = "failed"
)

// Event is an asynchronous status notification from the worker. For any
// session, EventStarted is always delivered before a subsequent
// EventStopped or EventFailed.
type Event struct {
	Type      EventType
	Directory string
	Port      int
	Err       error
}
