package errors

import (
	"fmt"
	"os/exec"
)

// DirectoryNotFound creates an error for a path that does not exist.
func DirectoryNotFound(path string) *ServrError {
	return New(ErrCodeDirectoryNotFound, fmt.Sprintf("selected folder does not exist: %s", path)).
		WithDetail("path", path)
}

// NotADirectory creates an error for a path that exists but is not a directory.
func NotADirectory(path string) *ServrError {
	return New(ErrCodeNotADirectory, fmt.Sprintf("selected path is not a directory: %s", path)).
		WithDetail("path", path)
}

// PortUnavailable creates an error for a port that failed the availability probe.
func PortUnavailable(port int) *ServrError {
	return New(ErrCodePortUnavailable, fmt.Sprintf("port %d is already in use", port)).
		WithDetail("port", port)
}

// PortOutOfRange creates an error for a port outside the accepted range.
func PortOutOfRange(port int) *ServrError {
	return New(ErrCodePortOutOfRange,
		fmt.Sprintf("port %d is out of range (must be 1000-65535)", port)).
		WithDetail("port", port)
}

// SpawnFailed creates an error for a child server process that could not be started.
func SpawnFailed(command string, err error) *ServrError {
	servrErr := Wrap(err, ErrCodeSpawnFailed, fmt.Sprintf("failed to start server process: %s", command)).
		WithDetail("command", command)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		servrErr = servrErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return servrErr
}

// ServerNotRunning creates an error for operations that require an active session.
func ServerNotRunning() *ServrError {
	return New(ErrCodeServerNotRunning, "no server is currently running")
}

// ServerAlreadyRunning creates an error for a start request while a session is active.
func ServerAlreadyRunning(port int) *ServrError {
	return New(ErrCodeServerAlreadyRunning,
		fmt.Sprintf("a server is already running on port %d", port)).
		WithDetail("port", port)
}

// Filesystem wraps a filesystem failure encountered mid-operation.
func Filesystem(op string, err error) *ServrError {
	return Wrap(err, ErrCodeFilesystem, fmt.Sprintf("filesystem operation failed: %s", op)).
		WithDetail("op", op)
}

// Persistence wraps a recent-projects load/save failure. Callers log these
// and continue; a corrupt history file must never block the server.
func Persistence(op string, err error) *ServrError {
	return Wrap(err, ErrCodePersistence, fmt.Sprintf("history persistence failed: %s", op)).
		WithDetail("op", op)
}
