package cli

import (
	"fmt"
	"os"

	"github.com/mattsolo1/servr/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeDirectoryNotFound:
		if servrErr, ok := err.(*errors.ServrError); ok {
			fmt.Fprintf(os.Stderr, "❌ Folder '%s' does not exist\n", servrErr.Details["path"])
		}
		return err

	case errors.ErrCodeNotADirectory:
		if servrErr, ok := err.(*errors.ServrError); ok {
			fmt.Fprintf(os.Stderr, "❌ '%s' is not a directory\n", servrErr.Details["path"])
		}
		return err

	case errors.ErrCodePortUnavailable:
		if servrErr, ok := err.(*errors.ServrError); ok {
			fmt.Fprintf(os.Stderr, "❌ Port %v is already in use\n", servrErr.Details["port"])
			fmt.Fprintf(os.Stderr, "Stop the conflicting process or pick another port with --port\n")
		}
		return err

	case errors.ErrCodePortOutOfRange:
		fmt.Fprintf(os.Stderr, "❌ Ports must be between 1000 and 65535\n")
		return err

	case errors.ErrCodeServerAlreadyRunning:
		if servrErr, ok := err.(*errors.ServrError); ok {
			fmt.Fprintf(os.Stderr, "❌ A server is already running on port %v\n", servrErr.Details["port"])
		}
		return err

	case errors.ErrCodeSpawnFailed:
		fmt.Fprintf(os.Stderr, "❌ Could not start the server process\n")
		if h.Verbose {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if servrErr, ok := err.(*errors.ServrError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", servrErr.ToJSON())
			}
		}
		return err
	}
}
