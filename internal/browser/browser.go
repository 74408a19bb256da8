// Package browser hands a URL to the platform's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open asks the operating system to open url in the default browser. The
// launcher process is not waited on; failures to render the page are the
// browser's problem, not ours.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	// Reap the launcher in the background so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
