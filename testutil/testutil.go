// Package testutil provides shared helpers for servr tests.
package testutil

import (
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// FreePort asks the kernel for an unused localhost port and releases it.
func FreePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err, "failed to reserve a test port")
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

// RequireCommand skips the test if the named binary is not on PATH.
func RequireCommand(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

// WriteFile creates a file under dir with the given content.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// SiteDir creates a temporary directory populated with the given files,
// a stand-in for a folder the user would serve.
func SiteDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}
