package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servr.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultRecentLimit, cfg.Recent.Limit)
	assert.True(t, cfg.ShouldOpenBrowser())
	assert.Equal(t, DefaultStopTimeout, cfg.StopTimeout())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 3000
  open_browser: false
  stop_timeout_seconds: 10
  command: ["python3", "-m", "http.server", "{port}"]
recent:
  limit: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.False(t, cfg.ShouldOpenBrowser())
	assert.Equal(t, 10*time.Second, cfg.StopTimeout())
	assert.Equal(t, []string{"python3", "-m", "http.server", "{port}"}, cfg.Server.Command)
	assert.Equal(t, 5, cfg.Recent.Limit)
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeConfig(t, "server: [not: a: mapping\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestUnmarshalExtension(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 4000
logging:
  level: debug
  report_caller: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	var logCfg struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)

	// Non-existent keys leave the target zero-valued without error.
	var missing struct {
		Anything string `yaml:"anything"`
	}
	require.NoError(t, cfg.UnmarshalExtension("unknown", &missing))
	assert.Empty(t, missing.Anything)
}
