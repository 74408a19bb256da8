package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.WarnLevel,
		Message: "port probe failed",
		Time:    time.Now(),
		Data:    logrus.Fields{"port": 8080},
	}

	out, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	line := string(out)
	if !strings.Contains(line, "[WARN]") {
		t.Errorf("expected short level tag, got %q", line)
	}
	if !strings.Contains(line, "port probe failed") {
		t.Errorf("expected message, got %q", line)
	}
	if !strings.Contains(line, "port=8080") {
		t.Errorf("expected field rendering, got %q", line)
	}
}

func TestNewLoggerIsSingletonPerComponent(t *testing.T) {
	t.Setenv("SERVR_HOME", t.TempDir())

	a := NewLogger("test-component")
	b := NewLogger("test-component")
	if a != b {
		t.Error("NewLogger should return the same entry for a component")
	}

	if a.Data["component"] != "test-component" {
		t.Errorf("component field = %v", a.Data["component"])
	}
}

func TestLoggerWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})
	logger.SetOutput(&buf)

	logger.WithField("component", "server").Info("started")

	if !strings.Contains(buf.String(), "started") {
		t.Errorf("expected log output, got %q", buf.String())
	}
}
