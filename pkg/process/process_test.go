package process

import (
	"os"
	"os/exec"
	"testing"
)

func TestIsAlive(t *testing.T) {
	t.Run("own process", func(t *testing.T) {
		if !IsAlive(os.Getpid()) {
			t.Error("IsAlive should return true for the current process")
		}
	})

	t.Run("invalid pid", func(t *testing.T) {
		if IsAlive(0) {
			t.Error("IsAlive should return false for pid 0")
		}
		if IsAlive(-1) {
			t.Error("IsAlive should return false for negative pid")
		}
	})

	t.Run("exited process", func(t *testing.T) {
		cmd := exec.Command("true")
		if err := cmd.Start(); err != nil {
			t.Fatalf("failed to start process: %v", err)
		}
		pid := cmd.Process.Pid
		if err := cmd.Wait(); err != nil {
			t.Fatalf("wait failed: %v", err)
		}

		if IsAlive(pid) {
			t.Errorf("IsAlive should return false for exited pid %d", pid)
		}
	})
}
