package errors

import (
	"fmt"
	"testing"
)

func TestServrError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodePortUnavailable, "port in use")
	if err.Code != ErrCodePortUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodePortUnavailable, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeSpawnFailed, "spawn failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeSpawnFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodePortUnavailable) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("port", 8080).WithDetail("host", "localhost")
	if detailed.Details["port"] != 8080 {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := DirectoryNotFound("/tmp/missing")
	if err.Code != ErrCodeDirectoryNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeDirectoryNotFound, err.Code)
	}
	if err.Details["path"] != "/tmp/missing" {
		t.Error("DirectoryNotFound should include path detail")
	}

	err = NotADirectory("/etc/hosts")
	if err.Code != ErrCodeNotADirectory {
		t.Errorf("expected code %s, got %s", ErrCodeNotADirectory, err.Code)
	}

	err = PortUnavailable(8080)
	if err.Code != ErrCodePortUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodePortUnavailable, err.Code)
	}
	if err.Details["port"] != 8080 {
		t.Error("PortUnavailable should include port detail")
	}

	err = PortOutOfRange(80)
	if err.Code != ErrCodePortOutOfRange {
		t.Errorf("expected code %s, got %s", ErrCodePortOutOfRange, err.Code)
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should return empty code")
	}

	err := ServerAlreadyRunning(3000)
	if GetCode(err) != ErrCodeServerAlreadyRunning {
		t.Errorf("GetCode returned %s", GetCode(err))
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if GetCode(wrapped) != ErrCodeServerAlreadyRunning {
		t.Error("GetCode should unwrap nested errors")
	}
}
