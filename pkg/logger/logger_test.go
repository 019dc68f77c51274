package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitAndLevelString(t *testing.T) {
	Init("debug")
	if got := LevelString(); got != "debug" {
		t.Fatalf("LevelString() = %q, want %q", got, "debug")
	}
	Init("WARN")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("Error")
	if got := LevelString(); got != "error" {
		t.Fatalf("LevelString() = %q, want %q", got, "error")
	}
	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want %q for unknown input", got, "info")
	}
}

func TestLevelFiltering(t *testing.T) {
	// capture output by swapping the package logger for an observed core
	core, logs := observer.New(atom)
	mu.Lock()
	orig := sugar
	sugar = zap.New(core).Sugar()
	mu.Unlock()
	defer func() {
		mu.Lock()
		sugar = orig
		mu.Unlock()
		Init("info")
	}()

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")

	if logs.FilterMessage("debug-msg").Len() != 0 {
		t.Fatalf("debug messages should be suppressed at warn level")
	}
	if logs.FilterMessage("info-msg").Len() != 0 {
		t.Fatalf("info messages should be suppressed at warn level")
	}
	if logs.FilterMessage("warn-msg").Len() != 1 {
		t.Fatalf("warn message missing: %v", logs.All())
	}
	if logs.FilterMessage("error-msg").Len() != 1 {
		t.Fatalf("error message missing: %v", logs.All())
	}

	Init("info")
	Infof("hello %s", "again")
	if logs.FilterMessage("hello again").Len() != 1 {
		t.Fatalf("info message expected at info level, got: %v", logs.All())
	}

	Infow("structured", "kind", "summarize")
	entries := logs.FilterMessage("structured").All()
	if len(entries) != 1 || entries[0].ContextMap()["kind"] != "summarize" {
		t.Fatalf("structured fields missing: %v", entries)
	}
}
