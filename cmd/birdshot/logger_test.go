package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, _, err := newLogger("", "chatty"); err == nil {
		t.Error("newLogger() should fail on an unknown level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birdshot.log")

	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("beam fired", "x", 800)
	logger.Info("game over", "score", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"birdshot", "beam fired", "game over", "score=3", "run="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %q:\n%s", want, out)
		}
	}
}

func TestNewLoggerLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birdshot.log")

	logger, closeLog, err := newLogger(path, "warn")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("game started")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("info should be filtered at warn level, got %q", data)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()
	logger.Info("discarded")
}
