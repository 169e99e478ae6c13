// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "modeldeck.log")

	logger, err := Init(Options{Level: "info", Format: "json", File: logPath})
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	logger.Info("hello", slog.String("component", "test"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("Expected log to contain message, got: %s", string(data))
	}
}

func TestInitTextFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "modeldeck.log")

	logger, err := Init(Options{Format: "text", File: logPath})
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	logger.Warn("plain message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "msg=\"plain message\"") {
		t.Fatalf("Expected text-format log, got: %s", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
		{" DEBUG ", slog.LevelDebug},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDiscardLoggerDoesNotPanic(t *testing.T) {
	Discard().Info("dropped")
}
