// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures structured logging for modeldeck.
//
// Logs go to a rotated file rather than the terminal: the TUI owns
// stdout/stderr, so writing log lines there would corrupt the display.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "modeldeck.log"

const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn, error (default info)
	Format string // text or json (default json)
	File   string // log file path; empty means ~/.modeldeck/logs/modeldeck.log
}

// Init configures slog to write structured logs to a rotated file and
// installs the logger as the slog default. On failure to create the log
// directory the logger discards output rather than breaking the TUI.
func Init(opts Options) (*slog.Logger, error) {
	handlerOptions := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	logPath := strings.TrimSpace(opts.File)
	if logPath == "" {
		logPath = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		logger := slog.New(newHandler(opts.Format, io.Discard, handlerOptions))
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(opts.Format, writer, handlerOptions))
	slog.SetDefault(logger)
	return logger, nil
}

// Discard returns a logger that drops everything, for tests and for
// callers that have not initialized logging.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".modeldeck", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".modeldeck", "logs", defaultLogFile)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
