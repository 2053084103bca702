// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across decksync. Logger embeds zerolog.Logger, so the full
// zerolog API is available on *Logger directly.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout with a "role" field
// (e.g. "scheduler", "push-queue"), a timestamp, and the calling function's
// fully-qualified name in a "func" field.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewClientLogger is like NewLogger but appends to a "logs" file next to the
// executable, falling back to stdout when the file cannot be opened. Suited
// to the desktop client where stdout is usually invisible.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	out := os.Stdout
	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "logs")
		if f, ferr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); ferr == nil {
			out = f
		}
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithDeck returns a child logger carrying the deck_id field.
func (l *Logger) WithDeck(deckID string) *Logger {
	return &Logger{l.With().Str("deck_id", deckID).Logger()}
}

// FromContext returns the zerolog logger attached to ctx, or the global
// logger when none is attached. Never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
