// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the auth service binaries.
//
// Every entry carries the binary's role, a timestamp and the calling
// function under "func". Request handlers get a per-request child logger
// (with a trace id) through the context; see [FromRequest] and [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog event API is available.
type Logger struct {
	zerolog.Logger
}

var setupGlobals sync.Once

// New returns a JSON logger writing to w, tagged with role.
//
// The first call switches the process-wide zerolog settings: debug level
// until [SetLevel] is called, and caller names rendered as function names.
func New(w io.Writer, role string) *Logger {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger is [New] writing to stdout, used by the server.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// SetLevel sets the global level from a name such as "info" or "warn".
// An empty name keeps the current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields can be added without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one it falls back to zerolog's default context logger, which is
// disabled unless configured, so it never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
