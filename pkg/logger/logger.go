// Package logger defines the logging interface used across the library and
// a default implementation backed by log/slog.
//
// Hosts that already carry their own logging stack implement [Logger] once
// and pass it in via the client configuration.
package logger

import (
	"log/slog"
)

// Logger is the minimal leveled logging surface the library needs.
// Arguments follow the slog convention of alternating keys and values.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogHandler adapts a slog.Handler to [Logger].
type SlogHandler struct {
	logger *slog.Logger
}

// New returns a [Logger] writing through the given slog handler.
func New(h slog.Handler) *SlogHandler {
	return &SlogHandler{logger: slog.New(h)}
}

func (handler *SlogHandler) Debug(msg string, args ...any) {
	handler.logger.Debug(msg, args...)
}

func (handler *SlogHandler) Info(msg string, args ...any) {
	handler.logger.Info(msg, args...)
}

func (handler *SlogHandler) Warn(msg string, args ...any) {
	handler.logger.Warn(msg, args...)
}

func (handler *SlogHandler) Error(msg string, args ...any) {
	handler.logger.Error(msg, args...)
}

// Nop discards everything. It is the default when no logger is configured.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
