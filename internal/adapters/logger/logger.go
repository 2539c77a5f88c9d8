package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/zerr"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). If zerr's API changes, errors gracefully
// fall back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
	mode   domain.ColorMode
	output io.Writer
}

// New creates a new Logger writing to stderr with automatic color
// detection. The report goes to stdout, so logging must stay off it.
func New() *Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, domain.ColorAuto)),
		mode:   domain.ColorAuto,
		output: os.Stderr,
	}
}

func newHandler(w io.Writer, mode domain.ColorMode) slog.Handler {
	return NewPrettyHandler(w, mode, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// SetOutput updates the logger's output destination, preserving the
// current color mode. If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.mode))
}

// SetColorMode switches the stderr color policy, preserving the current
// output destination.
func (l *Logger) SetColorMode(mode domain.ColorMode) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.mode = mode
	l.logger = slog.New(newHandler(l.output, mode))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. zerr chains are flattened into a single line so
// the fatal diagnostic reads like the message the tool intends, with the
// wrapped causes and any attached metadata appended. A chain-terminating
// zerr sentinel is elided when a wrap message precedes it: the sentinel
// carries the errors.Is identity, the wrap site the displayed text.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	var messages []string
	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if errors.Unwrap(current) == nil && len(messages) > 0 {
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	msg := strings.Join(messages, ": ")
	if zErr, ok := err.(*zerr.Error); ok {
		msg += formatMetadata(zErr.Metadata())
	}

	l.logger.Error(msg)
}

// formatMetadata renders zerr metadata as sorted key=value pairs, the
// same shape the pretty handler uses for slog attrs. The stderr of a
// failed cargo invocation travels here.
func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, meta[k])
	}
	return b.String()
}

var _ ports.Logger = (*Logger)(nil)
