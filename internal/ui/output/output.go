// Package output provides utilities for creating termenv.Output with a
// consistent color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/3pl/internal/core/domain"
)

// Profile returns the color profile for the given mode and writer.
// ColorAlways forces ANSI even when output is redirected; ColorNever
// strips all styling; ColorAuto detects the terminal and honors NO_COLOR.
func Profile(w io.Writer, mode domain.ColorMode) termenv.Profile {
	switch mode {
	case domain.ColorAlways:
		return termenv.ANSI
	case domain.ColorNever:
		return termenv.Ascii
	default:
		if os.Getenv("NO_COLOR") != "" {
			return termenv.Ascii
		}
		if f, ok := w.(*os.File); ok {
			return termenv.NewOutput(f).EnvColorProfile()
		}
		return termenv.Ascii
	}
}

// New creates a termenv.Output for w under the given color mode.
func New(w io.Writer, mode domain.ColorMode) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(w, mode)),
		termenv.WithTTY(true),
	)
}
