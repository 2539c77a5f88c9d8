package ports

import "go.trai.ch/3pl/internal/core/domain"

// Logger defines the interface for logging. All output goes to stderr so
// the report on stdout stays clean when piped.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetColorMode switches the stderr color policy at runtime, after the
	// command line has been parsed.
	SetColorMode(mode domain.ColorMode)
}
