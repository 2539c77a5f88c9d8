package domain

import "go.trai.ch/zerr"

// ColorMode controls when ANSI escape codes are emitted on stderr.
type ColorMode string

const (
	// ColorAuto enables colors only when stderr is a terminal and NO_COLOR
	// is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colors even when output is redirected.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors unconditionally.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a color mode string. The empty string maps to
// ColorAuto so unset flags and config fields share a default.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidColorMode, "invalid color mode, expected 'auto', 'always' or 'never'"), "color", s)
	}
}

// Config holds defaults loaded from a 3pl.yaml file. Flags given on the
// command line take precedence over every field.
type Config struct {
	// Features lists features to activate by default.
	Features []string

	// AllFeatures activates every available feature.
	AllFeatures bool

	// NoDefaultFeatures deactivates the default feature.
	NoDefaultFeatures bool

	// Targets restricts the dependency graph to the given target triples.
	Targets []string

	// RequireFiles makes a package without license files a fatal error.
	RequireFiles bool

	// VendorDir points at a directory of vendored sources named
	// <name>-<version>, whose files are appended to each package's report.
	VendorDir string

	// Color selects the stderr color policy.
	Color ColorMode
}
