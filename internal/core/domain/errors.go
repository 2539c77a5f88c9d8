package domain

import "go.trai.ch/zerr"

var (
	// ErrNoDependencies is returned when the metadata query yields zero
	// third-party dependencies. The message matches the text users see.
	ErrNoDependencies = zerr.New("No dependencies")

	// ErrMissingLicenseFiles is returned in strict mode when at least one
	// package has no discoverable license file.
	ErrMissingLicenseFiles = zerr.New("Exiting due to missing license files")

	// ErrMetadataCommand is returned when the cargo metadata invocation
	// exits with a failure status.
	ErrMetadataCommand = zerr.New("cargo metadata failed")

	// ErrMetadataParse is returned when the cargo metadata output is not
	// valid JSON.
	ErrMetadataParse = zerr.New("failed to parse cargo metadata output")

	// ErrMetadataMissingField is returned when a package entry in the cargo
	// metadata output lacks a required field.
	ErrMetadataMissingField = zerr.New("cargo metadata output is missing a required field")

	// ErrTargetSpec is returned when cargo rejects a --target triple.
	ErrTargetSpec = zerr.New("error loading target specification")

	// ErrLicenseFileRead is returned when a license file that existed at
	// resolution time cannot be read during rendering.
	ErrLicenseFileRead = zerr.New("failed to read license file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidColorMode is returned when a color mode is invalid.
	ErrInvalidColorMode = zerr.New("invalid color mode, expected 'auto', 'always' or 'never'")
)
