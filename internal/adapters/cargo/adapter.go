// Package cargo implements the MetadataSource interface on top of the
// cargo metadata command.
package cargo

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/zerr"
)

// targetSpecMarker is the cargo stderr fragment identifying a bad
// --filter-platform triple. Only the text after the marker is surfaced.
const targetSpecMarker = "Error loading target specification: "

// runner executes the metadata command and returns its stdout. It exists
// so tests can substitute a canned response for the real subprocess.
type runner func(ctx context.Context, args []string) ([]byte, error)

// Adapter implements ports.MetadataSource by shelling out to cargo.
type Adapter struct {
	run runner
}

// New creates a new cargo adapter.
func New() *Adapter {
	return &Adapter{run: runCargo}
}

// Query runs cargo metadata with the given options and returns one
// descriptor per third-party dependency, in cargo's output order.
// Workspace members never leave this adapter.
func (a *Adapter) Query(ctx context.Context, opts domain.QueryOptions) ([]domain.Descriptor, error) {
	output, err := a.run(ctx, metadataArgs(opts))
	if err != nil {
		return nil, err
	}

	var doc metadataDocument
	if err := json.Unmarshal(output, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMetadataParse, "failed to parse cargo metadata output"), "error", err.Error())
	}
	if doc.WorkspaceRoot == "" {
		return nil, missingField("workspace_root", "")
	}

	descriptors := make([]domain.Descriptor, 0, len(doc.Packages))
	for _, pkg := range doc.Packages {
		if err := pkg.validate(); err != nil {
			return nil, err
		}

		// Workspace members are first-party code, not dependencies.
		// There is no direct membership flag in the metadata output, so
		// the manifest path is checked against the workspace root.
		if underRoot(pkg.ManifestPath, doc.WorkspaceRoot) {
			continue
		}

		descriptors = append(descriptors, domain.Descriptor{
			Name:            pkg.Name,
			Version:         pkg.Version,
			License:         pkg.License,
			LicenseFileHint: pkg.LicenseFile,
			SourceDir:       filepath.Dir(pkg.ManifestPath),
			URL:             pkg.url(),
		})
	}

	return descriptors, nil
}

// metadataArgs translates query options into cargo metadata flags.
func metadataArgs(opts domain.QueryOptions) []string {
	args := []string{"metadata", "--format-version", "1"}
	for _, feature := range opts.Features {
		args = append(args, "--features", feature)
	}
	if opts.AllFeatures {
		args = append(args, "--all-features")
	}
	if opts.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	for _, target := range opts.Targets {
		args = append(args, "--filter-platform", target)
	}
	return args
}

// runCargo executes the real subprocess. Stdout is the JSON document;
// stderr is only consulted when the command fails.
func runCargo(ctx context.Context, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "cargo", args...)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		return nil, commandError(stderr)
	}
	return output, nil
}

// commandError classifies a failed metadata invocation. A bad target
// triple gets its own error carrying just cargo's explanation; anything
// else surfaces the full stderr.
func commandError(stderr string) error {
	for _, line := range strings.Split(stderr, "\n") {
		if _, detail, found := strings.Cut(line, targetSpecMarker); found {
			return zerr.Wrap(domain.ErrTargetSpec, detail)
		}
	}
	return zerr.With(zerr.Wrap(domain.ErrMetadataCommand, "cargo metadata failed"), "stderr", stderr)
}

// underRoot reports whether path lies at or below root.
func underRoot(path, root string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(os.PathSeparator))
}

var _ ports.MetadataSource = (*Adapter)(nil)
