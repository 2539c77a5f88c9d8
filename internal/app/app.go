// Package app implements the application layer for cargo-3pl.
package app

import (
	"context"

	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/3pl/internal/engine/report"
	"go.trai.ch/3pl/internal/engine/resolver"
)

// App represents the main application logic: query the dependency graph,
// resolve license files, warn about gaps, render the report.
type App struct {
	metadata ports.MetadataSource
	resolver *resolver.Resolver
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a new App instance.
func New(metadata ports.MetadataSource, res *resolver.Resolver, renderer ports.Renderer, logger ports.Logger) *App {
	return &App{
		metadata: metadata,
		resolver: res,
		renderer: renderer,
		logger:   logger,
	}
}

// RunOptions carry the merged flag and config values for one invocation.
type RunOptions struct {
	// Query selects which dependencies cargo reports.
	Query domain.QueryOptions

	// RequireFiles makes a package without license files fatal instead of
	// a warning.
	RequireFiles bool

	// VendorDir names a directory of vendored sources appended to each
	// package's license list. Empty disables the lookup.
	VendorDir string

	// ShowURL adds the package URL to missing-file warnings.
	ShowURL bool
}

// Run executes the full pipeline. Warnings go to the logger as they are
// found; the report is only written once every package has been resolved,
// so a fatal error never leaves a truncated report behind.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	descriptors, err := a.metadata.Query(ctx, opts.Query)
	if err != nil {
		return err
	}

	packages, err := a.resolver.Resolve(ctx, descriptors, resolver.Options{VendorDir: opts.VendorDir})
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		return domain.ErrNoDependencies
	}

	for _, pkg := range packages {
		if pkg.License == "" {
			a.logger.Warn("No license field: " + pkg.FullName())
		}
	}

	missing := false
	for _, pkg := range packages {
		if len(pkg.LicenseFiles) > 0 {
			continue
		}
		msg := "No license files found: " + pkg.FullName()
		if opts.ShowURL && pkg.URL != "" {
			msg += " (" + pkg.URL + ")"
		}
		a.logger.Warn(msg)
		missing = true
	}
	if opts.RequireFiles && missing {
		return domain.ErrMissingLicenseFiles
	}

	return a.renderer.Render(report.Assemble(packages))
}
