// Package resolver turns dependency descriptors into fully resolved
// packages by discovering their license files on disk.
package resolver

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/samber/lo"
	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver builds the resolved package list for a set of descriptors.
type Resolver struct {
	scanner ports.LicenseScanner
}

// New creates a new Resolver using the given scanner.
func New(scanner ports.LicenseScanner) *Resolver {
	return &Resolver{scanner: scanner}
}

// Options tune a resolution run.
type Options struct {
	// VendorDir, when set, names a directory of vendored sources laid out
	// as <name>-<version>. Every file found there is appended to the
	// matching package's license list, regardless of its name.
	VendorDir string
}

// Resolve scans every descriptor's source directory and returns one
// resolved package per descriptor, in input order. Scans run in parallel
// since each one only reads its own directory tree; each result lands in
// its descriptor's slot so parallelism cannot reorder the output.
func (r *Resolver) Resolve(ctx context.Context, descriptors []domain.Descriptor, opts Options) ([]domain.Package, error) {
	packages := make([]domain.Package, len(descriptors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, desc := range descriptors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pkg, err := r.resolveOne(desc, opts)
			if err != nil {
				return zerr.With(err, "package", desc.Name)
			}
			packages[i] = pkg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	markMultipleVersions(packages)
	return packages, nil
}

// resolveOne builds a single package: scan results sorted by absolute
// path, then the manifest's license_file hint appended if scanning did
// not already find it. The hint is deliberately not merged back into
// sorted position.
func (r *Resolver) resolveOne(desc domain.Descriptor, opts Options) (domain.Package, error) {
	files, err := r.scanner.Scan(desc.SourceDir)
	if err != nil {
		return domain.Package{}, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	if desc.LicenseFileHint != "" {
		hint := filepath.Join(desc.SourceDir, desc.LicenseFileHint)
		known := lo.ContainsBy(files, func(f domain.LicenseFile) bool { return f.Path == hint })
		if !known {
			rel, relErr := filepath.Rel(desc.SourceDir, hint)
			if relErr != nil {
				rel = desc.LicenseFileHint
			}
			files = append(files, domain.LicenseFile{Path: hint, RelativePath: rel})
		}
	}

	if opts.VendorDir != "" {
		vendored, err := r.scanVendored(desc, opts.VendorDir)
		if err != nil {
			return domain.Package{}, err
		}
		files = append(files, vendored...)
	}

	return domain.Package{
		Name:         desc.Name,
		Version:      desc.Version,
		License:      desc.License,
		URL:          desc.URL,
		LicenseFiles: files,
	}, nil
}

// scanVendored collects every file under <vendorDir>/<name>-<version>,
// with relative paths computed against the vendored directory.
func (r *Resolver) scanVendored(desc domain.Descriptor, vendorDir string) ([]domain.LicenseFile, error) {
	dir := filepath.Join(vendorDir, desc.Name+"-"+desc.Version)
	return r.scanner.ScanAll(dir)
}

// markMultipleVersions sets MultipleVersions on every package whose name
// appears more than once in the set. The flag is computed from the whole
// set so all versions of a name agree.
func markMultipleVersions(packages []domain.Package) {
	counts := lo.CountValuesBy(packages, func(p domain.Package) string { return p.Name })
	for i := range packages {
		packages[i].MultipleVersions = counts[packages[i].Name] > 1
	}
}
