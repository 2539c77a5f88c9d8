package domain

import "fmt"

// LicenseFile references one discovered license text on disk.
type LicenseFile struct {
	// Path is the absolute path to the file. The file existed when the
	// package was resolved; existence is not re-verified afterwards.
	Path string

	// RelativePath is Path relative to the owning package's source
	// directory, used for display in report headers.
	RelativePath string
}

// Package is a fully resolved third-party dependency, ready for
// reporting. Packages are immutable after resolution.
type Package struct {
	// Name is the package name.
	Name string

	// Version is the exact release.
	Version string

	// License is the declared license expression, empty when absent.
	License string

	// URL is the homepage or repository URL, empty when absent.
	URL string

	// LicenseFiles holds the discovered license texts: scan results in
	// lexicographic path order, then the manifest's declared hint appended
	// when scanning did not already find it.
	LicenseFiles []LicenseFile

	// MultipleVersions is true when another package in the same result set
	// shares this package's name.
	MultipleVersions bool
}

// FullName returns the unambiguous "name vVersion" identifier.
func (p Package) FullName() string {
	return fmt.Sprintf("%s v%s", p.Name, p.Version)
}

// DisplayName returns the identifier used in the report: the bare name,
// or FullName when several versions of the package coexist in the set.
func (p Package) DisplayName() string {
	if p.MultipleVersions {
		return p.FullName()
	}
	return p.Name
}
