package domain

// Descriptor represents a single dependency as reported by the package
// manager's metadata query, before license resolution.
type Descriptor struct {
	// Name is the package name. Not unique across the set: several
	// versions of the same package may coexist.
	Name string

	// Version is the exact release. (Name, Version) forms the unique key.
	Version string

	// License is the declared license expression (SPDX-like, unvalidated).
	// Empty when the manifest declares none.
	License string

	// LicenseFileHint is the license file path declared by the dependency's
	// own manifest, relative to SourceDir. Empty when the manifest declares
	// none.
	LicenseFileHint string

	// SourceDir is the absolute path to the dependency's extracted sources,
	// i.e. the directory holding its manifest.
	SourceDir string

	// URL is the package homepage, falling back to its repository when no
	// homepage is declared. Empty when the manifest declares neither.
	URL string

	// WorkspaceMember is true when the dependency's manifest lives under
	// the querying project's workspace root. Workspace members are
	// first-party code and never appear in the report.
	WorkspaceMember bool
}
