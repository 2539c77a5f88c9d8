package domain

// QueryOptions select which dependencies the package manager reports.
// They translate one-to-one into cargo metadata flags.
type QueryOptions struct {
	// Features lists extra features to activate. Each entry is passed
	// through verbatim; cargo accepts space or comma separated lists.
	Features []string

	// AllFeatures activates every available feature.
	AllFeatures bool

	// NoDefaultFeatures deactivates the default feature.
	NoDefaultFeatures bool

	// Targets restricts the dependency graph to the given target triples.
	Targets []string
}
