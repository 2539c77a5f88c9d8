package cargo

import (
	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/zerr"
)

// metadataDocument mirrors the parts of the cargo metadata JSON output
// the adapter reads. Everything else is ignored.
type metadataDocument struct {
	WorkspaceRoot string         `json:"workspace_root"`
	Packages      []packageEntry `json:"packages"`
}

// packageEntry is one entry of the packages array. License, LicenseFile,
// Homepage and Repository are optional in the manifest and decode to the
// empty string when absent.
type packageEntry struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	ManifestPath string `json:"manifest_path"`
	License      string `json:"license"`
	LicenseFile  string `json:"license_file"`
	Homepage     string `json:"homepage"`
	Repository   string `json:"repository"`
}

// validate checks the fields every package entry must carry.
func (p packageEntry) validate() error {
	switch {
	case p.Name == "":
		return missingField("name", "")
	case p.Version == "":
		return missingField("version", p.Name)
	case p.ManifestPath == "":
		return missingField("manifest_path", p.Name)
	}
	return nil
}

// missingField builds the error for a metadata document that lacks a
// required field. The sentinel stays in the cause chain so callers can
// match it with errors.Is.
func missingField(field, pkg string) error {
	err := zerr.With(zerr.Wrap(domain.ErrMetadataMissingField, "cargo metadata output is missing a required field"), "field", field)
	if pkg != "" {
		err = zerr.With(err, "package", pkg)
	}
	return err
}

// url returns the package homepage, falling back to its repository.
func (p packageEntry) url() string {
	if p.Homepage != "" {
		return p.Homepage
	}
	return p.Repository
}
