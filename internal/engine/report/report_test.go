package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/engine/report"
)

func TestAssemble(t *testing.T) {
	packages := []domain.Package{
		{
			Name:    "serde",
			Version: "1.0.190",
			License: "MIT OR Apache-2.0",
			URL:     "https://serde.rs",
			LicenseFiles: []domain.LicenseFile{
				{Path: "/r/serde-1.0.190/LICENSE-APACHE", RelativePath: "LICENSE-APACHE"},
				{Path: "/r/serde-1.0.190/LICENSE-MIT", RelativePath: "LICENSE-MIT"},
			},
		},
		{
			Name:             "syn",
			Version:          "2.0.38",
			License:          "MIT OR Apache-2.0",
			MultipleVersions: true,
			LicenseFiles: []domain.LicenseFile{
				{Path: "/r/syn-2.0.38/LICENSE-MIT", RelativePath: "LICENSE-MIT"},
			},
		},
	}

	sections := report.Assemble(packages)
	require.Len(t, sections, 4)

	assert.Equal(t, domain.Section{
		Header: "Summary",
		Lines: []string{
			"",
			"serde",
			"https://serde.rs",
			"MIT OR Apache-2.0",
			"",
			"syn v2.0.38",
			"MIT OR Apache-2.0",
		},
	}, sections[0])

	assert.Equal(t, domain.Section{
		Header: "serde LICENSE-APACHE",
		File:   "/r/serde-1.0.190/LICENSE-APACHE",
	}, sections[1])
	assert.Equal(t, domain.Section{
		Header: "serde LICENSE-MIT",
		File:   "/r/serde-1.0.190/LICENSE-MIT",
	}, sections[2])
	assert.Equal(t, domain.Section{
		Header: "syn v2.0.38 LICENSE-MIT",
		File:   "/r/syn-2.0.38/LICENSE-MIT",
	}, sections[3])
}

func TestAssemble_packageWithoutOptionalFields(t *testing.T) {
	sections := report.Assemble([]domain.Package{
		{Name: "bar", Version: "0.1.0"},
	})

	require.Len(t, sections, 1)
	assert.Equal(t, []string{"", "bar"}, sections[0].Lines)
}

func TestAssemble_empty(t *testing.T) {
	sections := report.Assemble(nil)
	require.Len(t, sections, 1)
	assert.Equal(t, "Summary", sections[0].Header)
	assert.Empty(t, sections[0].Lines)
}
