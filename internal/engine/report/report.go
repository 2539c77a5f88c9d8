// Package report assembles resolved packages into the ordered sections
// of the license report. It is a pure transformation; the render adapter
// does all the I/O.
package report

import (
	"github.com/samber/lo"
	"go.trai.ch/3pl/internal/core/domain"
)

// Assemble produces the report sections: one summary listing every
// package in input order, then one section per license file in each
// package's resolved order.
func Assemble(packages []domain.Package) []domain.Section {
	sections := make([]domain.Section, 0, 1+countFiles(packages))
	sections = append(sections, summary(packages))

	for _, pkg := range packages {
		for _, file := range pkg.LicenseFiles {
			sections = append(sections, domain.Section{
				Header: pkg.DisplayName() + " " + file.RelativePath,
				File:   file.Path,
			})
		}
	}

	return sections
}

// summary builds the leading section: per package a blank separator, its
// display identifier, and its URL and license when declared.
func summary(packages []domain.Package) domain.Section {
	var lines []string
	for _, pkg := range packages {
		lines = append(lines, "", pkg.DisplayName())
		if pkg.URL != "" {
			lines = append(lines, pkg.URL)
		}
		if pkg.License != "" {
			lines = append(lines, pkg.License)
		}
	}
	return domain.Section{Header: "Summary", Lines: lines}
}

func countFiles(packages []domain.Package) int {
	return lo.SumBy(packages, func(p domain.Package) int { return len(p.LicenseFiles) })
}
