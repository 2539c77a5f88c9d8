package ports

import "go.trai.ch/3pl/internal/core/domain"

// LicenseScanner discovers files below a dependency's source directory.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type LicenseScanner interface {
	// Scan walks the tree rooted at dir and returns every file whose name
	// plausibly names a license. A missing or non-directory dir yields an
	// empty result, not an error; a read error below dir is fatal.
	Scan(dir string) ([]domain.LicenseFile, error)

	// ScanAll behaves like Scan but returns every file regardless of name.
	ScanAll(dir string) ([]domain.LicenseFile, error)
}
