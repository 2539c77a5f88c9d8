// Package fs provides the filesystem adapter that discovers license files
// below a dependency's source directory.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LicenseScanner = (*Scanner)(nil)

// Scanner implements ports.LicenseScanner using os.ReadDir.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks the tree rooted at dir and returns every file whose name
// plausibly names a license, with relative paths computed against dir.
// A missing or non-directory dir yields an empty result.
func (s *Scanner) Scan(dir string) ([]domain.LicenseFile, error) {
	return s.walk(dir, domain.IsLicenseFilename)
}

// ScanAll behaves like Scan but returns every file regardless of name.
func (s *Scanner) ScanAll(dir string) ([]domain.LicenseFile, error) {
	return s.walk(dir, func(string) bool { return true })
}

// walk traverses dir with an explicit stack rather than recursion, so
// pathological directory depth cannot exhaust the call stack. os.ReadDir
// returns entries sorted by name, which keeps the traversal deterministic:
// each directory's files are collected in lexicographic order before its
// subdirectories are descended into, also lexicographically.
func (s *Scanner) walk(dir string, match func(string) bool) ([]domain.LicenseFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		// Many dependencies simply lack a source directory on disk.
		return nil, nil
	}

	var found []domain.LicenseFile
	stack := []string{dir}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(current)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", current)
		}

		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				subdirs = append(subdirs, path)
				continue
			}
			if !match(path) {
				continue
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to compute relative path"), "path", path)
			}
			found = append(found, domain.LicenseFile{Path: path, RelativePath: rel})
		}

		// Reversed so the lexicographically first subdirectory is popped
		// next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return found, nil
}
