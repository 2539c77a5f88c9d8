package domain

import (
	"path/filepath"
	"strings"
)

// IsLicenseFilename reports whether path plausibly names a license file.
// The stem (base name without extension) must contain one of the literal
// substrings "license", "licence", "notice" or "copying", and the
// extension must be empty, "txt" or "md". Matching is substring-based and
// case-insensitive, so "LICENSE-MIT.txt" and "THIRD-PARTY-NOTICES.md"
// both match, and so does "unlicensed.txt".
func IsLicenseFilename(path string) bool {
	stem, ext := splitStemExt(filepath.Base(path))
	return matchesLicenseStem(strings.ToLower(stem)) && matchesLicenseExt(strings.ToLower(ext))
}

func matchesLicenseStem(stem string) bool {
	return strings.Contains(stem, "license") ||
		strings.Contains(stem, "licence") ||
		strings.Contains(stem, "notice") ||
		strings.Contains(stem, "copying")
}

func matchesLicenseExt(ext string) bool {
	return ext == "" || ext == "txt" || ext == "md"
}

// splitStemExt splits a base name at its final dot. A leading dot is part
// of the stem, so dotfiles like ".license" have an empty extension rather
// than being all extension the way filepath.Ext would treat them.
func splitStemExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}
