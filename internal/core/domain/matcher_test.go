package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/3pl/internal/core/domain"
)

func TestIsLicenseFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "plain license", path: "LICENSE", want: true},
		{name: "license with txt extension", path: "LICENSE.txt", want: true},
		{name: "license with md extension", path: "license.md", want: true},
		{name: "uppercase extension", path: "LICENSE.TXT", want: true},
		{name: "suffixed license", path: "LICENSE-MIT.txt", want: true},
		{name: "prefixed license", path: "MIT-LICENSE", want: true},
		{name: "british spelling", path: "LICENCE", want: true},
		{name: "notice without extension", path: "notice", want: true},
		{name: "notices in longer stem", path: "THIRD-PARTY-NOTICES.md", want: true},
		{name: "copying", path: "COPYING", want: true},
		{name: "substring match is intentional", path: "unlicensed.txt", want: true},
		{name: "dotfile keeps leading dot in stem", path: ".license", want: true},
		{name: "directory components are ignored", path: "/some/vendor/crate-1.0.0/LICENSE.txt", want: true},
		{name: "rst extension rejected", path: "LICENSE.rst", want: false},
		{name: "html extension rejected", path: "license.html", want: false},
		{name: "extension only matches final suffix", path: "NOTICE.md.bak", want: false},
		{name: "readme does not match", path: "README.md", want: false},
		{name: "unrelated file", path: "main.rs", want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsLicenseFilename(tt.path))
		})
	}
}
