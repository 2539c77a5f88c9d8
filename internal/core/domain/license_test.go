package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/3pl/internal/core/domain"
)

func TestPackage_FullName(t *testing.T) {
	p := domain.Package{Name: "serde", Version: "1.0.190"}
	assert.Equal(t, "serde v1.0.190", p.FullName())
}

func TestPackage_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		pkg  domain.Package
		want string
	}{
		{
			name: "single version uses bare name",
			pkg:  domain.Package{Name: "serde", Version: "1.0.190"},
			want: "serde",
		},
		{
			name: "multiple versions disambiguate with the version",
			pkg:  domain.Package{Name: "syn", Version: "2.0.38", MultipleVersions: true},
			want: "syn v2.0.38",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pkg.DisplayName())
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.ColorMode
		wantErr bool
	}{
		{input: "", want: domain.ColorAuto},
		{input: "auto", want: domain.ColorAuto},
		{input: "always", want: domain.ColorAlways},
		{input: "never", want: domain.ColorNever},
		{input: "sometimes", wantErr: true},
		{input: "ALWAYS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			mode, err := domain.ParseColorMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidColorMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}
