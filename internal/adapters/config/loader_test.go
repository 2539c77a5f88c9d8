package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/3pl/internal/adapters/config"
	"go.trai.ch/3pl/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
features:
  - tls
  - tracing
all-features: false
no-default-features: true
targets:
  - x86_64-unknown-linux-gnu
require-files: true
source: vendor
color: never
`)

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		Features:          []string{"tls", "tracing"},
		NoDefaultFeatures: true,
		Targets:           []string{"x86_64-unknown-linux-gnu"},
		RequireFiles:      true,
		VendorDir:         "vendor",
		Color:             domain.ColorNever,
	}, cfg)
}

func TestLoader_Load_missingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.Config{Color: domain.ColorAuto}, cfg)
}

func TestLoader_Load_searchesUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "require-files: true\n")

	nested := filepath.Join(root, "crates", "mylib")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.True(t, cfg.RequireFiles)
}

func TestLoader_Load_nearerFileWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "color: never\n")

	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	writeConfig(t, nested, "color: always\n")

	cfg, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorAlways, cfg.Color)
}

func TestLoader_Load_malformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "features: [unterminated\n")

	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_Load_invalidColor(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "color: sometimes\n")

	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrInvalidColorMode)
}
