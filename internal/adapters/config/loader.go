// Package config provides the configuration loader for cargo-3pl.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file cargo-3pl looks for.
const FileName = "3pl.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load searches upward from cwd for a 3pl.yaml and returns its contents.
// No file anywhere up the tree yields the zero config: the file is
// optional, flags alone configure the run.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	path, found := findConfiguration(cwd)
	if !found {
		return domain.Config{Color: domain.ColorAuto}, nil
	}
	return load(path)
}

// findConfiguration walks from cwd to the filesystem root looking for
// the configuration file, mirroring how cargo locates Cargo.toml.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered relative to the user's cwd
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{Color: domain.ColorAuto}, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "failed to read config file"), "path", path)
	}

	var raw file3pl
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "failed to parse config file"), "path", path), "error", err.Error())
	}

	cfg, err := raw.toDomain()
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}
