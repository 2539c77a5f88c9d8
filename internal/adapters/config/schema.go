package config

import (
	"go.trai.ch/3pl/internal/core/domain"
)

// file3pl represents the structure of the 3pl.yaml configuration file.
// Every field supplies a default for the matching command-line flag.
type file3pl struct {
	Features          []string `yaml:"features"`
	AllFeatures       bool     `yaml:"all-features"`
	NoDefaultFeatures bool     `yaml:"no-default-features"`
	Targets           []string `yaml:"targets"`
	RequireFiles      bool     `yaml:"require-files"`
	Source            string   `yaml:"source"`
	Color             string   `yaml:"color"`
}

// toDomain validates the raw file values and converts them to the domain
// config.
func (f file3pl) toDomain() (domain.Config, error) {
	color, err := domain.ParseColorMode(f.Color)
	if err != nil {
		return domain.Config{}, err
	}

	return domain.Config{
		Features:          f.Features,
		AllFeatures:       f.AllFeatures,
		NoDefaultFeatures: f.NoDefaultFeatures,
		Targets:           f.Targets,
		RequireFiles:      f.RequireFiles,
		VendorDir:         f.Source,
		Color:             color,
	}, nil
}
