package ports

import "go.trai.ch/3pl/internal/core/domain"

// ConfigLoader defines the interface for loading flag defaults from a
// 3pl.yaml file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches upward from the given working directory for a config
	// file and returns its contents. A missing file yields the zero Config
	// and no error.
	Load(cwd string) (domain.Config, error)
}
