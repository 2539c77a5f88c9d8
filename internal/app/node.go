package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/3pl/internal/adapters/cargo"  //nolint:depguard // Wired in app layer
	"go.trai.ch/3pl/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/3pl/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/3pl/internal/adapters/render" //nolint:depguard // Wired in app layer
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/3pl/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.NodeID,
			resolver.NodeID,
			render.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			metadata, err := graft.Dep[ports.MetadataSource](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(metadata, res, renderer, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
