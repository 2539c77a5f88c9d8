package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/3pl/internal/adapters/fs"
	"go.trai.ch/3pl/internal/core/ports"
)

const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ScannerNodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			scanner, err := graft.Dep[ports.LicenseScanner](ctx)
			if err != nil {
				return nil, err
			}
			return New(scanner), nil
		},
	})
}
