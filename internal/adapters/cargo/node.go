package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/3pl/internal/core/ports"
)

const NodeID graft.ID = "adapter.cargo"

func init() {
	graft.Register(graft.Node[ports.MetadataSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.MetadataSource, error) {
			return New(), nil
		},
	})
}
