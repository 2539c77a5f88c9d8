package render

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/3pl/internal/core/ports"
)

const NodeID graft.ID = "adapter.render"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Renderer, error) {
			return NewWriter(os.Stdout), nil
		},
	})
}
