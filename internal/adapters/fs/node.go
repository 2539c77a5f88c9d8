package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/3pl/internal/core/ports"
)

const ScannerNodeID graft.ID = "adapter.fs.scanner"

func init() {
	graft.Register(graft.Node[ports.LicenseScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LicenseScanner, error) {
			return NewScanner(), nil
		},
	})
}
