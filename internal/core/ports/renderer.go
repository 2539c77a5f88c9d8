package ports

import "go.trai.ch/3pl/internal/core/domain"

// Renderer writes assembled report sections to the output stream. It is
// the only component that reads license file content; everything upstream
// passes paths around.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the sections in order. A failure to read a referenced
	// file is fatal and aborts the report mid-stream.
	Render(sections []domain.Section) error
}
