package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arduino2nix/internal/core/ports"
)

// RendererNodeID is the unique identifier for the Nix description renderer Graft node.
const RendererNodeID graft.ID = "adapter.nix.renderer"

func init() {
	graft.Register(graft.Node[ports.DescriptionRenderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptionRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
