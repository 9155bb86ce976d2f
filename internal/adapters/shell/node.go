package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arduino2nix/internal/core/ports"
)

// NodeID is the unique identifier for the formatter Graft node.
const NodeID graft.ID = "adapter.formatter"

func init() {
	graft.Register(graft.Node[ports.Formatter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Formatter, error) {
			return NewFormatter(), nil
		},
	})
}
