package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arduino2nix/internal/adapters/logger"
	"go.trai.ch/arduino2nix/internal/core/ports"
)

const (
	// FetcherNodeID is the unique identifier for the index fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.index_fetcher"
	// ResolverNodeID is the unique identifier for the index resolver Graft node.
	ResolverNodeID graft.ID = "adapter.index_resolver"
)

func init() {
	graft.Register(graft.Node[ports.IndexFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexFetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log), nil
		},
	})

	graft.Register(graft.Node[ports.IndexResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FetcherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexResolver, error) {
			fetcher, err := graft.Dep[ports.IndexFetcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fetcher, log), nil
		},
	})
}
