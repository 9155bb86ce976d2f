package ports

import (
	"context"

	"go.trai.ch/arduino2nix/internal/core/domain"
)

// IndexFetcher downloads package index documents.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexFetcher interface {
	// Fetch performs a single GET of url and returns the response body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// IndexResolver turns a platform reference into a pinned artifact.
type IndexResolver interface {
	// Resolve fetches the index at indexURL and returns the artifact of ref.
	Resolve(
		ctx context.Context,
		ref domain.PlatformReference,
		indexURL string,
		policy domain.MatchPolicy,
	) (domain.ResolvedArtifact, error)
	// Index fetches and decodes the document at indexURL.
	Index(ctx context.Context, indexURL string) (*domain.IndexDocument, error)
}
