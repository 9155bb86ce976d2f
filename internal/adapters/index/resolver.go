package index

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexResolver = (*Resolver)(nil)

// Resolver implements ports.IndexResolver. Index documents are fetched once
// per call and never cached.
type Resolver struct {
	fetcher ports.IndexFetcher
	logger  ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(fetcher ports.IndexFetcher, log ports.Logger) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		logger:  log,
	}
}

// Index fetches and decodes the document at indexURL.
func (r *Resolver) Index(ctx context.Context, indexURL string) (*domain.IndexDocument, error) {
	body, err := r.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return nil, zerr.With(err, "url", indexURL)
	}
	return doc, nil
}

// Resolve finds ref in the index at indexURL and returns its pinned archive.
func (r *Resolver) Resolve(
	ctx context.Context,
	ref domain.PlatformReference,
	indexURL string,
	policy domain.MatchPolicy,
) (domain.ResolvedArtifact, error) {
	doc, err := r.Index(ctx, indexURL)
	if err != nil {
		return domain.ResolvedArtifact{}, err
	}

	pkg, ok := doc.FindPackage(ref.Vendor)
	if !ok {
		return domain.ResolvedArtifact{}, notFound(domain.ErrPackageNotFound, ref, indexURL)
	}

	entry, ok := pkg.FindPlatform(ref.Platform, ref.Version, policy)
	if !ok {
		return domain.ResolvedArtifact{}, notFound(domain.ErrPlatformNotFound, ref, indexURL)
	}

	if policy == domain.MatchFirstByName && !entry.HasVersion(ref.Version) {
		r.logger.Warn(fmt.Sprintf(
			"%s resolved to version %s, the first %q entry in %s",
			ref, entry.Version, ref.Platform, indexURL,
		))
	}

	if entry.URL == "" {
		emptyErr := zerr.Wrap(domain.ErrIndexDecodeFailed, "platform entry has no url")
		return domain.ResolvedArtifact{}, withReference(emptyErr, ref, indexURL)
	}

	checksum, err := domain.NormalizeChecksum(entry.Checksum)
	if err != nil {
		return domain.ResolvedArtifact{}, withReference(err, ref, indexURL)
	}

	return domain.ResolvedArtifact{
		VariableName: ref.VariableName(),
		URL:          entry.URL,
		Checksum:     checksum,
	}, nil
}

func notFound(kind error, ref domain.PlatformReference, indexURL string) error {
	return withReference(errors.Join(kind, domain.ErrNotFound), ref, indexURL)
}

func withReference(err error, ref domain.PlatformReference, indexURL string) error {
	err = zerr.With(err, "vendor", ref.Vendor)
	err = zerr.With(err, "platform", ref.Platform)
	err = zerr.With(err, "version", ref.Version.String())
	return zerr.With(err, "url", indexURL)
}
