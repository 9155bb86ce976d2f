// Package generator turns a sketch manifest into a pinned build description.
package generator

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options tune one generation run.
type Options struct {
	// Policy selects how index entries are matched against references.
	Policy domain.MatchPolicy
	// FetchTimeout bounds each index resolution. Zero disables the bound.
	FetchTimeout time.Duration
}

// Generator resolves every platform of a manifest once, in manifest order,
// and rewrites each dependency to the pinned copy of its index.
type Generator struct {
	codec    ports.ManifestCodec
	resolver ports.IndexResolver
	hasher   ports.Hasher
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new Generator.
func New(
	codec ports.ManifestCodec,
	resolver ports.IndexResolver,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
) *Generator {
	return &Generator{
		codec:    codec,
		resolver: resolver,
		hasher:   hasher,
		tracer:   tracer,
		logger:   logger,
	}
}

// emission records where a binding was first resolved from.
type emission struct {
	indexURL string
	profile  string
}

// Fingerprint identifies m by the hash of its canonical encoding.
func (g *Generator) Fingerprint(m *domain.Manifest) (string, error) {
	data, err := g.codec.Dump(m)
	if err != nil {
		return "", zerr.Wrap(errors.Join(domain.ErrGenerateFailed, err), "failed to encode sketch manifest")
	}
	return g.hasher.Fingerprint(data), nil
}

// Generate resolves the platforms of m and returns the build description
// together with the rewritten manifest. m is not modified. Any resolution
// failure aborts the run and no description is returned.
func (g *Generator) Generate(
	ctx context.Context,
	m *domain.Manifest,
	opts Options,
) (*domain.BuildDescription, *domain.Manifest, error) {
	fingerprint, err := g.Fingerprint(m)
	if err != nil {
		return nil, nil, err
	}

	if err := checkNames(m); err != nil {
		return nil, nil, err
	}

	out := m.Clone()
	desc := &domain.BuildDescription{Fingerprint: fingerprint}
	emitted := make(map[string]emission)

	for i := range out.Profiles {
		profile := &out.Profiles[i]
		for j := range profile.Platforms {
			dep := &profile.Platforms[j]
			name := dep.Reference.VariableName()
			indexURL := dep.EffectiveIndexURL()

			if first, ok := emitted[name]; ok {
				if first.indexURL != indexURL {
					g.logger.Warn(dep.Reference.String() + " in profile " + profile.Name +
						" lists index " + indexURL + " but was resolved from " + first.indexURL +
						" for profile " + first.profile + "; both use " + name)
				}
				dep.IndexURL = domain.PinnedIndexURL(name)
				continue
			}

			artifact, err := g.resolve(ctx, dep.Reference, indexURL, opts)
			if err != nil {
				genErr := zerr.Wrap(errors.Join(domain.ErrGenerateFailed, err), "failed to resolve "+dep.Reference.String())
				genErr = zerr.With(genErr, "profile", profile.Name)
				genErr = zerr.With(genErr, "platform", dep.Reference.String())
				return nil, nil, zerr.With(genErr, "url", indexURL)
			}

			desc.Artifacts = append(desc.Artifacts, artifact)
			emitted[name] = emission{indexURL: indexURL, profile: profile.Name}
			dep.IndexURL = domain.PinnedIndexURL(name)
		}
	}

	manifest, err := g.codec.Dump(out)
	if err != nil {
		return nil, nil, zerr.Wrap(errors.Join(domain.ErrGenerateFailed, err), "failed to encode rewritten manifest")
	}
	desc.Manifest = manifest

	return desc, out, nil
}

// checkNames rejects, before any index is fetched, references whose binding
// name is not a Nix identifier and distinct references that fold to the same
// name, such as MyVendor and my_vendor.
func checkNames(m *domain.Manifest) error {
	owners := make(map[string]domain.PlatformReference)
	for i := range m.Profiles {
		profile := &m.Profiles[i]
		for j := range profile.Platforms {
			ref := profile.Platforms[j].Reference
			name := ref.VariableName()

			if !domain.IsNixIdentifier(name) {
				nameErr := zerr.Wrap(
					errors.Join(domain.ErrGenerateFailed, domain.ErrInvalidVariableName),
					"cannot bind "+ref.String(),
				)
				nameErr = zerr.With(nameErr, "profile", profile.Name)
				nameErr = zerr.With(nameErr, "platform", ref.String())
				return zerr.With(nameErr, "name", name)
			}

			owner, seen := owners[name]
			if !seen {
				owners[name] = ref
				continue
			}
			if owner != ref {
				collision := zerr.Wrap(
					errors.Join(domain.ErrGenerateFailed, domain.ErrVariableNameCollision),
					ref.String()+" and "+owner.String()+" both bind "+name,
				)
				collision = zerr.With(collision, "profile", profile.Name)
				collision = zerr.With(collision, "platform", ref.String())
				collision = zerr.With(collision, "other", owner.String())
				return zerr.With(collision, "name", name)
			}
		}
	}
	return nil
}

func (g *Generator) resolve(
	ctx context.Context,
	ref domain.PlatformReference,
	indexURL string,
	opts Options,
) (domain.ResolvedArtifact, error) {
	ctx, span := g.tracer.Start(ctx, ref.String())
	defer span.End()
	span.SetAttribute("url", indexURL)
	span.SetAttribute("policy", opts.Policy.String())

	if opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.FetchTimeout)
		defer cancel()
	}

	artifact, err := g.resolver.Resolve(ctx, ref, indexURL, opts.Policy)
	if err != nil {
		span.RecordError(err)
		return domain.ResolvedArtifact{}, err
	}

	span.SetAttribute("variable", artifact.VariableName)
	return artifact, nil
}
