package app

import (
	"context"
	"fmt"
	"text/tabwriter"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/zerr"
)

// Platforms lists the platform releases of the index at opts.URL as
// references that can be copied into sketch.yaml.
func (a *App) Platforms(ctx context.Context, opts PlatformsOptions) error {
	settings, err := a.loadSettings(opts.Root, opts.Overrides)
	if err != nil {
		return err
	}

	if settings.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.FetchTimeout)
		defer cancel()
	}

	doc, err := a.resolver.Index(ctx, opts.URL)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	listed := 0
	for _, pkg := range doc.Packages {
		if opts.Vendor != "" && pkg.Name != opts.Vendor {
			continue
		}
		listed++
		for _, entry := range pkg.Platforms {
			_, _ = fmt.Fprintln(tw, platformLine(pkg.Name, &entry))
		}
	}

	if opts.Vendor != "" && listed == 0 {
		notFound := zerr.Wrap(domain.ErrPackageNotFound, "index has no package named "+opts.Vendor)
		notFound = zerr.With(notFound, "vendor", opts.Vendor)
		return zerr.With(notFound, "url", opts.URL)
	}

	return tw.Flush()
}

// platformLine renders an entry as `reference<TAB>variable`. Versions that
// are not a plain x.y.z triple cannot be referenced and are shown verbatim.
func platformLine(vendor string, entry *domain.PlatformEntry) string {
	version, err := domain.ParseVersion(entry.Version)
	if err != nil {
		return vendor + ":" + entry.Name + " (" + entry.Version + ")\t-"
	}

	ref := domain.PlatformReference{Vendor: vendor, Platform: entry.Name, Version: version}
	return ref.String() + "\t" + ref.VariableName()
}
