// Package app implements the application layer for arduino2nix.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/arduino2nix/internal/adapters/detector"
	"go.trai.ch/arduino2nix/internal/adapters/linear"
	"go.trai.ch/arduino2nix/internal/adapters/telemetry"
	"go.trai.ch/arduino2nix/internal/adapters/watcher"
	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/arduino2nix/internal/engine/generator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const tracerName = "arduino2nix"

// App represents the main application logic.
type App struct {
	settings  ports.SettingsLoader
	workspace ports.Workspace
	codec     ports.ManifestCodec
	resolver  ports.IndexResolver
	hasher    ports.Hasher
	renderer  ports.DescriptionRenderer
	formatter ports.Formatter
	watcher   ports.Watcher
	logger    ports.Logger

	stdout      io.Writer
	stderr      io.Writer
	interactive func() bool
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	workspace ports.Workspace,
	codec ports.ManifestCodec,
	resolver ports.IndexResolver,
	hasher ports.Hasher,
	renderer ports.DescriptionRenderer,
	formatter ports.Formatter,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		settings:    settings,
		workspace:   workspace,
		codec:       codec,
		resolver:    resolver,
		hasher:      hasher,
		renderer:    renderer,
		formatter:   formatter,
		watcher:     w,
		logger:      log,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: detector.IsInteractive,
	}
}

// WithOutput sets where generated descriptions and progress are written.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// GenerateOptions configure the generate command.
type GenerateOptions struct {
	// Root is the project directory holding sketch.yaml.
	Root string
	// OutputFile is the description path. Empty selects Arduino.nix in Root
	// and "-" selects standard output.
	OutputFile string
	// Watch regenerates on every change of sketch.yaml until ctx is done.
	Watch bool
	// Overrides are settings given as flags, keyed by setting name.
	Overrides map[string]any
}

// CheckOptions configure the check command.
type CheckOptions struct {
	Root       string
	OutputFile string
	Overrides  map[string]any
}

// PlatformsOptions configure the platforms command.
type PlatformsOptions struct {
	Root string
	// URL is the package index to list.
	URL string
	// Vendor limits the listing to one package when set.
	Vendor    string
	Overrides map[string]any
}

// Generate writes the build description of the sketch in opts.Root.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	settings, err := a.loadSettings(opts.Root, opts.Overrides)
	if err != nil {
		return err
	}

	output := a.outputPath(opts.Root, opts.OutputFile)
	if !opts.Watch {
		return a.generate(ctx, opts.Root, output, settings)
	}

	if err := a.generate(ctx, opts.Root, output, settings); err != nil {
		a.logger.Error(err)
	}
	return a.watch(ctx, opts.Root, func(ctx context.Context) error {
		return a.generate(ctx, opts.Root, output, settings)
	})
}

func (a *App) generate(ctx context.Context, root, output string, settings *domain.Settings) error {
	manifest, err := a.loadManifest(root)
	if err != nil {
		return err
	}

	var progress ports.Renderer
	if detector.ProgressEnabled(settings.Progress, a.interactive()) {
		progress = linear.NewRenderer(a.stderr)
		if err := progress.Start(ctx); err != nil {
			return err
		}
		defer func() {
			_ = progress.Stop()
		}()
	}

	provider := telemetry.NewProvider(progress)
	defer func() {
		_ = provider.Shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer(tracerName, provider)

	gen := generator.New(a.codec, a.resolver, a.hasher, tracer, a.logger)
	desc, _, err := gen.Generate(ctx, manifest, generator.Options{
		Policy:       settings.MatchPolicy(),
		FetchTimeout: settings.FetchTimeout,
	})
	if err != nil {
		return err
	}

	text, err := a.renderer.Render(desc)
	if err != nil {
		return err
	}

	if !settings.NoFormat {
		text, err = a.formatter.Format(ctx, settings.Formatter, text)
		if err != nil {
			return err
		}
	}

	if output == domain.StdoutPath {
		if _, err := a.stdout.Write(text); err != nil {
			return zerr.Wrap(errors.Join(domain.ErrOutputWriteFailed, err), "failed to write to standard output")
		}
		return nil
	}

	if err := a.workspace.WriteDescription(output, text); err != nil {
		return err
	}
	a.logger.Info("Wrote " + output + " with " + strconv.Itoa(len(desc.Artifacts)) + " pinned platform(s)")
	return nil
}

// watch runs regenerate after every settled change of sketch.yaml in root.
// Failures are logged and the loop keeps running until ctx is done.
func (a *App) watch(ctx context.Context, root string, regenerate func(context.Context) error) error {
	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("Watching " + domain.SketchPath(root) + " for changes")

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if filepath.Base(event.Path) == domain.SketchFileName {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				if err := regenerate(ctx); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// Check reports whether the description was generated from the current
// sketch.yaml. It does not touch the network.
func (a *App) Check(_ context.Context, opts CheckOptions) error {
	if _, err := a.loadSettings(opts.Root, opts.Overrides); err != nil {
		return err
	}

	output := a.outputPath(opts.Root, opts.OutputFile)
	if output == domain.StdoutPath {
		return zerr.Wrap(domain.ErrDescriptionNotFound, "check needs a description file, not standard output")
	}

	manifest, err := a.loadManifest(opts.Root)
	if err != nil {
		return err
	}

	gen := generator.New(a.codec, a.resolver, a.hasher, telemetry.NewNoOpTracer(), a.logger)
	want, err := gen.Fingerprint(manifest)
	if err != nil {
		return err
	}

	text, err := a.workspace.ReadDescription(output)
	if err != nil {
		return err
	}

	got, ok := a.renderer.Fingerprint(text)
	if !ok {
		staleErr := zerr.Wrap(domain.ErrStaleDescription, "description carries no fingerprint")
		return zerr.With(staleErr, "path", output)
	}
	if got != want {
		staleErr := zerr.Wrap(domain.ErrStaleDescription, "sketch.yaml changed since the description was generated")
		staleErr = zerr.With(staleErr, "path", output)
		staleErr = zerr.With(staleErr, "expected", want)
		return zerr.With(staleErr, "found", got)
	}

	a.logger.Info(output + " is up to date")
	return nil
}

func (a *App) loadSettings(root string, overrides map[string]any) (*domain.Settings, error) {
	settings, err := a.settings.Load(root, overrides)
	if err != nil {
		return nil, err
	}
	a.ConfigureLogging(settings.LogFormat)
	return settings, nil
}

// ConfigureLogging switches the logger to the given format when it
// supports switching.
func (a *App) ConfigureLogging(format domain.LogFormat) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(format == domain.LogFormatJSON)
	}
}

func (a *App) loadManifest(root string) (*domain.Manifest, error) {
	data, err := a.workspace.ReadSketch(root)
	if err != nil {
		return nil, err
	}

	manifest, err := a.codec.Load(data)
	if err != nil {
		return nil, zerr.With(err, "file", domain.SketchPath(root))
	}
	return manifest, nil
}

func (a *App) outputPath(root, outputFile string) string {
	if outputFile == "" {
		return domain.DefaultDescriptionPath(root)
	}
	return outputFile
}
