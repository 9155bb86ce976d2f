package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/cmd/arduino2nix/commands"
	"go.trai.ch/arduino2nix/internal/adapters/config"
	"go.trai.ch/arduino2nix/internal/app"
	"go.trai.ch/arduino2nix/internal/build"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

type mockApp struct {
	generateFunc  func(ctx context.Context, opts app.GenerateOptions) error
	checkFunc     func(ctx context.Context, opts app.CheckOptions) error
	platformsFunc func(ctx context.Context, opts app.PlatformsOptions) error
}

func (m *mockApp) Generate(ctx context.Context, opts app.GenerateOptions) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, opts app.CheckOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Platforms(ctx context.Context, opts app.PlatformsOptions) error {
	if m.platformsFunc != nil {
		return m.platformsFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"--project-root", "blink", "--log-format", "json",
			"generate", "-o", "-", "--no-format", "--match-version",
			"--fetch-timeout", "5s", "--progress", "never", "--watch",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "blink", captured.Root)
		assert.Equal(t, domain.StdoutPath, captured.OutputFile)
		assert.True(t, captured.Watch)
		assert.Equal(t, map[string]any{
			config.KeyLogFormat:    "json",
			config.KeyNoFormat:     true,
			config.KeyMatchVersion: true,
			config.KeyFetchTimeout: 5 * time.Second,
			config.KeyProgress:     "never",
		}, captured.Overrides)
	})

	t.Run("unset flags are not overrides", func(t *testing.T) {
		var captured app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", captured.Root)
		assert.Empty(t, captured.OutputFile)
		assert.False(t, captured.Watch)
		assert.Empty(t, captured.Overrides)
	})

	t.Run("formatter flag", func(t *testing.T) {
		var captured app.GenerateOptions
		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "--formatter", "alejandra --quiet"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "alejandra --quiet", captured.Overrides[config.KeyFormatter])
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"generate", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Check(t *testing.T) {
	var captured app.CheckOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.CheckOptions) error {
			captured = opts
			return domain.ErrStaleDescription
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"check", "-C", "blink", "-o", "out.nix"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrStaleDescription)
	assert.Equal(t, "blink", captured.Root)
	assert.Equal(t, "out.nix", captured.OutputFile)
}

func TestCommands_Platforms(t *testing.T) {
	t.Run("url and vendor", func(t *testing.T) {
		var captured app.PlatformsOptions
		mock := &mockApp{
			platformsFunc: func(_ context.Context, opts app.PlatformsOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"platforms", "https://x/index.json", "--vendor", "esp32", "--fetch-timeout", "1m"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "https://x/index.json", captured.URL)
		assert.Equal(t, "esp32", captured.Vendor)
		assert.Equal(t, time.Minute, captured.Overrides[config.KeyFetchTimeout])
	})

	t.Run("defaults to the arduino index", func(t *testing.T) {
		var captured app.PlatformsOptions
		mock := &mockApp{
			platformsFunc: func(_ context.Context, opts app.PlatformsOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"platforms"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.DefaultIndexURL, captured.URL)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"arduino2nix version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "arduino2nix version "+build.Version)
}

func TestRoot_Help(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "generate")
	assert.Contains(t, buf.String(), "platforms")
}
