package nix_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/adapters/nix"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

const esp32Manifest = `profiles:
  esp32:
    fqbn: esp32:esp32:esp32
    platforms:
      - platform: esp32:esp32 (2.0.5)
        platform_index_url: file://${esp32-esp32-v2-0-5}
note: it's ''quoted'' and ${HOME}
`

func TestRenderer_Render_Golden(t *testing.T) {
	tests := []struct {
		name string
		desc *domain.BuildDescription
	}{
		{
			name: "esp32",
			desc: &domain.BuildDescription{
				Fingerprint: "0123456789abcdef",
				Artifacts: []domain.ResolvedArtifact{
					{VariableName: "esp32-esp32-v2-0-5", URL: "https://x/pkg.tar.bz2", Checksum: "abc123"},
				},
				Manifest: []byte(esp32Manifest),
			},
		},
		{
			name: "no_platforms",
			desc: &domain.BuildDescription{
				Fingerprint: "fedcba9876543210",
				Manifest:    []byte("profiles:\n  uno:\n    fqbn: arduino:avr:uno"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := nix.NewRenderer().Render(tt.desc)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, out)
		})
	}
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	desc := &domain.BuildDescription{
		Fingerprint: "0123456789abcdef",
		Artifacts: []domain.ResolvedArtifact{
			{VariableName: "b-b-v1-0-0", URL: "https://x/b", Checksum: "bb"},
			{VariableName: "a-a-v1-0-0", URL: "https://x/a", Checksum: "aa"},
		},
		Manifest: []byte("profiles: {}\n"),
	}

	r := nix.NewRenderer()
	first, err := r.Render(desc)
	require.NoError(t, err)
	second, err := r.Render(desc)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	text := string(first)
	assert.Less(t, strings.Index(text, "b-b-v1-0-0 ="), strings.Index(text, "a-a-v1-0-0 ="), "bindings keep first-seen order")
}

func TestRenderer_Render_EscapesURL(t *testing.T) {
	desc := &domain.BuildDescription{
		Artifacts: []domain.ResolvedArtifact{
			{VariableName: "x-y-v1-0-0", URL: `https://x/"a"/${b}\c`, Checksum: "00"},
		},
	}

	out, err := nix.NewRenderer().Render(desc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `url = "https://x/\"a\"/\${b}\\c";`)
}

func TestRenderer_Render_UnknownInterpolationEscaped(t *testing.T) {
	desc := &domain.BuildDescription{
		Manifest: []byte("url: file://${not-emitted}\n"),
	}

	out, err := nix.NewRenderer().Render(desc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "url: file://''${not-emitted}")
}

func TestRenderer_Render_InvalidName(t *testing.T) {
	for _, name := range []string{"3d-printer-v1-0-0", "", "sketch_yaml", "a b"} {
		desc := &domain.BuildDescription{
			Artifacts: []domain.ResolvedArtifact{{VariableName: name, URL: "u", Checksum: "c"}},
		}
		_, err := nix.NewRenderer().Render(desc)
		require.ErrorIs(t, err, domain.ErrRenderFailed, "name %q", name)
	}
}

func TestRenderer_Render_DuplicateBinding(t *testing.T) {
	desc := &domain.BuildDescription{
		Artifacts: []domain.ResolvedArtifact{
			{VariableName: "a-a-v1-0-0", URL: "u", Checksum: "c"},
			{VariableName: "a-a-v1-0-0", URL: "u", Checksum: "c"},
		},
	}
	_, err := nix.NewRenderer().Render(desc)
	require.ErrorIs(t, err, domain.ErrRenderFailed)
}

func TestRenderer_Fingerprint(t *testing.T) {
	r := nix.NewRenderer()

	out, err := r.Render(&domain.BuildDescription{Fingerprint: "cafe"})
	require.NoError(t, err)

	fp, ok := r.Fingerprint(out)
	require.True(t, ok)
	assert.Equal(t, "cafe", fp)

	_, ok = r.Fingerprint([]byte("{ pkgs }: pkgs.hello\n# arduino2nix-fingerprint: late\n"))
	assert.False(t, ok, "only the header is searched")

	_, ok = r.Fingerprint([]byte("# some other file\n"))
	assert.False(t, ok)
}
