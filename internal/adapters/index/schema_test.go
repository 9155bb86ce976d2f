package index_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/adapters/index"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestDecodeDocument_Canonical(t *testing.T) {
	doc, err := index.DecodeDocument(readFixture(t, "package_esp32_index.json"))
	require.NoError(t, err)

	require.Len(t, doc.Packages, 1)
	pkg := doc.Packages[0]
	assert.Equal(t, "esp32", pkg.Name)
	assert.Equal(t, "Espressif Systems", pkg.Maintainer)
	assert.Equal(t, "https://github.com/espressif/arduino-esp32", pkg.WebsiteURL)
	require.Len(t, pkg.Extra, 1)
	assert.Equal(t, "help", pkg.Extra[0].Key)
	assert.JSONEq(t, `{"online": "http://esp32.com"}`, string(pkg.Extra[0].Value))

	require.Len(t, pkg.Platforms, 1)
	entry := pkg.Platforms[0]
	assert.Equal(t, "esp32", entry.Name)
	assert.Equal(t, "esp32", entry.Architecture)
	assert.Equal(t, "2.0.5", entry.Version)
	assert.Equal(t, "https://x/pkg.tar.bz2", entry.URL)
	assert.Equal(t, "SHA-256:abc123", entry.Checksum)
	assert.Equal(t, "33435098", entry.Size)

	keys := make([]string, 0, len(entry.Extra))
	for _, m := range entry.Extra {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"help", "boards", "toolsDependencies"}, keys)

	require.Len(t, pkg.Tools, 1)
	require.Len(t, pkg.Tools[0].Systems, 1)
	assert.Equal(t, "x86_64-pc-linux-gnu", pkg.Tools[0].Systems[0].Host)
	assert.Equal(t, "44570133", pkg.Tools[0].Systems[0].Size, "numeric sizes keep their literal form")
}

func TestDecodeDocument_KeyedPlatforms(t *testing.T) {
	doc, err := index.DecodeDocument(readFixture(t, "package_keyed_index.json"))
	require.NoError(t, err)

	require.Len(t, doc.Packages, 1)
	platforms := doc.Packages[0].Platforms
	require.Len(t, platforms, 2)
	assert.Equal(t, "avr", platforms[0].Name, "the key names entries without a name")
	assert.Equal(t, "1.0.0", platforms[0].Version)
	assert.Equal(t, "samd", platforms[1].Name)

	require.Len(t, doc.Extra, 1)
	assert.Equal(t, "signature", doc.Extra[0].Key)
	assert.JSONEq(t, `"unverified"`, string(doc.Extra[0].Value))
}

func TestDecodeDocument_NullCollections(t *testing.T) {
	doc, err := index.DecodeDocument([]byte(`{"packages": [{"name": "a", "platforms": null, "tools": null}]}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Packages[0].Platforms)
	assert.Empty(t, doc.Packages[0].Tools)
}

func TestDecodeDocument_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not json", input: "<html>"},
		{name: "truncated", input: `{"packages": [`},
		{name: "top level array", input: `[]`},
		{name: "missing packages", input: `{"other": 1}`},
		{name: "packages not an array", input: `{"packages": {}}`},
		{name: "platforms scalar", input: `{"packages": [{"name": "a", "platforms": 3}]}`},
		{name: "name not a string", input: `{"packages": [{"name": {}}]}`},
		{name: "trailing data", input: `{"packages": []} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := index.DecodeDocument([]byte(tt.input))
			require.ErrorIs(t, err, domain.ErrIndexDecodeFailed)
		})
	}
}
