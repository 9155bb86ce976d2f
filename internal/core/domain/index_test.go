package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func sampleIndex() *domain.IndexDocument {
	return &domain.IndexDocument{
		Packages: []domain.Package{
			{
				Name: "arduino",
				Platforms: []domain.PlatformEntry{
					{Name: "avr", Version: "1.8.5", URL: "https://x/avr-1.8.5.tar.bz2", Checksum: "SHA-256:aaa"},
					{Name: "avr", Version: "1.8.6", URL: "https://x/avr-1.8.6.tar.bz2", Checksum: "SHA-256:bbb"},
					{Name: "samd", Version: "1.8.6", URL: "https://x/samd.tar.bz2", Checksum: "SHA-256:ccc"},
				},
			},
			{
				Name: "esp32",
				Platforms: []domain.PlatformEntry{
					{Name: "esp32", Version: "2.0.5", URL: "https://x/pkg.tar.bz2", Checksum: "SHA-256:abc123"},
				},
			},
		},
	}
}

func TestIndexDocument_FindPackage(t *testing.T) {
	doc := sampleIndex()

	pkg, ok := doc.FindPackage("esp32")
	require.True(t, ok)
	assert.Equal(t, "esp32", pkg.Name)

	_, ok = doc.FindPackage("ESP32")
	assert.False(t, ok, "package names are case-sensitive")
}

func TestPackage_FindPlatform(t *testing.T) {
	doc := sampleIndex()
	pkg, ok := doc.FindPackage("arduino")
	require.True(t, ok)

	v186 := domain.Version{Major: 1, Minor: 8, Patch: 6}

	t.Run("first by name ignores the version", func(t *testing.T) {
		entry, ok := pkg.FindPlatform("avr", v186, domain.MatchFirstByName)
		require.True(t, ok)
		assert.Equal(t, "1.8.5", entry.Version)
	})

	t.Run("exact version", func(t *testing.T) {
		entry, ok := pkg.FindPlatform("avr", v186, domain.MatchExactVersion)
		require.True(t, ok)
		assert.Equal(t, "1.8.6", entry.Version)
	})

	t.Run("exact version absent", func(t *testing.T) {
		_, ok := pkg.FindPlatform("avr", domain.Version{Major: 9}, domain.MatchExactVersion)
		assert.False(t, ok)
	})

	t.Run("absent name never matches", func(t *testing.T) {
		_, ok := pkg.FindPlatform("megaavr", v186, domain.MatchFirstByName)
		assert.False(t, ok)
	})
}

func TestPlatformEntry_HasVersion(t *testing.T) {
	entry := domain.PlatformEntry{Version: "not-a-version"}
	assert.False(t, entry.HasVersion(domain.Version{}))
}

func TestMatchPolicy_String(t *testing.T) {
	assert.Equal(t, "first-by-name", domain.MatchFirstByName.String())
	assert.Equal(t, "exact-version", domain.MatchExactVersion.String())
}
