package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/arduino2nix/internal/adapters/fs"
)

// emptyHash is XXHash64 of no input. If this changes, every existing
// Arduino.nix reports as stale.
const emptyHash = "ef46db3751d8e999"

func TestHasher_Fingerprint(t *testing.T) {
	h := fs.NewHasher()

	assert.Equal(t, emptyHash, h.Fingerprint(nil))
	assert.Len(t, h.Fingerprint([]byte("profiles: {}\n")), 16)
	assert.Equal(t, h.Fingerprint([]byte("a")), h.Fingerprint([]byte("a")))
	assert.NotEqual(t, h.Fingerprint([]byte("a")), h.Fingerprint([]byte("b")))
}
