package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const sha256Algorithm = "SHA-256"

// ResolvedArtifact is a platform archive pinned by checksum and bound to a
// Nix variable name.
type ResolvedArtifact struct {
	VariableName string
	URL          string
	// Checksum is a bare hex SHA-256 digest.
	Checksum string
}

// BuildDescription is everything the Nix renderer needs to produce Arduino.nix.
type BuildDescription struct {
	// Fingerprint identifies the sketch.yaml the description was generated from.
	Fingerprint string
	// Artifacts are listed in first-seen order.
	Artifacts []ResolvedArtifact
	// Manifest is the rewritten sketch.yaml.
	Manifest []byte
}

// NormalizeChecksum strips the "SHA-256:" prefix index documents put in
// front of digests. A digest without an algorithm prefix is taken as SHA-256.
func NormalizeChecksum(raw string) (string, error) {
	digest := strings.TrimSpace(raw)
	if algorithm, rest, ok := strings.Cut(digest, ":"); ok {
		if !strings.EqualFold(algorithm, sha256Algorithm) {
			return "", zerr.With(zerr.Wrap(ErrUnsupportedChecksum, "cannot pin "+algorithm+" digest"), "checksum", raw)
		}
		digest = strings.TrimSpace(rest)
	}
	if digest == "" {
		return "", zerr.With(zerr.Wrap(ErrIndexDecodeFailed, "empty checksum"), "checksum", raw)
	}
	if !isHex(digest) {
		return "", zerr.With(zerr.Wrap(ErrIndexDecodeFailed, "checksum is not hexadecimal"), "checksum", raw)
	}
	return digest, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
