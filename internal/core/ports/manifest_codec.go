// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/arduino2nix/internal/core/domain"

// ManifestCodec converts sketch.yaml text to and from the manifest model.
//
//go:generate mockgen -source=manifest_codec.go -destination=mocks/mock_manifest_codec.go -package=mocks
type ManifestCodec interface {
	// Load decodes a sketch.yaml document. Fields the model does not know are
	// kept on the returned manifest.
	Load(data []byte) (*domain.Manifest, error)
	// Dump encodes a manifest, restoring the fields kept by Load.
	Dump(manifest *domain.Manifest) ([]byte, error)
}
