package index

import (
	"net/http"

	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
)

// NewFetcherWithClient exposes newFetcherWithClient for testing.
func NewFetcherWithClient(hc *http.Client, log ports.Logger) *Fetcher {
	return newFetcherWithClient(hc, log)
}

// DecodeDocument exposes decodeDocument for testing.
func DecodeDocument(data []byte) (*domain.IndexDocument, error) {
	return decodeDocument(data)
}
