package ports

import (
	"context"

	"go.trai.ch/arduino2nix/internal/core/domain"
)

// DescriptionRenderer produces the text of a build description.
//
//go:generate mockgen -source=description.go -destination=mocks/mock_description.go -package=mocks
type DescriptionRenderer interface {
	// Render returns the description. Equal inputs render to equal bytes.
	Render(desc *domain.BuildDescription) ([]byte, error)
	// Fingerprint extracts the fingerprint recorded by Render. It returns
	// false when the text carries none.
	Fingerprint(text []byte) (string, bool)
}

// Formatter pretty-prints generated source through an external program.
type Formatter interface {
	// Format pipes src through command and returns its standard output.
	Format(ctx context.Context, command string, src []byte) ([]byte, error)
}
