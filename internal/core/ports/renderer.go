package ports

import (
	"context"
	"time"
)

// Renderer presents generation progress to the user. It receives span
// lifecycle events, so the pipeline itself never prints.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// OnTaskStart is called when a span begins.
	// spanID: unique identifier for this span
	// parentID: spanID of the parent span (empty if root)
	// name: human-readable name, such as a platform reference
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskComplete is called when a span ends.
	// err: nil if successful, error otherwise
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
