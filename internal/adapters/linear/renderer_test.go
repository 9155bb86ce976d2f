package linear_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/adapters/linear"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return linear.NewRenderer(buf), buf
}

func TestRenderer_Resolved(t *testing.T) {
	r, buf := newRenderer(t)
	require.NoError(t, r.Start(context.Background()))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnTaskStart("span1", "", "esp32:esp32 (2.0.5)", start)
	r.OnTaskComplete("span1", start.Add(1500*time.Millisecond), nil)
	require.NoError(t, r.Stop())

	assert.Equal(t,
		"[esp32:esp32 (2.0.5)] Starting...\n"+
			"[esp32:esp32 (2.0.5)] ✓ Resolved in 1.5s\n",
		buf.String())
}

func TestRenderer_Failed(t *testing.T) {
	r, buf := newRenderer(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnTaskStart("span1", "", "arduino:avr (1.8.6)", start)
	r.OnTaskComplete("span1", start.Add(250*time.Millisecond), errors.New("index unreachable"))

	assert.Contains(t, buf.String(), "[arduino:avr (1.8.6)] ✗ Failed after 250ms: index unreachable\n")
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnTaskComplete("missing", time.Now(), nil)
	assert.Empty(t, buf.String())
}

func TestRenderer_StopForgetsOpenTasks(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnTaskStart("span1", "", "a:b (1.0.0)", time.Now())
	require.NoError(t, r.Stop())
	buf.Reset()

	r.OnTaskComplete("span1", time.Now(), nil)
	assert.Empty(t, buf.String())
}
