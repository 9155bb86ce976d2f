package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntries(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		entries := logger.CollectErrorEntries(errors.New("boom"))
		require.Len(t, entries, 1)
		assert.Equal(t, "boom", entries[0].Message)
		assert.Nil(t, entries[0].Metadata)
	})

	t.Run("wrapped chain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer")
		entries := logger.CollectErrorEntries(err)

		messages := make([]string, 0, len(entries))
		for _, e := range entries {
			messages = append(messages, e.Message)
		}
		assert.Equal(t, []string{"outer", "middle", "root"}, messages)
	})

	t.Run("metadata per link", func(t *testing.T) {
		inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
		outer := zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")

		entries := logger.CollectErrorEntries(outer)
		require.Len(t, entries, 2)
		assert.Equal(t, map[string]any{"outer_key": "outer_val"}, entries[0].Metadata)
		assert.Equal(t, map[string]any{"inner_key": "inner_val"}, entries[1].Metadata)
	})

	t.Run("empty message hands metadata on", func(t *testing.T) {
		err := zerr.With(errors.New("permission denied"), "path", "/tmp/x")

		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 1)
		assert.Equal(t, "permission denied", entries[0].Message)
		assert.Equal(t, map[string]any{"path": "/tmp/x"}, entries[0].Metadata)
	})

	t.Run("joined branches in order", func(t *testing.T) {
		kind := zerr.New("failed to fetch package index")
		err := zerr.Wrap(errors.Join(kind, errors.New("timeout")), "resolution failed")

		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 3)
		assert.Equal(t, "resolution failed", entries[0].Message)
		assert.Equal(t, "failed to fetch package index", entries[1].Message)
		assert.Equal(t, "timeout", entries[2].Message)
	})
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a", "line": 3},
			}},
			want: "Error: error\n       alpha: a\n       line: 3\n       zebra: z",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause line1\ncause line2", Metadata: map[string]any{"url": "u"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2\n      url: u",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
