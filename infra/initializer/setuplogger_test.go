package initializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{
		Format:     "json",
		TimeFormat: "2006-01-02",
		Prefix:     "[kash]",
	})
	logger.Info("category created", "user_id", "u-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "category created", line["msg"])
	assert.Equal(t, "u-1", line["user_id"])
	assert.Same(t, logger, slog.Default())
}

func TestNewLogger_LevelFilters(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	// charmbracelet levels: debug -4, info 0, warn 4, error 8
	logger := newLogger(&buf, &config.Log{Format: "text", Level: 4})
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
