package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", FormatJSON)

	ctx := WithLogger(context.Background(), l)
	ctx = With(ctx, "channel", "C123")
	Error(ctx, "unfurl failed", errors.New("boom"), "url", "https://issues.example.com/browse/PROJ-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "unfurl failed", line["msg"])
	assert.Equal(t, "C123", line["channel"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "https://issues.example.com/browse/PROJ-1", line["url"])
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, "warn", FormatJSON))

	Debug(ctx, "hidden")
	Info(ctx, "hidden too")
	assert.Empty(t, buf.String())

	Warn(ctx, "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	t.Run("should print level, message and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		l.With("event_type", "link_shared").Info("link shared", "url", "https://issues.example.com/browse/A-1")

		out := buf.String()
		assert.Contains(t, out, "[INFO]")
		assert.Contains(t, out, "link shared")
		assert.Contains(t, out, "event_type=link_shared")
		assert.Contains(t, out, "url=https://issues.example.com/browse/A-1")
	})

	t.Run("should prefix grouped attributes", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, nil))

		l.WithGroup("jira").With("status", 404).Warn("fetch failed")

		assert.Contains(t, buf.String(), "jira.status=404")
	})

	t.Run("should prefix record attributes logged under a group", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, nil))

		l.WithGroup("jira").WithGroup("search").Info("search done", "count", 3)

		assert.Contains(t, buf.String(), "jira.search.count=3")
	})

	t.Run("should not prefix attributes added before the group", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, nil))

		l.With("channel", "C1").WithGroup("jira").Info("fetched", "status", 200)

		out := buf.String()
		assert.Contains(t, out, "channel=C1")
		assert.NotContains(t, out, "jira.channel")
		assert.Contains(t, out, "jira.status=200")
	})

	t.Run("should skip records below the level", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

		l.Warn("ignored")
		assert.Empty(t, buf.String())
	})
}
