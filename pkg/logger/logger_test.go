package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/weibo/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("injects extracted attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestID)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "profile loaded", slog.String("uid", "1"))

		m := decodeLine(t, &buf)
		require.Equal(t, "profile loaded", m["msg"])
		require.Equal(t, "req-1", m["request_id"])
		require.Equal(t, "1", m["uid"])
	})

	t.Run("skips missing attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestID, nil)

		log.InfoContext(context.Background(), "hello")

		m := decodeLine(t, &buf)
		require.NotContains(t, m, "request_id")
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelWarn)

		log.Info("dropped")
		require.Zero(t, buf.Len())
	})

	t.Run("keeps extractors after With", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestID).
			With(slog.String("provider", "weibo")).
			WithGroup("g")

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		log.InfoContext(ctx, "hello")

		m := decodeLine(t, &buf)
		require.Equal(t, "weibo", m["provider"])
		require.Equal(t, map[string]any{"request_id": "req-2"}, m["g"])
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()
	log := logger.NewWithSentry(logger.SentryConfig{}, slog.LevelInfo)
	require.NotNil(t, log)
	require.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	require.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewNope(t *testing.T) {
	t.Parallel()
	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}
