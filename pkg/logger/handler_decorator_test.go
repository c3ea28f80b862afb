package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestLogHandlerDecorator(t *testing.T) {
	type key struct{}
	extract := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key{}).(string); ok {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}

	t.Run("keeps extractors across WithAttrs and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(buf, nil), nil, extract)
		log := slog.New(h).With(logger.Component("form")).WithGroup("validation")

		log.InfoContext(context.WithValue(context.Background(), key{}, "r-9"), "failed", logger.Field("email"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "form", entry["component"])
		group, ok := entry["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "email", group["field"])
		assert.Equal(t, "r-9", group["request_id"])
	})

	t.Run("skips missing context values", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(buf, nil), extract))
		log.Info("plain")
		assert.NotContains(t, buf.String(), "request_id")
	})
}
