package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen-pos/internal/common/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("pos-api", logger.WithOutput(&buf)).WithRequestID("req-1")

	log.Info("order_created", map[string]any{"order_id": 7})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "pos-api", e["service"])
	assert.Equal(t, "order_created", e["action"])
	assert.Equal(t, "order_created", e["msg"])
	assert.Equal(t, "req-1", e["request_id"])
	assert.Equal(t, float64(7), e["order_id"])
	assert.Contains(t, e, "hostname")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("pos-api", logger.WithOutput(&buf))

	log.Error("publish_failed", errors.New("broker down"), nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	errField, ok := entries[0]["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "broker down", errField["msg"])
	assert.NotEmpty(t, errField["stack"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("pos-api", logger.WithOutput(&buf), logger.WithLevel("warn"))

	log.Debug("skipped", nil)
	log.Info("skipped", nil)
	log.Warn("kept", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["action"])
}

func TestLogger_WithRequestIDDoesNotMutate(t *testing.T) {
	base := logger.New("pos-api")
	scoped := base.WithRequestID(logger.NewRequestID())

	assert.Empty(t, base.RequestID())
	assert.Len(t, scoped.RequestID(), 36)
}
