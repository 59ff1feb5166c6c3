package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestZerologAdapter_Info(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Info("Session", "dataset loaded", map[string]interface{}{"rows": 3})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Session", entry["component"])
	assert.Equal(t, "dataset loaded", entry["message"])
	assert.EqualValues(t, 3, entry["rows"])
	assert.Contains(t, entry, "time")
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Handlers", errors.New("disk full"), map[string]interface{}{"path": "out.csv"})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "out.csv", entry["path"])
	assert.Equal(t, "operation failed", entry["message"])
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("GUIManager", "status updated", nil)
	log.Info("GUIManager", "status updated", nil)
	assert.Zero(t, buf.Len())

	log.Warning("GUIManager", "plot replaced", nil)
	assert.NotZero(t, buf.Len())
}

func TestNoOpLogger(t *testing.T) {
	var log Logger = NoOpLogger{}
	assert.NotPanics(t, func() {
		log.Debug("c", "m", nil)
		log.Info("c", "m", nil)
		log.Warning("c", "m", nil)
		log.Error("c", errors.New("x"), nil)
	})
}
