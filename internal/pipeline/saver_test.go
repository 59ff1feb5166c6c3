package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-forecaster/internal/logger"
	"sales-forecaster/internal/models"
	"sales-forecaster/internal/timing"
)

func TestSaver_SaveToWriter(t *testing.T) {
	ds, err := models.NewDataset("x.csv", []string{"Date", "Sales", "Note"}, [][]string{
		{"2024-01-01", "100", "has, comma"},
		{"2024-01-02", "", ""},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewSaver(logger.NoOpLogger{}, timing.Disabled()).SaveToWriter(&buf, ds))

	assert.Equal(t, "Date,Sales,Note\n2024-01-01,100,\"has, comma\"\n2024-01-02,,\n", buf.String())
}

func TestSaver_SaveToPath_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forecast_output.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 50)), 0o644))

	ds, err := models.NewDataset("x.csv", []string{"Date", "Sales"}, [][]string{{"2024-01-01", "1"}})
	require.NoError(t, err)

	require.NoError(t, NewSaver(logger.NoOpLogger{}, timing.Disabled()).SaveToPath(path, ds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Sales\n2024-01-01,1\n", string(data))
}

func TestSaver_SaveToPath_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	ds, err := models.NewDataset("x.csv", []string{"Date"}, nil)
	require.NoError(t, err)

	assert.Error(t, NewSaver(logger.NoOpLogger{}, timing.Disabled()).SaveToPath(path, ds))
}

func TestSaver_NilDataset(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewSaver(logger.NoOpLogger{}, timing.Disabled()).SaveToWriter(&buf, nil))
}

func TestSaver_RoundTrip(t *testing.T) {
	input := "Date,Sales,Region\n2024-01-01,100,\"North, East\"\n2024-01-02,110,\n"
	loader := NewLoader(logger.NoOpLogger{}, timing.Disabled())

	first, err := loader.Load("in.csv", strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewSaver(logger.NoOpLogger{}, timing.Disabled()).SaveToWriter(&buf, first))

	second, err := loader.Load("out.csv", &buf)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}
