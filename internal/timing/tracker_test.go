package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-forecaster/internal/logger"
)

func TestTracker_RecordsOperations(t *testing.T) {
	tt := NewTracker(logger.NoOpLogger{})

	for i := 0; i < 3; i++ {
		ctx := tt.StartTiming("load_csv")
		time.Sleep(time.Millisecond)
		tt.EndTiming(ctx)
	}

	timings := tt.GetTimings("load_csv")
	require.Len(t, timings, 3)
	assert.GreaterOrEqual(t, tt.GetAverageTime("load_csv"), time.Millisecond)
	assert.Nil(t, tt.GetTimings("save_csv"))
	assert.Zero(t, tt.GetAverageTime("save_csv"))
}

func TestTracker_EndWithoutStartIgnored(t *testing.T) {
	tt := NewTracker(logger.NoOpLogger{})
	tt.EndTiming(context.Background())
	assert.Nil(t, tt.GetTimings(""))
}

func TestTracker_Disabled(t *testing.T) {
	tt := Disabled()
	tt.EndTiming(tt.StartTiming("load_csv"))
	assert.Nil(t, tt.GetTimings("load_csv"))

	tt.SetEnabled(true)
	tt.EndTiming(tt.StartTiming("load_csv"))
	assert.Len(t, tt.GetTimings("load_csv"), 1)
}

func TestTracker_Reset(t *testing.T) {
	tt := NewTracker(logger.NoOpLogger{})
	tt.EndTiming(tt.StartTiming("a"))
	tt.EndTiming(tt.StartTiming("b"))

	tt.Reset("a")
	assert.Nil(t, tt.GetTimings("a"))
	assert.Len(t, tt.GetTimings("b"), 1)

	tt.Reset("")
	assert.Nil(t, tt.GetTimings("b"))
}
