package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sales-forecaster/internal/logger"
)

func TestManager_ShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register(record("quit"))
	m.Register(record("lifecycle"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"lifecycle", "quit"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestManager_ComponentTimeout(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.timeout = 10 * time.Millisecond

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register(Func(func() { ran = true }))
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}

func TestManager_StopWithoutListen(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	assert.NotPanics(t, m.Stop)
	assert.Error(t, m.Context().Err())
}

func TestManager_ListenThenStop(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.Listen()
	m.Listen()
	m.Stop()

	select {
	case <-m.Done():
		t.Fatal("stop must not run shutdown")
	default:
	}
}
