package shutdown_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"person-roster/internal/logger"
	"person-roster/internal/shutdown"
)

func TestManager_ReverseOrderOnce(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())

	var order []string
	m.Register("first", shutdown.Func(func() { order = append(order, "first") }))
	m.Register("second", shutdown.Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("Done channel not closed")
	}
	assert.Error(t, m.Context().Err())
}

func TestManager_StepTimeout(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())
	m.SetStepTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	ran := false
	m.Register("after", shutdown.Func(func() { ran = true }))
	m.Register("stuck", shutdown.Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ran, "steps after a timed-out one still run")
}

func TestManager_ListenStopsOnShutdown(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())
	called := false
	m.Listen(func() { called = true })

	m.Shutdown()
	time.Sleep(10 * time.Millisecond)

	assert.False(t, called)
}
