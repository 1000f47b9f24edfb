package app

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReaper_ScheduleFires(t *testing.T) {
	r := NewReaper(zap.NewNop())
	defer r.Stop()

	var fired atomic.Bool
	r.Schedule("s1", 10*time.Millisecond, func() { fired.Store(true) })
	assert.True(t, r.Pending("s1"))

	assert.Eventually(t, fired.Load, time.Second, 5*time.Millisecond)
	assert.False(t, r.Pending("s1"), "fired timers drop their handle")
}

func TestReaper_CancelStopsPendingTimer(t *testing.T) {
	r := NewReaper(zap.NewNop())
	defer r.Stop()

	var fired atomic.Bool
	r.Schedule("s1", 20*time.Millisecond, func() { fired.Store(true) })

	assert.True(t, r.Cancel("s1"))
	assert.False(t, r.Cancel("s1"), "double cancel reports no timer")

	time.Sleep(50 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestReaper_ScheduleReplacesExisting(t *testing.T) {
	r := NewReaper(zap.NewNop())
	defer r.Stop()

	var first, second atomic.Bool
	r.Schedule("s1", 10*time.Millisecond, func() { first.Store(true) })
	r.Schedule("s1", 10*time.Millisecond, func() { second.Store(true) })

	assert.Eventually(t, second.Load, time.Second, 5*time.Millisecond)
	assert.False(t, first.Load(), "replaced timer never fires")
}
