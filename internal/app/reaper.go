package app

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Reaper owns the deferred-cleanup timers for dropped connections and
// finished matches. Every timer is a cancellable fire-once task with an
// explicit handle, so a rematch or teardown can deterministically cancel a
// pending deletion instead of racing a stale timer.
type Reaper struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	logger *zap.Logger
}

// NewReaper creates a reaper with no pending timers
func NewReaper(logger *zap.Logger) *Reaper {
	return &Reaper{
		timers: make(map[string]*time.Timer),
		logger: logger,
	}
}

// Schedule arms a timer for the key, replacing any pending one. When it
// fires, the handle is dropped before fn runs.
func (r *Reaper) Schedule(key string, d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[key]; ok {
		t.Stop()
	}

	r.timers[key] = time.AfterFunc(d, func() {
		r.mu.Lock()
		delete(r.timers, key)
		r.mu.Unlock()
		fn()
	})

	r.logger.Debug("cleanup scheduled", zap.String("key", key), zap.Duration("after", d))
}

// Cancel stops a pending timer; reports whether one was armed
func (r *Reaper) Cancel(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[key]
	if !ok {
		return false
	}
	t.Stop()
	delete(r.timers, key)
	return true
}

// Stop cancels every pending timer
func (r *Reaper) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, t := range r.timers {
		t.Stop()
		delete(r.timers, key)
	}
}

// Pending reports whether a timer is armed for the key
func (r *Reaper) Pending(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.timers[key]
	return ok
}
