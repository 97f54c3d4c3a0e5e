package scheduler

import (
	"context"
	"log"
	"sync"
)

// Handle owns at most one running Scheduler.
type Handle struct {
	mu      sync.Mutex
	current *Scheduler
	cancel  context.CancelFunc
	done    chan struct{}
}

// Start stops any running scheduler, then runs s until ctx is done or
// Stop is called.
func (h *Handle) Start(ctx context.Context, s *Scheduler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := s.Run(runCtx); err != nil {
			log.Printf("[scheduler] Error: %v", err)
		}
	}()

	h.current = s
	h.cancel = cancel
	h.done = done
}

// Stop cancels the running scheduler and waits for its in-flight tick to
// finish. It is safe to call repeatedly.
func (h *Handle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

// Running reports whether a scheduler is active.
func (h *Handle) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.done == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// Kick forwards to the running scheduler, if any.
func (h *Handle) Kick() {
	h.mu.Lock()
	s := h.current
	h.mu.Unlock()

	if s != nil {
		s.Kick()
	}
}

func (h *Handle) stopLocked() {
	if h.cancel == nil {
		return
	}
	h.cancel()
	<-h.done

	h.current = nil
	h.cancel = nil
	h.done = nil
}
