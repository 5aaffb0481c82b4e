package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/worker"
)

// Scheduler runs recurring jobs on their own ticker goroutines
type Scheduler struct {
	mu      sync.Mutex
	handles map[*Handle]struct{}
	wg      sync.WaitGroup
	stopped bool
}

// Handle controls one scheduled job
type Handle struct {
	cancel chan struct{}
	done   chan struct{}
	once   sync.Once
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		handles: make(map[*Handle]struct{}),
	}
}

// Schedule runs job immediately and then at every interval until the returned
// handle is cancelled. Job errors and panics are logged and the schedule keeps running.
func (s *Scheduler) Schedule(ctx context.Context, interval time.Duration, job worker.Job) *Handle {
	h := &Handle{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		close(h.done)
		return h
	}
	s.handles[h] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(h.done)
		defer s.forget(h)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			run(ctx, job)
			select {
			case <-ticker.C:
			case <-h.cancel:
				return
			case <-ctx.Done():
				return
			}

			// A cancel racing with a tick must win
			select {
			case <-h.cancel:
				return
			default:
			}
		}
	}()

	return h
}

// Cancel stops the job and waits for an in-flight run to finish.
// No run starts after Cancel returns. Safe to call more than once.
func (h *Handle) Cancel() {
	h.once.Do(func() {
		close(h.cancel)
	})
	<-h.done
}

// Done is closed once the job goroutine has exited
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Stop cancels every scheduled job and waits for them to exit
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	handles := make([]*Handle, 0, len(s.handles))
	for h := range s.handles {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
	s.wg.Wait()
}

// Active returns the number of jobs still scheduled
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	delete(s.handles, h)
	s.mu.Unlock()
}

// run executes one tick. A panic is logged and the next tick runs as usual.
func run(ctx context.Context, job worker.Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgJobPanicked, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Debug(LogMsgJobFailed, "error", err)
	}
}
