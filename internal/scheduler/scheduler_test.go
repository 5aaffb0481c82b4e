package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/testing/leaktest"
)

// countingJob signals on every run
type countingJob struct {
	runs atomic.Int32
	err  error
	Done chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	select {
	case j.Done <- struct{}{}:
	default:
	}
	return j.err
}

type funcJob func(ctx context.Context) error

func (f funcJob) Process(ctx context.Context) error { return f(ctx) }

func waitRuns(t *testing.T, job *countingJob, n int) {
	t.Helper()
	timeout := time.After(time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-job.Done:
		case <-timeout:
			t.Fatalf("timeout waiting for run %d", i+1)
		}
	}
}

func TestScheduler_RunsImmediatelyThenOnInterval(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	sched := New()
	job := &countingJob{Done: make(chan struct{}, 10)}

	h := sched.Schedule(context.Background(), 10*time.Millisecond, job)
	waitRuns(t, job, 3)
	h.Cancel()

	assert.GreaterOrEqual(t, job.runs.Load(), int32(3))
	assert.Equal(t, 0, sched.Active())

	sched.Stop()
	checker.Check(0)
}

func TestHandle_CancelStopsFurtherRuns(t *testing.T) {
	sched := New()
	defer sched.Stop()

	job := &countingJob{Done: make(chan struct{}, 100)}
	h := sched.Schedule(context.Background(), 5*time.Millisecond, job)
	waitRuns(t, job, 2)

	h.Cancel()
	after := job.runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, job.runs.Load(), "no run after Cancel returns")

	// Idempotent
	h.Cancel()
	select {
	case <-h.Done():
	default:
		t.Fatal("handle should be done")
	}
}

func TestHandle_CancelWaitsForInFlightRun(t *testing.T) {
	sched := New()
	defer sched.Stop()

	started := make(chan struct{})
	var finished atomic.Bool
	h := sched.Schedule(context.Background(), time.Hour, funcJob(func(ctx context.Context) error {
		close(started)
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return nil
	}))

	<-started
	h.Cancel()
	assert.True(t, finished.Load())
}

func TestScheduler_JobErrorsKeepSchedule(t *testing.T) {
	sched := New()
	defer sched.Stop()

	job := &countingJob{Done: make(chan struct{}, 10), err: errors.New("boom")}
	h := sched.Schedule(context.Background(), 5*time.Millisecond, job)
	waitRuns(t, job, 3)
	h.Cancel()
}

func TestScheduler_PanicSkipsOnlyThatTick(t *testing.T) {
	sched := New()
	defer sched.Stop()

	var ticks atomic.Int32
	h := sched.Schedule(context.Background(), 5*time.Millisecond, funcJob(func(ctx context.Context) error {
		if ticks.Add(1) == 2 {
			panic("bad tick")
		}
		return nil
	}))

	require.Eventually(t, func() bool { return ticks.Load() >= 5 }, time.Second, 5*time.Millisecond,
		"schedule should keep ticking after a panic")

	select {
	case <-h.Done():
		t.Fatal("a panicking tick must not end the schedule")
	default:
	}

	h.Cancel()
	select {
	case <-h.Done():
	default:
		t.Fatal("Cancel should wait for the job to exit")
	}
}

func TestScheduler_ContextCancellation(t *testing.T) {
	sched := New()
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	job := &countingJob{Done: make(chan struct{}, 10)}
	h := sched.Schedule(ctx, 5*time.Millisecond, job)
	waitRuns(t, job, 1)

	cancel()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("job should exit on context cancellation")
	}
}

func TestScheduler_StopCancelsAll(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	sched := New()
	jobs := []*countingJob{
		{Done: make(chan struct{}, 10)},
		{Done: make(chan struct{}, 10)},
	}
	for _, j := range jobs {
		sched.Schedule(context.Background(), 5*time.Millisecond, j)
	}
	for _, j := range jobs {
		waitRuns(t, j, 1)
	}

	sched.Stop()
	require.Equal(t, 0, sched.Active())

	late := &countingJob{Done: make(chan struct{}, 1)}
	h := sched.Schedule(context.Background(), 5*time.Millisecond, late)
	<-h.Done()
	assert.Equal(t, int32(0), late.runs.Load(), "stopped scheduler accepts no new jobs")

	checker.Check(0)
}
