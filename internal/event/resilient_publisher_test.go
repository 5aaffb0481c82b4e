package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

// flakyBus fails the publishes its schedule says to fail
type flakyBus struct {
	mu       sync.Mutex
	attempts []time.Time
	events   []Event
	fail     func(attempt int) bool
	delay    time.Duration
	subs     map[Type]int
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.attempts = append(b.attempts, time.Now())
	b.events = append(b.events, evt)
	n := len(b.attempts)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.fail != nil && b.fail(n) {
		return errors.New("discord unreachable")
	}
	return nil
}

func (b *flakyBus) Subscribe(eventType Type, _ Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[Type]int)
	}
	b.subs[eventType]++
}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.attempts)
}

func (b *flakyBus) times() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time{}, b.attempts...)
}

func committed(id string) Event {
	tier := domain.PrizeTier{Level: 2, Name: "First", Quota: 3}
	return NewWinnersCommittedEvent(domain.DrawModeSequential, tier,
		[]domain.WinnerRecord{{ParticipantID: id, ParticipantName: "Winner " + id, TierLevel: 2, TierName: "First"}}, 2, 1)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []DeadLetterEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var raw struct {
			SchemaVersion string `json:"schema_version"`
			Event         struct {
				Type Type `json:"type"`
			} `json:"event"`
			Attempts  int    `json:"attempts"`
			LastError string `json:"last_error"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &raw))
		out = append(out, DeadLetterEntry{
			SchemaVersion: raw.SchemaVersion,
			Event:         Event{Type: raw.Event.Type},
			Attempts:      raw.Attempts,
			LastError:     raw.LastError,
		})
	}
	require.NoError(t, scanner.Err())
	return out
}

// lineCount is safe to poll from assert.Eventually
func lineCount(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n := 0
	for _, b := range data {
		if b == '\n' {
			n++
		}
	}
	return n
}

func newPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rp.Shutdown(context.Background()) })
	return rp, path
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	bus := &flakyBus{}
	rp, path := newPublisher(t, bus, 3, 20*time.Millisecond)

	require.NoError(t, rp.Publish(context.Background(), committed("E001")))

	assert.Equal(t, 1, bus.count())
	assert.Equal(t, DrawWinnersCommitted, bus.events[0].Type)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{fail: func(n int) bool { return n <= 2 }}
	rp, path := newPublisher(t, bus, 5, 20*time.Millisecond)

	// Publish reports success even though delivery is still pending
	require.NoError(t, rp.Publish(context.Background(), committed("E002")))

	assert.Eventually(t, func() bool { return bus.count() == 3 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_DeadLettersAfterMaxRetries(t *testing.T) {
	bus := &flakyBus{fail: func(int) bool { return true }}
	rp, path := newPublisher(t, bus, 2, 10*time.Millisecond)

	rp.PublishWithRetry(context.Background(), committed("E003"))

	// Initial attempt plus two retries
	assert.Eventually(t, func() bool { return lineCount(path) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 3, bus.count())

	entry := readDeadLetters(t, path)[0]
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, DrawWinnersCommitted, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "discord unreachable", entry.LastError)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	base := 40 * time.Millisecond
	bus := &flakyBus{fail: func(n int) bool { return n < 3 }}
	rp, _ := newPublisher(t, bus, 5, base)

	rp.PublishWithRetry(context.Background(), committed("E004"))
	require.Eventually(t, func() bool { return bus.count() == 3 }, 2*time.Second, 5*time.Millisecond)

	at := bus.times()
	assert.GreaterOrEqual(t, at[1].Sub(at[0]), base)
	assert.GreaterOrEqual(t, at[2].Sub(at[1]), 2*base)
}

func TestResilientPublisher_QueueOverflowDeadLetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	bus := &flakyBus{fail: func(int) bool { return true }}
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		shutdown:   make(chan struct{}),
		deadLetter: dl,
	}
	// No worker is running, so the queue fills after two events

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), committed(fmt.Sprintf("E1%02d", i)))
	}

	assert.Len(t, readDeadLetters(t, path), 3)
	assert.Len(t, rp.retryQueue, 2)
	require.NoError(t, dl.Close())
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	bus := &flakyBus{fail: func(n int) bool { return n <= 3 }}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	for _, id := range []string{"E201", "E202", "E203"} {
		rp.PublishWithRetry(context.Background(), committed(id))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// Every queued event got one more attempt instead of waiting out the delay
	assert.Equal(t, 6, bus.count())
	assert.Empty(t, readDeadLetters(t, path))

	// Second shutdown is a no-op
	assert.NoError(t, rp.Shutdown(ctx))
}

func TestResilientPublisher_SubscribeReachesWrappedBus(t *testing.T) {
	bus := &flakyBus{}
	rp, _ := newPublisher(t, bus, 1, time.Millisecond)

	rp.Subscribe(DrawTierAdvanced, func(context.Context, Event) error { return nil })
	assert.Equal(t, 1, bus.subs[DrawTierAdvanced])
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	rp, _ := newPublisher(t, bus, 3, 10*time.Millisecond)

	const goroutines, perGoroutine = 8, 25
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				rp.PublishWithRetry(context.Background(), committed("E300"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, bus.count())
}
