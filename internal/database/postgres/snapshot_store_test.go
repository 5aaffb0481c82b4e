package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/database"
	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

func sampleSnapshot() *domain.Snapshot {
	at := time.Date(2024, 12, 20, 19, 30, 0, 0, time.UTC)
	return &domain.Snapshot{
		Participants: []domain.Participant{{ID: "E001", Name: "Alice"}, {ID: "E002", Name: "Bob"}},
		PrizeTiers:   []domain.PrizeTier{{Level: 2, Name: "First", Quota: 1}, {Level: 1, Name: "Lucky", Quota: 1}},
		WinnerLedger: []domain.WinnerRecord{{ParticipantID: "E002", ParticipantName: "Bob", TierLevel: 2, TierName: "First", Timestamp: at}},
		TierIndex:    1,
		DrawMode:     domain.DrawModeBatch,
		SavedAt:      at,
	}
}

func TestSnapshotStore_MissingRowLoadsEmpty(t *testing.T) {
	pool := requireDB(t)

	got, err := NewSnapshotStore(pool, "missing-"+t.Name()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EmptySnapshot(), got)
}

func TestSnapshotStore_SaveLoad(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()

	store := NewSnapshotStore(pool, "roundtrip")
	snap := sampleSnapshot()
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	// Overwrite keeps a single row per key
	snap.TierIndex = 0
	require.NoError(t, store.Save(ctx, snap))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TierIndex)

	var rows int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM draw_snapshots WHERE session_key = $1", "roundtrip").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSnapshotStore_SessionsAreIsolated(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()

	a := NewSnapshotStore(pool, "hall-a")
	b := NewSnapshotStore(pool, "hall-b")
	require.NoError(t, a.Save(ctx, sampleSnapshot()))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Participants)

	require.NoError(t, a.Delete(ctx))
	got, err = a.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Participants)
}

func TestSnapshotStore_HistoryIsPruned(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()

	store := NewSnapshotStore(pool, "history")
	store.historyLimit = 3

	snap := sampleSnapshot()
	for i := 0; i < 5; i++ {
		snap.TierIndex = i
		require.NoError(t, store.Save(ctx, snap))
	}

	history, err := store.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 4, history[0].TierIndex)
	assert.Equal(t, 2, history[2].TierIndex)
}

func TestSnapshotStore_UnreadableLedgerIsFlagged(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO draw_snapshots (session_key, payload) VALUES ($1, $2)
		 ON CONFLICT (session_key) DO UPDATE SET payload = EXCLUDED.payload`,
		"corrupt", []byte(`{"participants":[{"id":"E1","name":"A"}],"winnerLedger":"broken"}`))
	require.NoError(t, err)

	got, err := NewSnapshotStore(pool, "corrupt").Load(ctx)
	assert.ErrorIs(t, err, domain.ErrLedgerUnreadable)
	require.NotNil(t, got)
	assert.Len(t, got.Participants, 1)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	pool := requireDB(t)
	require.NoError(t, database.Migrate(context.Background(), pool))
}
