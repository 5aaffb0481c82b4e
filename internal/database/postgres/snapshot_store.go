package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PrizeDraw_Go/internal/database/generated"
	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
)

// SnapshotStore keeps one draw session per key in the draw_snapshots table.
// Every save is also appended to draw_snapshot_history.
type SnapshotStore struct {
	pool         *pgxpool.Pool
	q            *generated.Queries
	key          string
	historyLimit int32
}

// NewSnapshotStore creates a store for the given session key
func NewSnapshotStore(pool *pgxpool.Pool, sessionKey string) *SnapshotStore {
	return &SnapshotStore{
		pool:         pool,
		q:            generated.New(pool),
		key:          sessionKey,
		historyLimit: DefaultHistoryLimit,
	}
}

// Load reads and decodes the session row. A missing row is an empty session.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	row, err := s.q.GetSnapshot(ctx, s.key)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.FromContext(ctx).Info(LogMsgSnapshotMissing, "session_key", s.key)
		return domain.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotLoad, s.key, err)
	}
	return snapshot.Decode(ctx, row.Payload)
}

// Save upserts the session row and records the version in history, in one transaction
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := snapshot.Encode(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSnapshotSave, err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Warn(LogMsgRollbackFailed, "error", err)
		}
	}()

	q := s.q.WithTx(tx)
	if err := q.UpsertSnapshot(ctx, generated.UpsertSnapshotParams{SessionKey: s.key, Payload: data}); err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}
	if err := q.InsertSnapshotHistory(ctx, generated.InsertSnapshotHistoryParams{SessionKey: s.key, Payload: data}); err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}
	if err := q.PruneSnapshotHistory(ctx, generated.PruneSnapshotHistoryParams{SessionKey: s.key, Limit: s.historyLimit}); err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotSave, s.key, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "session_key", s.key, "bytes", len(data))
	return nil
}

// History decodes up to limit saved versions of the session, newest first.
// Versions whose ledger cannot be read are returned with what could be decoded.
func (s *SnapshotStore) History(ctx context.Context, limit int32) ([]*domain.Snapshot, error) {
	rows, err := s.q.ListSnapshotHistory(ctx, generated.ListSnapshotHistoryParams{SessionKey: s.key, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrContextSession, domain.ErrSnapshotLoad, s.key, err)
	}

	out := make([]*domain.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := snapshot.Decode(ctx, row.Payload)
		if snap == nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// Delete removes the session row. History is kept.
func (s *SnapshotStore) Delete(ctx context.Context) error {
	return s.q.DeleteSnapshot(ctx, s.key)
}
