package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/draw"
	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/scheduler"
	"github.com/osse101/PrizeDraw_Go/internal/session"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
)

// NewController restores the persisted session and builds its controller.
// An unreadable ledger does not stop startup: the session comes up blocked
// so the operator can inspect it and reset.
func NewController(ctx context.Context, cfg *config.Config, store snapshot.Store, bus event.Bus) (*session.Controller, error) {
	snap, loadErr := store.Load(ctx)
	if loadErr != nil && !domain.IsDataIntegrity(loadErr) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSnapshot, loadErr)
	}
	if snap == nil {
		snap = domain.EmptySnapshot()
	}

	engine := draw.NewEngine(snap, draw.NewSource(cfg.DrawSeed))

	// The preview never shares the committed source, so rolling cannot shift results
	var previewSeed int64
	if cfg.DrawSeed != 0 {
		previewSeed = cfg.DrawSeed + 1
	}

	ctrl := session.NewController(engine, store, bus, scheduler.New(), draw.NewSource(previewSeed), session.Config{
		SequentialInterval: cfg.PreviewIntervalSequential,
		BatchInterval:      cfg.PreviewIntervalBatch,
	})

	if loadErr != nil {
		logger.Error(LogMsgSnapshotCorrupt, "error", loadErr)
		ctrl.ReportLoadError(ctx, loadErr)
	}

	logger.Info(LogMsgSnapshotLoaded,
		"participants", len(snap.Participants),
		"tiers", len(snap.PrizeTiers),
		"winners", len(snap.WinnerLedger),
		"tier_index", snap.TierIndex,
		"mode", snap.DrawMode)

	return ctrl, nil
}
