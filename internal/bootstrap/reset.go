package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
)

// sessionDeleter is implemented by stores that can drop the stored session outright
type sessionDeleter interface {
	Delete(ctx context.Context) error
}

// ResetSession clears every winner of the stored session and keeps its roster,
// tiers and mode. It returns the number of winners cleared.
//
// A document that is not JSON at all is refused: saving over it would replace
// a roster and tiers an operator may still recover by hand. Purging removes the
// stored session instead and works on any document.
func ResetSession(ctx context.Context, cfg *config.Config, store snapshot.Store, purge bool) (int, error) {
	if purge {
		d, ok := store.(sessionDeleter)
		if !ok {
			return 0, fmt.Errorf("%s: %q", ErrMsgPurgeUnsupported, cfg.StorageBackend)
		}
		if err := d.Delete(ctx); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedPurge, err)
		}
		logger.Info(LogMsgSessionPurged, "session_key", cfg.SessionKey)
		return 0, nil
	}

	if _, err := store.Load(ctx); errors.Is(err, domain.ErrSnapshotUnreadable) {
		return 0, fmt.Errorf("%s: %w", ErrMsgResetUnreadable, err)
	}

	ctrl, err := NewController(ctx, cfg, store, event.NewMemoryBus())
	if err != nil {
		return 0, err
	}
	defer ctrl.Close(ctx)

	cleared := len(ctrl.Winners())
	if err := ctrl.Reset(ctx, true); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedReset, err)
	}
	if ctrl.State().SaveFailures > 0 {
		return cleared, errors.New(ErrMsgResetNotSaved)
	}

	logger.Info(LogMsgSessionReset, "session_key", cfg.SessionKey, "cleared", cleared)
	return cleared, nil
}
