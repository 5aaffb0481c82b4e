package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/PrizeDraw_Go/internal/bootstrap"
	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
)

// historyReader is implemented by stores that keep earlier snapshots
type historyReader interface {
	History(ctx context.Context, limit int32) ([]*domain.Snapshot, error)
}

// reset clears every recorded winner of the configured session while keeping
// its roster, prize tiers and draw mode. It works on a blocked session too.
// With -purge the stored session is removed entirely. -history alone only
// prints saved snapshots.
func main() {
	yes := flag.Bool("yes", false, "confirm clearing all winners")
	purge := flag.Bool("purge", false, "delete the stored session instead of clearing its winners")
	history := flag.Int("history", 0, "print this many saved snapshots (postgres only)")
	flag.Parse()

	if err := run(*yes, *purge, *history); err != nil {
		log.Printf("Reset failed: %v", err)
		os.Exit(1)
	}
}

func run(yes, purge bool, history int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if history <= 0 && !yes {
		return fmt.Errorf("refusing to reset session %q without -yes", cfg.SessionKey)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer storage.Close(ctx)

	if history > 0 {
		if err := printHistory(ctx, storage.Store, history); err != nil {
			return err
		}
		if !yes {
			return nil
		}
	}

	cleared, err := bootstrap.ResetSession(ctx, cfg, storage.Store, purge)
	if err != nil {
		return err
	}

	if purge {
		log.Printf("Session %q purged.\n", cfg.SessionKey)
		return nil
	}
	log.Printf("Session %q reset, %d winners cleared.\n", cfg.SessionKey, cleared)
	return nil
}

func printHistory(ctx context.Context, store snapshot.Store, limit int) error {
	h, ok := store.(historyReader)
	if !ok {
		log.Println("Storage backend keeps no snapshot history")
		return nil
	}
	snaps, err := h.History(ctx, int32(limit)) //nolint:gosec // flag value, small
	if err != nil {
		return fmt.Errorf("failed to read snapshot history: %w", err)
	}
	for i, snap := range snaps {
		log.Printf("#%d: %d participants, %d tiers, %d winners, tier index %d, mode %s\n",
			i+1, len(snap.Participants), len(snap.PrizeTiers), len(snap.WinnerLedger), snap.TierIndex, snap.DrawMode)
	}
	return nil
}
