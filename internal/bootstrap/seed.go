package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/prize"
	"github.com/osse101/PrizeDraw_Go/internal/roster"
	"github.com/osse101/PrizeDraw_Go/internal/session"
	"github.com/osse101/PrizeDraw_Go/internal/validation"
)

// SeedSession fills an unconfigured session from ROSTER_FILE and PRIZES_FILE,
// falling back to the preset tiers. A session that already drew winners, or
// one blocked by an integrity error, is never touched.
func SeedSession(ctx context.Context, cfg *config.Config, ctrl *session.Controller) error {
	// Seeding saves, and a save would overwrite whatever could not be read
	if st := ctrl.State(); st.IntegrityError != "" {
		logger.Warn(LogMsgSeedBlocked, "error", st.IntegrityError)
		return nil
	}
	if len(ctrl.Winners()) > 0 {
		logger.Info(LogMsgSeedSkipped, "winners", len(ctrl.Winners()))
		return nil
	}

	schemas := validation.NewSchemaValidator()

	if cfg.RosterFile != "" && len(ctrl.Participants()) == 0 {
		participants, err := readRosterFile(schemas, cfg.RosterFile)
		if err != nil {
			return err
		}
		logger.Info(LogMsgSeedingRoster, "file", cfg.RosterFile, "participants", len(participants))
		if err := ctrl.ImportParticipants(ctx, participants); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedImportRoster, err)
		}
	}

	if len(ctrl.Tiers()) > 0 {
		return nil
	}

	var tiers []domain.PrizeTier
	switch {
	case cfg.PrizesFile != "":
		data, err := os.ReadFile(cfg.PrizesFile)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedReadPrizes, err)
		}
		if err := schemas.ValidateBytes(data, validation.SchemaPrizeTiers); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedReadPrizes, err)
		}
		if err := json.Unmarshal(data, &tiers); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedReadPrizes, err)
		}
		logger.Info(LogMsgSeedingPrizes, "file", cfg.PrizesFile, "tiers", len(tiers))
	case cfg.SeedPresets:
		tiers = prize.Presets()
		logger.Info(LogMsgSeedingPresets, "tiers", len(tiers))
	default:
		return nil
	}

	if err := ctrl.ConfigureTiers(ctx, tiers); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedConfigureTier, err)
	}
	return nil
}

// readRosterFile accepts a JSON participant list or the plain text import format
func readRosterFile(schemas validation.SchemaValidator, path string) ([]domain.Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadRoster, err)
	}

	if !strings.EqualFold(filepath.Ext(path), RosterJSONExtension) {
		participants, err := roster.Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedImportRoster, err)
		}
		return participants, nil
	}

	if err := schemas.ValidateBytes(data, validation.SchemaRoster); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadRoster, err)
	}
	var participants []domain.Participant
	if err := json.Unmarshal(data, &participants); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadRoster, err)
	}
	return participants, nil
}
