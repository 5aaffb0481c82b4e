package handler

import (
	"context"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/session"
)

// DrawService is the session controller as seen by the HTTP layer
type DrawService interface {
	State() session.State

	Start(ctx context.Context) error
	StartSequential(ctx context.Context) error
	StartBatch(ctx context.Context) error
	Stop(ctx context.Context) ([]domain.WinnerRecord, error)
	StopSequential(ctx context.Context) (*domain.WinnerRecord, error)
	StopBatch(ctx context.Context) ([]domain.WinnerRecord, error)
	Advance(ctx context.Context) (int, error)
	Reset(ctx context.Context, confirmed bool) error
	SetDrawMode(ctx context.Context, mode domain.DrawMode) error

	ImportParticipants(ctx context.Context, participants []domain.Participant) error
	ConfigureTiers(ctx context.Context, tiers []domain.PrizeTier) error

	Participants() []domain.Participant
	Tiers() []domain.PrizeTier
	Winners() []domain.WinnerRecord
	WinnersForTier(level int) []domain.WinnerRecord
}

var _ DrawService = (*session.Controller)(nil)
