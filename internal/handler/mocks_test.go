package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/session"
)

// MockDrawService mocks DrawService
type MockDrawService struct {
	mock.Mock
}

func (m *MockDrawService) State() session.State {
	args := m.Called()
	return args.Get(0).(session.State)
}

func (m *MockDrawService) Start(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDrawService) StartSequential(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDrawService) StartBatch(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDrawService) Stop(ctx context.Context) ([]domain.WinnerRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WinnerRecord), args.Error(1)
}

func (m *MockDrawService) StopSequential(ctx context.Context) (*domain.WinnerRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WinnerRecord), args.Error(1)
}

func (m *MockDrawService) StopBatch(ctx context.Context) ([]domain.WinnerRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WinnerRecord), args.Error(1)
}

func (m *MockDrawService) Advance(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawService) Reset(ctx context.Context, confirmed bool) error {
	return m.Called(ctx, confirmed).Error(0)
}

func (m *MockDrawService) SetDrawMode(ctx context.Context, mode domain.DrawMode) error {
	return m.Called(ctx, mode).Error(0)
}

func (m *MockDrawService) ImportParticipants(ctx context.Context, participants []domain.Participant) error {
	return m.Called(ctx, participants).Error(0)
}

func (m *MockDrawService) ConfigureTiers(ctx context.Context, tiers []domain.PrizeTier) error {
	return m.Called(ctx, tiers).Error(0)
}

func (m *MockDrawService) Participants() []domain.Participant {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Participant)
}

func (m *MockDrawService) Tiers() []domain.PrizeTier {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.PrizeTier)
}

func (m *MockDrawService) Winners() []domain.WinnerRecord {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.WinnerRecord)
}

func (m *MockDrawService) WinnersForTier(level int) []domain.WinnerRecord {
	args := m.Called(level)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.WinnerRecord)
}

// MockPinger mocks Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
