package draw

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/ledger"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// Engine is the draw session: participant pool, prize tiers, winner ledger and
// tier position. It validates every ledger mutation and refuses all mutation
// except Reset once an integrity violation has been detected.
type Engine struct {
	mu        sync.Mutex
	pool      []domain.Participant
	tiers     []domain.PrizeTier // level descending
	ledger    *ledger.Ledger
	tierIndex int
	mode      domain.DrawMode
	rng       Source
	now       func() time.Time
	blocked   error
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the clock used to timestamp winner records
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Status is a read-only summary of the session
type Status struct {
	Mode             domain.DrawMode       `json:"mode"`
	TierIndex        int                   `json:"tierIndex"`
	CurrentTier      *domain.PrizeTier     `json:"currentTier,omitempty"`
	RemainingQuota   int                   `json:"remainingQuota"`
	EligibleCount    int                   `json:"eligibleCount"`
	ParticipantCount int                   `json:"participantCount"`
	TotalWinners     int                   `json:"totalWinners"`
	TotalQuota       int                   `json:"totalQuota"`
	Completion       float64               `json:"completion"`
	Complete         bool                  `json:"complete"`
	Tiers            []domain.TierProgress `json:"tiers"`
	IntegrityError   string                `json:"integrityError,omitempty"`
}

// NewEngine resumes a session from a snapshot. A nil snapshot starts an empty
// session. An inconsistent ledger is loaded verbatim and the engine starts blocked.
func NewEngine(snap *domain.Snapshot, rng Source, opts ...Option) *Engine {
	if snap == nil {
		snap = domain.EmptySnapshot()
	}

	l, err := ledger.FromRecords(snap.WinnerLedger)

	e := &Engine{
		pool:      append([]domain.Participant{}, snap.Participants...),
		tiers:     domain.SortTiersDescending(snap.PrizeTiers),
		ledger:    l,
		tierIndex: snap.TierIndex,
		mode:      snap.DrawMode,
		rng:       rng,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.tierIndex < 0 {
		e.tierIndex = 0
	}
	if e.mode == "" {
		e.mode = domain.DrawModeSequential
	}

	if err == nil {
		err = l.Verify(e.tiers)
	}
	if err != nil {
		e.blocked = err
	}
	return e
}

// Block marks the session corrupted. Only data integrity errors block.
func (e *Engine) Block(ctx context.Context, err error) {
	if !domain.IsDataIntegrity(err) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.blockLocked(ctx, err)
}

// IntegrityError returns the violation that blocked the session, if any
func (e *Engine) IntegrityError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blocked
}

// CheckRollable reports whether a roll in the given mode may start.
// It performs the same checks as the matching commit without selecting anyone.
func (e *Engine) CheckRollable(mode domain.DrawMode) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, eligible, remaining, err := e.targetLocked()
	if err != nil {
		return err
	}
	if mode == domain.DrawModeBatch && remaining > len(eligible) {
		return &domain.InsufficientParticipantsError{Eligible: len(eligible), Required: remaining}
	}
	return nil
}

// PreviewTarget returns the eligible participants and how many a preview
// should show: one in sequential mode, min(remaining, eligible) in batch mode.
func (e *Engine) PreviewTarget(mode domain.DrawMode) ([]domain.Participant, int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, eligible, remaining, err := e.targetLocked()
	if err != nil {
		return nil, 0, err
	}
	if mode == domain.DrawModeBatch {
		return eligible, min(remaining, len(eligible)), nil
	}
	return eligible, 1, nil
}

// CommitOne selects one winner for the current tier and appends it to the ledger
func (e *Engine) CommitOne(ctx context.Context) (domain.WinnerRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.verifyLocked(ctx); err != nil {
		return domain.WinnerRecord{}, err
	}

	tier, eligible, remaining, err := e.targetLocked()
	if err != nil {
		return domain.WinnerRecord{}, err
	}

	winner, err := DrawOne(eligible, remaining, e.rng)
	if err != nil {
		return domain.WinnerRecord{}, err
	}

	rec := domain.NewWinnerRecord(winner, tier, e.now())
	if err := e.ledger.Append(rec); err != nil {
		return domain.WinnerRecord{}, e.failLocked(ctx, err)
	}
	return rec, nil
}

// CommitBatch fills every remaining slot of the current tier in one append
func (e *Engine) CommitBatch(ctx context.Context) ([]domain.WinnerRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.verifyLocked(ctx); err != nil {
		return nil, err
	}

	tier, eligible, _, err := e.targetLocked()
	if err != nil {
		return nil, err
	}

	winners, err := DrawBatch(eligible, tier, e.ledger, e.rng)
	if err != nil {
		if domain.IsDataIntegrity(err) {
			return nil, e.failLocked(ctx, err)
		}
		return nil, err
	}

	at := e.now()
	records := make([]domain.WinnerRecord, len(winners))
	for i, w := range winners {
		records[i] = domain.NewWinnerRecord(w, tier, at)
	}
	if err := e.ledger.Append(records...); err != nil {
		return nil, e.failLocked(ctx, err)
	}
	return records, nil
}

// Advance moves to the next tier. It fails with ErrTierNotExhausted while the
// current tier has slots left and with ErrAllTiersComplete after the last tier.
func (e *Engine) Advance(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.blocked != nil {
		return e.tierIndex, e.blockedErrLocked()
	}
	if len(e.tiers) == 0 {
		return e.tierIndex, domain.ErrNoPrizeTiers
	}

	next, err := AdvanceTier(e.tierIndex, e.tiers, e.ledger)
	if err != nil {
		if domain.IsDataIntegrity(err) {
			return e.tierIndex, e.failLocked(ctx, err)
		}
		return e.tierIndex, err
	}
	e.tierIndex = next
	return next, nil
}

// Reset clears the ledger, returns to the first tier and lifts any block.
// Roster, tiers and mode are kept.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ledger.Reset()
	e.tierIndex = 0
	e.blocked = nil
}

// SetParticipants replaces the roster. Existing winners stay in the ledger.
func (e *Engine) SetParticipants(participants []domain.Participant) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pool = append([]domain.Participant{}, participants...)
}

// SetTiers replaces the tier table. Quotas lowered below the drawn count are
// caught on the next commit or advance.
func (e *Engine) SetTiers(ctx context.Context, tiers []domain.PrizeTier) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tiers = domain.SortTiersDescending(tiers)
	logger.FromContext(ctx).Info(LogMsgTierQuotaChanged, "tiers", len(tiers), "tier_index", e.tierIndex)
}

// SetMode changes the draw mode
func (e *Engine) SetMode(mode domain.DrawMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
}

// Mode returns the current draw mode
func (e *Engine) Mode() domain.DrawMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// TierIndex returns the position of the current tier
func (e *Engine) TierIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tierIndex
}

// Participants returns a copy of the roster
func (e *Engine) Participants() []domain.Participant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Participant{}, e.pool...)
}

// Tiers returns a copy of the tier table, highest level first
func (e *Engine) Tiers() []domain.PrizeTier {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.PrizeTier{}, e.tiers...)
}

// Eligible returns participants that have not won yet
func (e *Engine) Eligible() []domain.Participant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return RemainingEligible(e.pool, e.ledger)
}

// Ledger exposes the winner ledger for read-only views
func (e *Engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// Snapshot captures the persisted state of the session
func (e *Engine) Snapshot() *domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return &domain.Snapshot{
		Participants: append([]domain.Participant{}, e.pool...),
		PrizeTiers:   append([]domain.PrizeTier{}, e.tiers...),
		WinnerLedger: e.ledger.Records(),
		TierIndex:    e.tierIndex,
		DrawMode:     e.mode,
		SavedAt:      e.now().UTC(),
	}
}

// Status summarises the session for display
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	eligible := RemainingEligible(e.pool, e.ledger)
	st := Status{
		Mode:             e.mode,
		TierIndex:        e.tierIndex,
		EligibleCount:    len(eligible),
		ParticipantCount: len(e.pool),
		TotalWinners:     e.ledger.TotalWinners(),
		TotalQuota:       domain.TotalQuota(e.tiers),
		Completion:       e.ledger.CompletionFraction(e.tiers),
		Tiers:            make([]domain.TierProgress, 0, len(e.tiers)),
	}

	for _, t := range e.tiers {
		drawn := e.ledger.CountForTier(t.Level)
		st.Tiers = append(st.Tiers, domain.TierProgress{
			Level:     t.Level,
			Name:      t.Name,
			Quota:     t.Quota,
			Drawn:     drawn,
			Remaining: t.Quota - drawn,
		})
	}

	if tier, ok := CurrentTier(e.tiers, e.tierIndex); ok {
		st.CurrentTier = &tier
		st.RemainingQuota = tier.Quota - e.ledger.CountForTier(tier.Level)
		st.Complete = e.tierIndex == len(e.tiers)-1 && st.RemainingQuota <= 0
	} else {
		st.Complete = len(e.tiers) > 0
	}

	if e.blocked != nil {
		st.IntegrityError = e.blocked.Error()
	}
	return st
}

// targetLocked resolves the current tier, the eligible participants and the
// remaining quota, failing with the user actionable reason a roll cannot start.
func (e *Engine) targetLocked() (domain.PrizeTier, []domain.Participant, int, error) {
	if e.blocked != nil {
		return domain.PrizeTier{}, nil, 0, e.blockedErrLocked()
	}
	if len(e.tiers) == 0 {
		return domain.PrizeTier{}, nil, 0, domain.ErrNoPrizeTiers
	}

	tier, ok := CurrentTier(e.tiers, e.tierIndex)
	if !ok {
		return domain.PrizeTier{}, nil, 0, domain.ErrAllTiersComplete
	}

	remaining, err := RemainingQuota(tier, e.ledger)
	if err != nil {
		return tier, nil, 0, err
	}
	if remaining == 0 {
		return tier, nil, 0, domain.ErrTierExhausted
	}

	eligible := RemainingEligible(e.pool, e.ledger)
	if len(eligible) == 0 {
		return tier, nil, remaining, domain.ErrNoEligibleParticipants
	}
	return tier, eligible, remaining, nil
}

// verifyLocked re-checks the whole ledger before a commit
func (e *Engine) verifyLocked(ctx context.Context) error {
	if e.blocked != nil {
		return e.blockedErrLocked()
	}
	if err := e.ledger.Verify(e.tiers); err != nil {
		return e.failLocked(ctx, err)
	}
	if tier, ok := CurrentTier(e.tiers, e.tierIndex); ok {
		if _, err := RemainingQuota(tier, e.ledger); err != nil {
			return e.failLocked(ctx, err)
		}
	}
	return nil
}

func (e *Engine) failLocked(ctx context.Context, err error) error {
	if domain.IsDataIntegrity(err) {
		e.blockLocked(ctx, err)
		return fmt.Errorf("%s: %w", ErrContextCommit, err)
	}
	return err
}

func (e *Engine) blockLocked(ctx context.Context, err error) {
	if e.blocked == nil {
		e.blocked = err
	}
	logger.FromContext(ctx).Error(LogMsgIntegrityViolation, "error", err, "tier_index", e.tierIndex)
}

func (e *Engine) blockedErrLocked() error {
	return fmt.Errorf("%s: %w", ErrContextBlocked, e.blocked)
}
