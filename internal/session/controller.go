package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/draw"
	"github.com/osse101/PrizeDraw_Go/internal/event"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/metrics"
	"github.com/osse101/PrizeDraw_Go/internal/prize"
	rosterpkg "github.com/osse101/PrizeDraw_Go/internal/roster"
	"github.com/osse101/PrizeDraw_Go/internal/scheduler"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
	"github.com/osse101/PrizeDraw_Go/internal/worker"
)

// Config holds the preview timing of a controller
type Config struct {
	SequentialInterval time.Duration
	BatchInterval      time.Duration
}

func (c Config) interval(mode domain.DrawMode) time.Duration {
	if mode == domain.DrawModeBatch {
		if c.BatchInterval > 0 {
			return c.BatchInterval
		}
		return DefaultBatchInterval
	}
	if c.SequentialInterval > 0 {
		return c.SequentialInterval
	}
	return DefaultSequentialInterval
}

// State is what the ceremony screen renders
type State struct {
	draw.Status
	Phase        domain.Phase          `json:"phase"`
	RollMode     domain.DrawMode       `json:"rollMode,omitempty"`
	Preview      []domain.Participant  `json:"preview"`
	RoundWinners []domain.WinnerRecord `json:"roundWinners"`
	PreviewTicks int64                 `json:"previewTicks"`
	SaveFailures int64                 `json:"saveFailures"`
}

// Controller maps ceremony intents onto the draw engine. It owns the rolling
// phase and the preview timer; the engine owns every ledger mutation.
type Controller struct {
	mu       sync.Mutex
	engine   *draw.Engine
	store    snapshot.Store
	bus      event.Bus
	sched    *scheduler.Scheduler
	cfg      Config
	phase    domain.Phase
	rollMode domain.DrawMode
	handle   *scheduler.Handle

	// view is read by the preview job, which never takes mu
	viewMu       sync.RWMutex
	previewRng   draw.Source
	preview      []domain.Participant
	roundWinners []domain.WinnerRecord

	ticks        atomic.Int64
	saveFailures atomic.Int64
}

// NewController creates a controller in the idle phase. previewRng must be
// independent of the engine's committed source.
func NewController(engine *draw.Engine, store snapshot.Store, bus event.Bus, sched *scheduler.Scheduler, previewRng draw.Source, cfg Config) *Controller {
	return &Controller{
		engine:     engine,
		store:      store,
		bus:        bus,
		sched:      sched,
		cfg:        cfg,
		phase:      domain.PhaseIdle,
		previewRng: previewRng,
	}
}

// Start begins rolling in the session's current mode
func (c *Controller) Start(ctx context.Context) error {
	return c.start(ctx, c.engine.Mode())
}

// StartSequential begins a sequential roll
func (c *Controller) StartSequential(ctx context.Context) error {
	return c.start(ctx, domain.DrawModeSequential)
}

// StartBatch begins a batch roll
func (c *Controller) StartBatch(ctx context.Context) error {
	return c.start(ctx, domain.DrawModeBatch)
}

func (c *Controller) start(ctx context.Context, mode domain.DrawMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == domain.PhaseRolling {
		return nil
	}

	current := c.engine.Mode()
	if mode != current {
		return fmt.Errorf("%w: "+ErrContextStart, domain.ErrDrawModeMismatch, mode, current)
	}

	if err := c.engine.CheckRollable(mode); err != nil {
		c.reportIntegrity(ctx, OperationStart, err)
		return err
	}

	status := c.engine.Status()
	c.phase = domain.PhaseRolling
	c.rollMode = mode
	c.setView(nil, nil)

	// The roll outlives the request that started it
	rollCtx := context.WithoutCancel(ctx)
	c.handle = c.sched.Schedule(rollCtx, c.cfg.interval(mode), worker.JobFunc(func(ctx context.Context) error {
		return c.tick(ctx, mode)
	}))

	logger.FromContext(ctx).Info(LogMsgRollStarted, "mode", mode, "tier_index", status.TierIndex, "remaining", status.RemainingQuota)
	if status.CurrentTier != nil {
		c.publish(ctx, event.NewRollStartedEvent(mode, *status.CurrentTier, status.RemainingQuota, status.EligibleCount))
	}
	return nil
}

// tick runs on the scheduler goroutine. It reads the engine but never takes mu.
func (c *Controller) tick(ctx context.Context, mode domain.DrawMode) error {
	eligible, k, err := c.engine.PreviewTarget(mode)
	if err != nil {
		return err
	}

	c.viewMu.Lock()
	shown := draw.Sample(eligible, k, c.previewRng)
	c.preview = shown
	c.viewMu.Unlock()

	n := c.ticks.Add(1)
	level := 0
	if tier, ok := draw.CurrentTier(c.engine.Tiers(), c.engine.TierIndex()); ok {
		level = tier.Level
	}
	return c.bus.Publish(ctx, event.NewPreviewEvent(mode, level, shown, n))
}

// Stop ends the current roll whatever its mode and commits its winners.
// Stopping while not rolling returns no records.
func (c *Controller) Stop(ctx context.Context) ([]domain.WinnerRecord, error) {
	return c.stop(ctx, "")
}

// StopSequential ends a sequential roll and commits one winner
func (c *Controller) StopSequential(ctx context.Context) (*domain.WinnerRecord, error) {
	records, err := c.stop(ctx, domain.DrawModeSequential)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return &records[0], nil
}

// StopBatch ends a batch roll and commits every remaining slot of the tier
func (c *Controller) StopBatch(ctx context.Context) ([]domain.WinnerRecord, error) {
	return c.stop(ctx, domain.DrawModeBatch)
}

func (c *Controller) stop(ctx context.Context, mode domain.DrawMode) ([]domain.WinnerRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseRolling {
		return nil, nil
	}
	if mode == "" {
		mode = c.rollMode
	}
	if mode != c.rollMode {
		return nil, fmt.Errorf("%w: "+ErrContextStop, domain.ErrDrawModeMismatch, mode, c.rollMode)
	}

	// No preview tick runs once Cancel returns
	c.cancelRollLocked()

	var records []domain.WinnerRecord
	if mode == domain.DrawModeBatch {
		batch, err := c.engine.CommitBatch(ctx)
		if err != nil {
			return nil, c.abortLocked(ctx, err)
		}
		records = batch
	} else {
		rec, err := c.engine.CommitOne(ctx)
		if err != nil {
			return nil, c.abortLocked(ctx, err)
		}
		records = []domain.WinnerRecord{rec}
	}

	c.phase = domain.PhaseSettled
	c.setView(winnersAsParticipants(records), records)

	status := c.engine.Status()
	logger.FromContext(ctx).Info(LogMsgRollStopped, "mode", mode, "winners", len(records), "remaining", status.RemainingQuota)

	c.saveLocked(ctx)

	tier := domain.PrizeTier{Level: records[0].TierLevel, Name: records[0].TierName}
	if status.CurrentTier != nil {
		tier = *status.CurrentTier
	}
	c.publish(ctx, event.NewWinnersCommittedEvent(mode, tier, records, status.RemainingQuota, status.TotalWinners))
	if status.Complete {
		logger.FromContext(ctx).Info(LogMsgDrawCompleted, "total_winners", status.TotalWinners)
		c.publish(ctx, event.NewDrawCompletedEvent(status.TotalWinners, len(status.Tiers)))
	}
	return records, nil
}

// abortLocked returns to idle after a failed commit. The ledger is unchanged.
func (c *Controller) abortLocked(ctx context.Context, err error) error {
	c.phase = domain.PhaseIdle
	c.setView(nil, nil)
	logger.FromContext(ctx).Info(LogMsgRollAborted, "error", err)
	c.reportIntegrity(ctx, OperationCommit, err)
	return err
}

// Advance moves to the next tier once the current one is full
func (c *Controller) Advance(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == domain.PhaseRolling {
		return c.engine.TierIndex(), domain.ErrRollInProgress
	}

	tiers := c.engine.Tiers()
	from, _ := draw.CurrentTier(tiers, c.engine.TierIndex())

	idx, err := c.engine.Advance(ctx)
	if err != nil {
		c.reportIntegrity(ctx, OperationAdvance, err)
		return idx, err
	}

	c.phase = domain.PhaseIdle
	c.setView(nil, nil)

	to, _ := draw.CurrentTier(tiers, idx)
	logger.FromContext(ctx).Info(LogMsgTierAdvanced, "from_level", from.Level, "to_level", to.Level, "tier_index", idx)

	c.saveLocked(ctx)
	c.publish(ctx, event.NewTierAdvancedEvent(from, to, idx))
	return idx, nil
}

// Reset clears every winner and returns to the first tier. It must be
// confirmed explicitly. An active roll is cancelled without committing.
func (c *Controller) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrResetNotConfirmed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelRollLocked()

	cleared := c.engine.Ledger().TotalWinners()
	c.engine.Reset()
	c.phase = domain.PhaseIdle
	c.setView(nil, nil)

	logger.FromContext(ctx).Info(LogMsgSessionReset, "cleared_winners", cleared)

	c.saveLocked(ctx)
	c.publish(ctx, event.NewDrawResetEvent(cleared))
	return nil
}

// SetDrawMode switches between sequential and batch draws
func (c *Controller) SetDrawMode(ctx context.Context, mode domain.DrawMode) error {
	if mode != domain.DrawModeSequential && mode != domain.DrawModeBatch {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDrawMode, mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == domain.PhaseRolling {
		return domain.ErrRollInProgress
	}
	if c.engine.Mode() == mode {
		return nil
	}

	c.engine.SetMode(mode)
	logger.FromContext(ctx).Info(LogMsgModeChanged, "mode", mode)

	c.saveLocked(ctx)
	c.publishConfigChange(ctx, event.ChangeMode)
	return nil
}

// ImportParticipants replaces the roster. Existing winners are kept.
func (c *Controller) ImportParticipants(ctx context.Context, participants []domain.Participant) error {
	valid, err := rosterpkg.Validate(participants)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextRosterSet, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == domain.PhaseRolling {
		return domain.ErrRollInProgress
	}

	c.engine.SetParticipants(valid)
	c.phase = domain.PhaseIdle
	logger.FromContext(ctx).Info(LogMsgRosterImported, "participants", len(valid))
	c.warnIfOversubscribed(ctx, c.engine.Tiers(), len(valid))

	c.saveLocked(ctx)
	c.publishConfigChange(ctx, event.ChangeRoster)
	return nil
}

// ConfigureTiers replaces the prize tier table
func (c *Controller) ConfigureTiers(ctx context.Context, tiers []domain.PrizeTier) error {
	valid, err := prize.Validate(tiers)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextTiersSet, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == domain.PhaseRolling {
		return domain.ErrRollInProgress
	}

	c.engine.SetTiers(ctx, valid)
	c.phase = domain.PhaseIdle
	logger.FromContext(ctx).Info(LogMsgTiersConfigured, "tiers", len(valid), "total_quota", prize.TotalQuota(valid))
	c.warnIfOversubscribed(ctx, valid, len(c.engine.Participants()))

	c.saveLocked(ctx)
	c.publishConfigChange(ctx, event.ChangeTiers)
	return nil
}

// State returns the current session view
func (c *Controller) State() State {
	c.mu.Lock()
	phase, rollMode := c.phase, c.rollMode
	c.mu.Unlock()

	st := State{
		Status:       c.engine.Status(),
		Phase:        phase,
		PreviewTicks: c.ticks.Load(),
		SaveFailures: c.saveFailures.Load(),
	}
	if phase == domain.PhaseRolling {
		st.RollMode = rollMode
	}

	c.viewMu.RLock()
	st.Preview = append([]domain.Participant{}, c.preview...)
	st.RoundWinners = append([]domain.WinnerRecord{}, c.roundWinners...)
	c.viewMu.RUnlock()
	return st
}

// Phase returns the rolling phase
func (c *Controller) Phase() domain.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Participants returns the roster
func (c *Controller) Participants() []domain.Participant {
	return c.engine.Participants()
}

// Tiers returns the prize tiers, highest level first
func (c *Controller) Tiers() []domain.PrizeTier {
	return c.engine.Tiers()
}

// Winners returns every committed winner in draw order
func (c *Controller) Winners() []domain.WinnerRecord {
	return c.engine.Ledger().Records()
}

// WinnersForTier returns the winners of one tier
func (c *Controller) WinnersForTier(level int) []domain.WinnerRecord {
	return c.engine.Ledger().WinnersForTier(level)
}

// Close cancels an active roll and stops the scheduler
func (c *Controller) Close(ctx context.Context) {
	c.mu.Lock()
	c.cancelRollLocked()
	c.phase = domain.PhaseIdle
	c.mu.Unlock()

	c.sched.Stop()
	logger.FromContext(ctx).Info(LogMsgControllerClosed)
}

func (c *Controller) cancelRollLocked() {
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
}

func (c *Controller) setView(preview []domain.Participant, winners []domain.WinnerRecord) {
	c.viewMu.Lock()
	c.preview = preview
	c.roundWinners = winners
	c.viewMu.Unlock()
}

// saveLocked persists the session. A failed save never undoes the mutation.
func (c *Controller) saveLocked(ctx context.Context) {
	start := time.Now()
	err := c.store.Save(ctx, c.engine.Snapshot())
	metrics.SnapshotSaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.saveFailures.Add(1)
		metrics.SnapshotSaveFailures.Inc()
		logger.FromContext(ctx).Error(LogMsgSnapshotSaveFailed, "error", err)
	}
}

func (c *Controller) publish(ctx context.Context, ev event.Event) {
	if err := c.bus.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", ev.Type, "error", err)
	}
}

func (c *Controller) publishConfigChange(ctx context.Context, kind string) {
	c.publish(ctx, event.NewConfigurationChangedEvent(kind, len(c.engine.Participants()), len(c.engine.Tiers()), c.engine.Mode()))
}

// reportIntegrity publishes data integrity failures. Other errors are ignored.
func (c *Controller) reportIntegrity(ctx context.Context, operation string, err error) {
	if !domain.IsDataIntegrity(err) {
		return
	}
	c.publish(ctx, event.NewIntegrityViolationEvent(operation, err))
}

// ReportLoadError blocks the session when the stored snapshot had an unreadable ledger
func (c *Controller) ReportLoadError(ctx context.Context, err error) {
	if !domain.IsDataIntegrity(err) {
		return
	}
	c.engine.Block(ctx, err)
	c.reportIntegrity(ctx, OperationLoad, err)
}

func (c *Controller) warnIfOversubscribed(ctx context.Context, tiers []domain.PrizeTier, rosterSize int) {
	if rosterSize > 0 && prize.ExceedsRoster(tiers, rosterSize) {
		logger.FromContext(ctx).Warn(LogMsgQuotaExceedsRoster, "total_quota", prize.TotalQuota(tiers), "participants", rosterSize)
	}
}

func winnersAsParticipants(records []domain.WinnerRecord) []domain.Participant {
	out := make([]domain.Participant, 0, len(records))
	for _, r := range records {
		out = append(out, domain.Participant{ID: r.ParticipantID, Name: r.ParticipantName})
	}
	return out
}
