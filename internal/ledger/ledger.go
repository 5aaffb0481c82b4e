// Package ledger holds the append-only record of committed winners and the
// views derived from it.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

// Ledger is an append-only log of WinnerRecords. Records are never mutated or
// removed except by Reset.
type Ledger struct {
	mu       sync.RWMutex
	records  []domain.WinnerRecord
	winners  map[string]int // participant id -> number of records
	perTier  map[int]int    // tier level -> number of records
	version  uint64
	views    *viewCache
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{
		records: []domain.WinnerRecord{},
		winners: make(map[string]int),
		perTier: make(map[int]int),
		views:   newViewCache(DefaultViewCacheSize),
	}
}

// FromRecords rebuilds a ledger from persisted records exactly as given.
// Duplicate participants are kept, not repaired; the returned error reports them
// so the caller can block the session.
func FromRecords(records []domain.WinnerRecord) (*Ledger, error) {
	l := New()
	for _, rec := range records {
		l.records = append(l.records, rec)
		l.winners[rec.ParticipantID]++
		l.perTier[rec.TierLevel]++
	}
	l.version = 1

	if err := l.checkDuplicates(); err != nil {
		return l, fmt.Errorf("%s: %w", ErrContextLoad, err)
	}
	return l, nil
}

// Append stores the records as a single transaction: either every record is
// appended or none is. A participant that already won, or that appears twice in
// the batch, rejects the whole batch.
func (l *Ledger) Append(records ...domain.WinnerRecord) error {
	if len(records) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ParticipantID]; dup || l.winners[rec.ParticipantID] > 0 {
			return fmt.Errorf("%s: %w: "+ErrContextParticipant, ErrContextAppend, domain.ErrDuplicateWinnerDetected, rec.ParticipantID)
		}
		seen[rec.ParticipantID] = struct{}{}
	}

	for _, rec := range records {
		l.records = append(l.records, rec)
		l.winners[rec.ParticipantID]++
		l.perTier[rec.TierLevel]++
	}
	l.version++
	return nil
}

// Records returns a copy of every record in append order
func (l *Ledger) Records() []domain.WinnerRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.WinnerRecord, len(l.records))
	copy(out, l.records)
	return out
}

// WinnersForTier returns the records for one tier level in append order
func (l *Ledger) WinnersForTier(level int) []domain.WinnerRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if cached, ok := l.views.get(l.version, level); ok {
		return append([]domain.WinnerRecord(nil), cached...)
	}

	view := make([]domain.WinnerRecord, 0, l.perTier[level])
	for _, rec := range l.records {
		if rec.TierLevel == level {
			view = append(view, rec)
		}
	}
	l.views.set(l.version, level, view)
	return append([]domain.WinnerRecord(nil), view...)
}

// CountForTier returns how many winners a tier level has
func (l *Ledger) CountForTier(level int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.perTier[level]
}

// IsParticipantWinner reports whether the participant has won any tier
func (l *Ledger) IsParticipantWinner(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.winners[id] > 0
}

// TotalWinners returns the number of records
func (l *Ledger) TotalWinners() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// CompletionFraction returns total winners over the sum of all quotas.
// It is 0 when no quota is configured.
func (l *Ledger) CompletionFraction(tiers []domain.PrizeTier) float64 {
	total := domain.TotalQuota(tiers)
	if total <= 0 {
		return 0
	}
	return float64(l.TotalWinners()) / float64(total)
}

// Version increases on every append and reset
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Verify checks the ledger against the tier table without changing it.
// It reports every duplicate participant and every tier whose winner count
// exceeds its quota.
func (l *Ledger) Verify(tiers []domain.PrizeTier) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var errs []error
	if err := l.checkDuplicates(); err != nil {
		errs = append(errs, err)
	}

	quotas := make(map[int]int, len(tiers))
	for _, t := range tiers {
		quotas[t.Level] = t.Quota
	}

	levels := make([]int, 0, len(l.perTier))
	for level := range l.perTier {
		levels = append(levels, level)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	for _, level := range levels {
		count := l.perTier[level]
		quota, ok := quotas[level]
		switch {
		case !ok && count > 0:
			errs = append(errs, fmt.Errorf("%w: "+ErrContextUnknownTier, domain.ErrLedgerQuotaOverflow, level, count))
		case count > quota:
			errs = append(errs, fmt.Errorf("%w: "+ErrContextTierOverflow, domain.ErrLedgerQuotaOverflow, level, count, quota))
		}
	}

	return errors.Join(errs...)
}

// Reset clears every record
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = []domain.WinnerRecord{}
	l.winners = make(map[string]int)
	l.perTier = make(map[int]int)
	l.version++
	l.views.purge()
}

// checkDuplicates must be called with the lock held or before the ledger is shared
func (l *Ledger) checkDuplicates() error {
	var dups []string
	for id, n := range l.winners {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	if len(dups) == 0 {
		return nil
	}
	sort.Strings(dups)
	return fmt.Errorf("%w: participants %v", domain.ErrDuplicateWinnerDetected, dups)
}
