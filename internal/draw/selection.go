package draw

import (
	"fmt"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
	"github.com/osse101/PrizeDraw_Go/internal/ledger"
)

// RemainingEligible returns the participants that have not won any tier, in pool order
func RemainingEligible(pool []domain.Participant, l *ledger.Ledger) []domain.Participant {
	eligible := make([]domain.Participant, 0, len(pool))
	for _, p := range pool {
		if !l.IsParticipantWinner(p.ID) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// CurrentTier returns the tier at tierIndex in level-descending order.
// ok is false once tierIndex is past the last tier.
func CurrentTier(tiers []domain.PrizeTier, tierIndex int) (tier domain.PrizeTier, ok bool) {
	sorted := domain.SortTiersDescending(tiers)
	if tierIndex < 0 || tierIndex >= len(sorted) {
		return domain.PrizeTier{}, false
	}
	return sorted[tierIndex], true
}

// RemainingQuota returns how many winners the tier still needs.
// A negative value means the ledger holds more winners than the quota allows;
// it is reported as an error and never clamped.
func RemainingQuota(tier domain.PrizeTier, l *ledger.Ledger) (int, error) {
	drawn := l.CountForTier(tier.Level)
	remaining := tier.Quota - drawn
	if remaining < 0 {
		return remaining, fmt.Errorf("%w: "+ErrContextTierQuota, domain.ErrNegativeRemainingQuota, tier.Level, drawn, tier.Quota)
	}
	return remaining, nil
}

// DrawOne picks a single winner uniformly from eligible. It does not touch the
// ledger; the caller commits the result.
func DrawOne(eligible []domain.Participant, remainingQuota int, rng Source) (domain.Participant, error) {
	if len(eligible) == 0 {
		return domain.Participant{}, domain.ErrNoEligibleParticipants
	}
	if remainingQuota <= 0 {
		return domain.Participant{}, domain.ErrTierExhausted
	}
	return eligible[rng.Intn(len(eligible))], nil
}

// DrawBatch fills every remaining slot of tier at once: eligible is permuted
// with Fisher-Yates and the first remainingQuota entries win.
func DrawBatch(eligible []domain.Participant, tier domain.PrizeTier, l *ledger.Ledger, rng Source) ([]domain.Participant, error) {
	remaining, err := RemainingQuota(tier, l)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		return nil, domain.ErrTierExhausted
	}
	if len(eligible) == 0 {
		return nil, domain.ErrNoEligibleParticipants
	}
	if remaining > len(eligible) {
		return nil, &domain.InsufficientParticipantsError{Eligible: len(eligible), Required: remaining}
	}

	shuffled := make([]domain.Participant, len(eligible))
	copy(shuffled, eligible)
	Shuffle(shuffled, rng)
	return shuffled[:remaining], nil
}

// AdvanceTier moves to the next tier once the current one is exhausted.
// Past the last tier it returns ErrAllTiersComplete, the expected terminal signal.
func AdvanceTier(tierIndex int, tiers []domain.PrizeTier, l *ledger.Ledger) (int, error) {
	tier, ok := CurrentTier(tiers, tierIndex)
	if !ok {
		return tierIndex, domain.ErrAllTiersComplete
	}

	remaining, err := RemainingQuota(tier, l)
	if err != nil {
		return tierIndex, err
	}
	if remaining > 0 {
		return tierIndex, fmt.Errorf("%w: "+ErrContextRemaining, domain.ErrTierNotExhausted, tier.Level, remaining)
	}

	if tierIndex+1 >= len(tiers) {
		return tierIndex, domain.ErrAllTiersComplete
	}
	return tierIndex + 1, nil
}
