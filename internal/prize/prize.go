// Package prize validates prize tier tables and provides the default ladder.
package prize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

var validate = validator.New()

// Validate checks every tier and returns a copy sorted by level, highest first
func Validate(tiers []domain.PrizeTier) ([]domain.PrizeTier, error) {
	if len(tiers) == 0 {
		return nil, domain.ErrNoPrizeTiers
	}

	var errs []error
	seen := make(map[int]struct{}, len(tiers))
	cleaned := make([]domain.PrizeTier, len(tiers))

	for i, t := range tiers {
		t.Name = strings.TrimSpace(t.Name)
		cleaned[i] = t

		if err := validate.Struct(t); err != nil {
			errs = append(errs, fmt.Errorf("%w: "+ErrContextTier, domain.ErrInvalidPrizeTier, i+1, describe(err)))
			continue
		}
		if _, dup := seen[t.Level]; dup {
			errs = append(errs, fmt.Errorf("%w: "+ErrContextLevel, domain.ErrDuplicateTierLevel, t.Level))
			continue
		}
		seen[t.Level] = struct{}{}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return domain.SortTiersDescending(cleaned), nil
}

// Presets returns the default ladder, highest level first
func Presets() []domain.PrizeTier {
	return []domain.PrizeTier{
		{Level: 5, Name: PresetGrand, Quota: 1},
		{Level: 4, Name: PresetFirst, Quota: 3},
		{Level: 3, Name: PresetSecond, Quota: 5},
		{Level: 2, Name: PresetThird, Quota: 10},
		{Level: 1, Name: PresetLucky, Quota: 20},
	}
}

// TotalQuota is the number of winners the table will produce
func TotalQuota(tiers []domain.PrizeTier) int {
	return domain.TotalQuota(tiers)
}

// ExceedsRoster reports whether the table needs more winners than the roster holds.
// Such a table is allowed but the last tiers will run out of participants.
func ExceedsRoster(tiers []domain.PrizeTier, rosterSize int) bool {
	return rosterSize > 0 && domain.TotalQuota(tiers) > rosterSize
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
