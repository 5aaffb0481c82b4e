package domain

import "sort"

// PrizeTier is one prize level with a fixed winner quota.
// Higher levels are drawn first.
type PrizeTier struct {
	Level int    `json:"level" validate:"gte=1"`
	Name  string `json:"name" validate:"required,max=128"`
	Quota int    `json:"quota" validate:"gte=1"`
}

// SortTiersDescending returns a copy of tiers ordered by level, highest first.
// Ties keep their input order.
func SortTiersDescending(tiers []PrizeTier) []PrizeTier {
	sorted := make([]PrizeTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level > sorted[j].Level
	})
	return sorted
}

// TotalQuota sums the quotas of all tiers
func TotalQuota(tiers []PrizeTier) int {
	total := 0
	for _, t := range tiers {
		total += t.Quota
	}
	return total
}

// TierProgress describes how far a single tier has been drawn
type TierProgress struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	Quota     int    `json:"quota"`
	Drawn     int    `json:"drawn"`
	Remaining int    `json:"remaining"`
}
