package prize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("sorts by level descending", func(t *testing.T) {
		got, err := Validate([]domain.PrizeTier{
			{Level: 1, Name: " Lucky ", Quota: 10},
			{Level: 3, Name: "Grand", Quota: 1},
			{Level: 2, Name: "Second", Quota: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, []int{got[0].Level, got[1].Level, got[2].Level})
		assert.Equal(t, "Lucky", got[2].Name)
	})

	tests := []struct {
		name    string
		tiers   []domain.PrizeTier
		wantErr error
		errText string
	}{
		{name: "empty", tiers: nil, wantErr: domain.ErrNoPrizeTiers},
		{name: "zero quota", tiers: []domain.PrizeTier{{Level: 1, Name: "A", Quota: 0}}, wantErr: domain.ErrInvalidPrizeTier, errText: "quota failed gte"},
		{name: "zero level", tiers: []domain.PrizeTier{{Level: 0, Name: "A", Quota: 1}}, wantErr: domain.ErrInvalidPrizeTier, errText: "level failed gte"},
		{name: "blank name", tiers: []domain.PrizeTier{{Level: 1, Name: "  ", Quota: 1}}, wantErr: domain.ErrInvalidPrizeTier, errText: "name failed required"},
		{
			name:    "duplicate level",
			tiers:   []domain.PrizeTier{{Level: 2, Name: "A", Quota: 1}, {Level: 2, Name: "B", Quota: 1}},
			wantErr: domain.ErrDuplicateTierLevel,
			errText: "level 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.tiers)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsUserActionable(err))
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()

	presets := Presets()
	validated, err := Validate(presets)
	require.NoError(t, err)
	assert.Equal(t, presets, validated, "presets are already in draw order")
	assert.Equal(t, 39, TotalQuota(presets))
	assert.Equal(t, PresetGrand, presets[0].Name)
	assert.Equal(t, 1, presets[0].Quota)

	// Callers get their own copy
	presets[0].Quota = 99
	assert.Equal(t, 1, Presets()[0].Quota)
}

func TestExceedsRoster(t *testing.T) {
	t.Parallel()

	tiers := []domain.PrizeTier{{Level: 1, Name: "A", Quota: 3}}
	assert.True(t, ExceedsRoster(tiers, 2))
	assert.False(t, ExceedsRoster(tiers, 3))
	assert.False(t, ExceedsRoster(tiers, 0), "no roster loaded yet")
}
