package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankTierThresholds(t *testing.T) {
	cases := []struct {
		rating float64
		tier   Tier
	}{
		{2100, TierChapterMaster},
		{2000, TierChapterMaster},
		{1999, TierWarLord},
		{1900, TierWarLord},
		{1750, TierCaptain},
		{1600, TierLieutenant},
		{1500, TierSergeant},
		{1450, TierSergeant},
		{1449, TierTrooper},
		{1300, TierTrooper},
		{1299, TierScout},
		{900, TierScout},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, RankTier(tc.rating, false), "rating %.0f", tc.rating)
	}
}

func TestRankTierTopTenOverride(t *testing.T) {
	// A rating that would only be Sergeant is still War-Master while
	// the player sits in the global top 10.
	assert.Equal(t, TierWarMaster, RankTier(1550, true))
	assert.Equal(t, TierSergeant, RankTier(1550, false))

	// The override beats every threshold, including the top one.
	assert.Equal(t, TierWarMaster, RankTier(2200, true))
}
