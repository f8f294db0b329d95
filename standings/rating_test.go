package standings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingDeltaEqualRatingsBlowout(t *testing.T) {
	// Equal ratings, 100-50: E_A = 0.5, no gap dampening, so the
	// winner gains round(32 * ln(51) * 0.5).
	delta := RatingDelta(1500, 1500, 100, 50)

	expected := math.Round(32 * math.Log(51) * 0.5)
	assert.Equal(t, expected, delta)
	assert.Equal(t, float64(63), delta)
}

func TestRatingDeltaZeroSum(t *testing.T) {
	cases := []struct {
		name             string
		ratingA, ratingB float64
		scoreA, scoreB   int
	}{
		{"equal ratings", 1500, 1500, 100, 50},
		{"favourite wins", 1800, 1400, 75, 40},
		{"underdog wins", 1400, 1800, 60, 30},
		{"narrow win", 1650, 1600, 11, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dA := RatingDelta(tc.ratingA, tc.ratingB, tc.scoreA, tc.scoreB)
			dB := RatingDelta(tc.ratingB, tc.ratingA, tc.scoreB, tc.scoreA)
			assert.Equal(t, dA, -dB)
			assert.Greater(t, dA, 0.0)
		})
	}
}

func TestRatingDeltaDrawIsNoOp(t *testing.T) {
	assert.Equal(t, 0.0, RatingDelta(1500, 1500, 10, 10))
	assert.Equal(t, 0.0, RatingDelta(1900, 1300, 10, 10))
}

func TestRatingDeltaFavouriteBlowoutDampened(t *testing.T) {
	// Same margin, but an already much higher-rated winner gains less
	// than an equal-rated one would.
	equal := RatingDelta(1500, 1500, 80, 20)
	favourite := RatingDelta(1900, 1500, 80, 20)
	assert.Less(t, favourite, equal)
}

func TestTeamRatingDeltaDrawIsNoOp(t *testing.T) {
	assert.Equal(t, 0.0, TeamRatingDelta(1500, 1500, 10, 10, 90, 70))
}

func TestTeamRatingDeltaWinningTeamOutweighsLosingTeam(t *testing.T) {
	// Big individual win on the winning team beats a narrow individual
	// win on a losing team.
	winningTeam := TeamRatingDelta(1500, 1500, 15, 5, 110, 50)
	losingTeam := TeamRatingDelta(1500, 1500, 11, 9, 50, 110)

	assert.Greater(t, winningTeam, losingTeam)
	assert.Greater(t, losingTeam, 0.0)
}

func TestTeamRatingDeltaPerSideOrdering(t *testing.T) {
	// Each side is computed with its own rating ordering; the sides of
	// a team game need not be zero-sum.
	d1 := TeamRatingDelta(1600, 1400, 12, 8, 100, 60)
	d2 := TeamRatingDelta(1400, 1600, 8, 12, 60, 100)

	assert.Greater(t, d1, 0.0)
	assert.Less(t, d2, 0.0)
}
