package standings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-standings/models"
)

func leaderboardFixture() []models.LeaderboardEntry {
	// 12 players, ratings descending from 1720 in steps of 20, so the
	// player at rank 7 sits on 1600 and rank 11 on 1520.
	players := make([]models.Player, 0, 12)
	res := &FoldResult{
		Ratings: make(map[string]float64),
		Stats:   make(map[string]*models.PlayerStats),
	}
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("p%02d", i+1)
		state := "TX"
		if i%2 == 0 {
			state = "CA"
		}
		players = append(players, models.Player{ID: id, Name: "Player " + id, State: &state})
		res.Ratings[id] = 1720 - float64(i)*20
		res.Stats[id] = &models.PlayerStats{Games: i} // p01 has no games
	}
	return AssembleLeaderboard(players, res)
}

func TestAssembleLeaderboardRanksAndTopTen(t *testing.T) {
	entries := leaderboardFixture()
	require.Len(t, entries, 12)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1720.0, entries[0].Rating)

	// Rank 7 holds 1600 — Lieutenant by rating, War-Master by position.
	assert.Equal(t, 1600.0, entries[6].Rating)
	assert.Equal(t, string(TierWarMaster), entries[6].Tier)

	// Rank 11 is outside the top 10 and falls back to thresholds.
	assert.Equal(t, 1520.0, entries[10].Rating)
	assert.Equal(t, string(TierSergeant), entries[10].Tier)
}

func TestAssembleLeaderboardUnratedPlayerGetsStartingRating(t *testing.T) {
	players := []models.Player{{ID: "new", Name: "Newcomer"}}
	res := &FoldResult{Ratings: map[string]float64{}, Stats: map[string]*models.PlayerStats{}}

	entries := AssembleLeaderboard(players, res)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultStartingRating, entries[0].Rating)
	assert.Equal(t, 0, entries[0].Games)
}

func TestFilterBareStateRenumbersContextually(t *testing.T) {
	filtered := Filter(leaderboardFixture(), LeaderboardFilter{State: "CA"})

	require.Len(t, filtered, 6)
	for i, e := range filtered {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestFilterCombinedKeepsGlobalNumbering(t *testing.T) {
	filtered := Filter(leaderboardFixture(), LeaderboardFilter{State: "CA", HideInactive: true})

	require.NotEmpty(t, filtered)
	// p01 (rank 1, zero games) is hidden; survivors keep global ranks.
	assert.NotEqual(t, 1, filtered[0].Rank)
	assert.Equal(t, "p03", filtered[0].PlayerID)
	assert.Equal(t, 3, filtered[0].Rank)
}

func TestFilterNameSearchKeepsGlobalNumbering(t *testing.T) {
	filtered := Filter(leaderboardFixture(), LeaderboardFilter{NameQuery: "p12"})

	require.Len(t, filtered, 1)
	assert.Equal(t, 12, filtered[0].Rank)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	entries := leaderboardFixture()
	_ = Filter(entries, LeaderboardFilter{State: "CA"})

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}
