package standings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-standings/models"
)

func testRoster(ids ...string) []models.Player {
	players := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, models.Player{ID: id, Name: "Player " + id})
	}
	return players
}

func singles(day, round int, p1, p2 string, s1, s2 int) models.MatchRecord {
	return models.MatchRecord{
		Date:           time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		EventName:      "League Night",
		RoundNumber:    round,
		Player1ID:      p1,
		Player2ID:      p2,
		Score1:         s1,
		Score2:         s2,
		Player1Faction: "Ultramarines",
		Player2Faction: "Orks",
	}
}

func TestRecomputeSinglesZeroSum(t *testing.T) {
	res := Recompute(testRoster("a", "b"), []models.MatchRecord{
		singles(1, 1, "a", "b", 100, 50),
	}, DefaultStartingRating)

	assert.Equal(t, 1563.0, res.Ratings["a"])
	assert.Equal(t, 1437.0, res.Ratings["b"])

	require.Len(t, res.Histories["a"], 1)
	entry := res.Histories["a"][0]
	assert.Equal(t, models.ResultWin, entry.Result)
	assert.Equal(t, 1500.0, entry.RatingBefore)
	assert.Equal(t, 1563.0, entry.RatingAfter)
	assert.Equal(t, 63.0, entry.RatingDelta)

	assert.Equal(t, 1, res.Stats["a"].Wins)
	assert.Equal(t, 1, res.Stats["b"].Losses)
}

func TestRecomputeDeterministicAcrossInputOrder(t *testing.T) {
	roster := testRoster("a", "b", "c")
	matches := []models.MatchRecord{
		singles(1, 1, "a", "b", 100, 50),
		singles(1, 2, "b", "c", 60, 40),
		singles(2, 1, "c", "a", 80, 20),
		singles(3, 1, "a", "b", 55, 45),
	}
	shuffled := []models.MatchRecord{matches[2], matches[0], matches[3], matches[1]}

	first := Recompute(roster, matches, DefaultStartingRating)
	second := Recompute(roster, shuffled, DefaultStartingRating)

	assert.Equal(t, first.Ratings, second.Ratings)
	assert.Equal(t, first.Histories, second.Histories)
}

func TestRecomputeIdempotentPrefix(t *testing.T) {
	// Folding [m1] and folding [m1, m2] from scratch must agree on the
	// rating state after m1.
	roster := testRoster("a", "b")
	m1 := singles(1, 1, "a", "b", 100, 50)
	m2 := singles(2, 1, "b", "a", 70, 30)

	short := Recompute(roster, []models.MatchRecord{m1}, DefaultStartingRating)
	full := Recompute(roster, []models.MatchRecord{m1, m2}, DefaultStartingRating)

	require.NotEmpty(t, full.Histories["a"])
	assert.Equal(t, short.Histories["a"][0].RatingAfter, full.Histories["a"][0].RatingAfter)
	assert.Equal(t, short.Ratings["a"], full.Histories["a"][1].RatingBefore)
}

func TestRecomputeDeduplicatesIdenticalMatches(t *testing.T) {
	roster := testRoster("a", "b")
	m := singles(1, 1, "a", "b", 100, 50)

	once := Recompute(roster, []models.MatchRecord{m}, DefaultStartingRating)
	twice := Recompute(roster, []models.MatchRecord{m, m}, DefaultStartingRating)

	assert.Equal(t, once.Ratings, twice.Ratings)
	assert.Len(t, twice.Histories["a"], 1)
	assert.Equal(t, 1, twice.Dropped)
}

func TestRecomputeSkipsUnknownPlayers(t *testing.T) {
	roster := testRoster("a", "b")
	res := Recompute(roster, []models.MatchRecord{
		singles(1, 1, "a", "ghost", 100, 50),
		singles(2, 1, "a", "b", 60, 40),
	}, DefaultStartingRating)

	assert.Equal(t, 1, res.Dropped)
	assert.Len(t, res.Histories["a"], 1)
	_, known := res.Ratings["ghost"]
	assert.False(t, known)
}

func TestRecomputeDrawLeavesRatingsUntouched(t *testing.T) {
	res := Recompute(testRoster("a", "b"), []models.MatchRecord{
		singles(1, 1, "a", "b", 10, 10),
	}, DefaultStartingRating)

	assert.Equal(t, 1500.0, res.Ratings["a"])
	assert.Equal(t, 1500.0, res.Ratings["b"])
	assert.Equal(t, models.ResultDraw, res.Histories["a"][0].Result)
	assert.Equal(t, 1, res.Stats["a"].Draws)
}

func TestRecomputeAnnotatesRankTransitions(t *testing.T) {
	// 1500 -> 1437 crosses the Sergeant/Trooper boundary.
	res := Recompute(testRoster("a", "b"), []models.MatchRecord{
		singles(1, 1, "a", "b", 100, 50),
	}, DefaultStartingRating)

	loser := res.Histories["b"][0]
	require.NotNil(t, loser.RankTransition)
	assert.Equal(t, "Demoted to Trooper", *loser.RankTransition)

	// 1500 -> 1563 stays inside Sergeant, so no annotation.
	winner := res.Histories["a"][0]
	assert.Nil(t, winner.RankTransition)
}

func TestRecomputeAnnotatesPromotion(t *testing.T) {
	// Three blowout wins push a past 1600 into Lieutenant.
	res := Recompute(testRoster("a", "b", "c", "d"), []models.MatchRecord{
		singles(1, 1, "a", "b", 100, 50),
		singles(2, 1, "a", "c", 100, 50),
		singles(3, 1, "a", "d", 100, 50),
	}, DefaultStartingRating)

	history := res.Histories["a"]
	require.Len(t, history, 3)

	var promoted bool
	for _, entry := range history {
		if entry.RankTransition != nil && *entry.RankTransition == "Promoted to Lieutenant" {
			promoted = true
		}
	}
	assert.True(t, promoted)
}

func TestRecomputeTeamMatchAsymmetric(t *testing.T) {
	m := singles(1, 1, "a", "b", 15, 5)
	m.IsTeamMatch = true
	m.Team1ID = "alpha"
	m.Team2ID = "beta"
	m.TeamScore1 = 110
	m.TeamScore2 = 50

	res := Recompute(testRoster("a", "b"), []models.MatchRecord{m}, DefaultStartingRating)

	dA := res.Histories["a"][0].RatingDelta
	dB := res.Histories["b"][0].RatingDelta
	assert.Greater(t, dA, 0.0)
	assert.Less(t, dB, 0.0)
	assert.Equal(t, models.MatchTypeTeams, res.Histories["a"][0].MatchType)
}
