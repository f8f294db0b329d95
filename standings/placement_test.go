package standings

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-standings/models"
)

func eventMatch(event string, round int, p1, p2 string, s1, s2 int) models.MatchRecord {
	return models.MatchRecord{
		Date:           time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		EventName:      event,
		RoundNumber:    round,
		Player1ID:      p1,
		Player2ID:      p2,
		Score1:         s1,
		Score2:         s2,
		Player1Faction: "Tyranids",
		Player2Faction: "Aeldari",
	}
}

// teamRound builds the individual games of one team-vs-team round from
// per-game score pairs, all games summing to the 20-point convention.
func teamRound(event string, round int, team1, team2 string, games [][2]int) []models.MatchRecord {
	matches := make([]models.MatchRecord, 0, len(games))
	for i, g := range games {
		m := eventMatch(event, round, fmt.Sprintf("%s-p%d", team1, i), fmt.Sprintf("%s-p%d", team2, i), g[0], g[1])
		m.IsTeamMatch = true
		m.Team1ID = team1
		m.Team2ID = team2
		matches = append(matches, m)
	}
	return matches
}

func TestClassifyEvent(t *testing.T) {
	teams := []models.MatchRecord{
		eventMatch("Clash", 1, "a", "b", 12, 8),
		eventMatch("Clash", 1, "c", "d", 20, 0),
	}
	assert.Equal(t, models.EventFormatTeams, ClassifyEvent(teams))

	// A single match not summing to 20 makes the whole event singles.
	mixed := append(teams, eventMatch("Clash", 2, "a", "c", 100, 55))
	assert.Equal(t, models.EventFormatSingles, ClassifyEvent(mixed))

	assert.Equal(t, models.EventFormatSingles, ClassifyEvent(nil))
}

func TestClassifyEventSize(t *testing.T) {
	assert.Equal(t, "RTT", ClassifyEventSize(1))
	assert.Equal(t, "RTT", ClassifyEventSize(3))
	assert.Equal(t, "GT", ClassifyEventSize(5))
}

func TestPlaceEventEmpty(t *testing.T) {
	out := PlaceEvent(nil)
	assert.Empty(t, out.Singles)
	assert.Empty(t, out.Teams)
	assert.Equal(t, 0, out.Rounds)
}

func TestPlaceEventSinglesSweep(t *testing.T) {
	// RTT Cup: 3 rounds, x wins all three.
	matches := []models.MatchRecord{
		eventMatch("RTT Cup", 1, "x", "a", 90, 40),
		eventMatch("RTT Cup", 1, "b", "c", 60, 55),
		eventMatch("RTT Cup", 2, "x", "b", 85, 30),
		eventMatch("RTT Cup", 2, "a", "c", 70, 45),
		eventMatch("RTT Cup", 3, "x", "c", 75, 50),
		eventMatch("RTT Cup", 3, "a", "b", 65, 60),
	}

	out := PlaceEvent(matches)
	assert.Equal(t, models.EventFormatSingles, out.Format)
	assert.Equal(t, 3, out.Rounds)

	require.NotEmpty(t, out.Singles)
	first := out.Singles[0]
	assert.Equal(t, "x", first.PlayerID)
	assert.Equal(t, 3, first.Wins)
	assert.Equal(t, 90+85+75, first.TotalScore)
	assert.Equal(t, "Tyranids", first.MainFaction)
}

func TestPlaceEventSinglesMissingRoundIsNil(t *testing.T) {
	matches := []models.MatchRecord{
		eventMatch("Open", 1, "a", "b", 50, 40),
		eventMatch("Open", 2, "a", "c", 30, 60),
		eventMatch("Open", 3, "a", "b", 45, 45),
	}

	out := PlaceEvent(matches)
	var forC *models.SinglesPlacement
	for i := range out.Singles {
		if out.Singles[i].PlayerID == "c" {
			forC = &out.Singles[i]
		}
	}
	require.NotNil(t, forC)
	require.Len(t, forC.Rounds, 3)
	assert.Nil(t, forC.Rounds[0])
	require.NotNil(t, forC.Rounds[1])
	assert.Equal(t, models.ResultWin, forC.Rounds[1].Result)
	assert.Nil(t, forC.Rounds[2])
}

func TestPlaceEventTeamDrawMargin(t *testing.T) {
	// 85-75 (diff 10) is a drawn round; 86-74 (diff 12) is a win.
	drawGames := [][2]int{{11, 9}, {11, 9}, {11, 9}, {11, 9}, {11, 9}, {10, 10}, {10, 10}, {10, 10}}
	winGames := [][2]int{{11, 9}, {11, 9}, {11, 9}, {11, 9}, {11, 9}, {11, 9}, {10, 10}, {10, 10}}

	drawn := PlaceEvent(teamRound("Doubles Clash", 1, "alpha", "beta", drawGames))
	require.Equal(t, models.EventFormatTeams, drawn.Format)
	require.Len(t, drawn.Teams, 2)
	assert.Equal(t, 0, drawn.Teams[0].RoundWins)
	assert.Equal(t, 0, drawn.Teams[1].RoundWins)
	require.NotNil(t, drawn.Teams[0].Rounds[0])
	assert.True(t, drawn.Teams[0].Rounds[0].Drawn)

	won := PlaceEvent(teamRound("Doubles Clash", 1, "alpha", "beta", winGames))
	require.Len(t, won.Teams, 2)
	assert.Equal(t, "alpha", won.Teams[0].TeamID)
	assert.Equal(t, 1, won.Teams[0].RoundWins)
	assert.Equal(t, 86, won.Teams[0].TotalPoints)
	assert.Equal(t, 0, won.Teams[1].RoundWins)
}

func TestPlaceEventEightPlayerRoundTag(t *testing.T) {
	games := [][2]int{{11, 9}, {11, 9}, {11, 9}, {11, 9}, {11, 9}, {11, 9}, {10, 10}, {10, 10}}
	out := PlaceEvent(teamRound("Grand Melee", 1, "alpha", "beta", games))

	require.NotNil(t, out.Teams[0].Rounds[0])
	assert.True(t, out.Teams[0].Rounds[0].EightPlayer)

	// Four games only: combined 80, not an 8-player round. The draw
	// rule is unchanged either way.
	small := PlaceEvent(teamRound("Small Melee", 1, "alpha", "beta", [][2]int{{15, 5}, {15, 5}, {15, 5}, {15, 5}}))
	require.NotNil(t, small.Teams[0].Rounds[0])
	assert.False(t, small.Teams[0].Rounds[0].EightPlayer)
	assert.True(t, small.Teams[0].Rounds[0].Won)
}

func TestPlaceEventTeamPairingProcessedOnce(t *testing.T) {
	// Several player games map to one pairing; the round win is
	// counted once and points are the summed aggregates.
	games := [][2]int{{15, 5}, {15, 5}, {15, 5}, {15, 5}}
	out := PlaceEvent(teamRound("Pairs", 1, "alpha", "beta", games))

	require.Len(t, out.Teams, 2)
	assert.Equal(t, 1, out.Teams[0].RoundWins)
	assert.Equal(t, 60, out.Teams[0].TotalPoints)
	assert.Equal(t, 20, out.Teams[1].TotalPoints)
}

func TestPlaceEventTeamsSortedByRoundWinsThenPoints(t *testing.T) {
	matches := teamRound("League Final", 1, "alpha", "beta", [][2]int{{15, 5}, {15, 5}, {15, 5}, {15, 5}})
	matches = append(matches, teamRound("League Final", 1, "gamma", "delta", [][2]int{{12, 8}, {12, 8}, {12, 8}, {12, 8}})...)
	matches = append(matches, teamRound("League Final", 2, "alpha", "gamma", [][2]int{{10, 10}, {10, 10}, {10, 10}, {10, 10}})...)

	out := PlaceEvent(matches)
	require.Len(t, out.Teams, 4)

	// alpha and gamma both have one round win; alpha's 100 points beat
	// gamma's 88.
	assert.Equal(t, "alpha", out.Teams[0].TeamID)
	assert.Equal(t, "gamma", out.Teams[1].TeamID)
	assert.Equal(t, 100, out.Teams[0].TotalPoints)
	assert.Equal(t, 88, out.Teams[1].TotalPoints)
}
