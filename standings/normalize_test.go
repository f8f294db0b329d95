package standings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-standings/models"
)

func TestNormalizeCamelCasePreferred(t *testing.T) {
	rec, err := Normalize(RawRow{
		"date":            "2024-03-09",
		"eventName":       "Spring Assault",
		"event_name":      "ignored legacy name",
		"gameNumber":      "2",
		"player1Id":       "p1",
		"player2Id":       "p2",
		"score1":          "12",
		"score2":          "8",
		"player1Faction":  "Iron Hands",
		"player2_faction": "Orks",
	})
	require.NoError(t, err)

	assert.Equal(t, "Spring Assault", rec.EventName)
	assert.Equal(t, 2, rec.RoundNumber)
	assert.Equal(t, "Iron Hands", rec.Player1Faction)
	assert.Equal(t, "Orks", rec.Player2Faction)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.False(t, rec.IsTeamMatch)
}

func TestNormalizeSnakeCaseFallbackAndDefaults(t *testing.T) {
	rec, err := Normalize(RawRow{
		"player1_id": "p1",
		"player2_id": "p2",
		"score1":     "20",
		"score2":     "0",
	})
	require.NoError(t, err)

	assert.Equal(t, "Unknown Event", rec.EventName)
	assert.Equal(t, "Unknown", rec.Player1Faction)
	assert.Equal(t, "Unknown", rec.Player2Faction)
}

func TestNormalizeRejectsMissingPlayer(t *testing.T) {
	_, err := Normalize(RawRow{
		"player1Id": "p1",
		"score1":    "10",
		"score2":    "10",
	})
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestNormalizeRejectsNonNumericScore(t *testing.T) {
	_, err := Normalize(RawRow{
		"player1Id": "p1",
		"player2Id": "p2",
		"score1":    "ten",
		"score2":    "10",
	})
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestNormalizeTeamMatch(t *testing.T) {
	rec, err := Normalize(RawRow{
		"player1Id":  "p1",
		"player2Id":  "p2",
		"score1":     "12",
		"score2":     "8",
		"team1Id":    "alpha",
		"team2Id":    "beta",
		"teamScore1": "95",
		"teamScore2": "65",
	})
	require.NoError(t, err)

	assert.True(t, rec.IsTeamMatch)
	assert.Equal(t, "alpha", rec.Team1ID)
	assert.Equal(t, 95, rec.TeamScore1)
	assert.Equal(t, 65, rec.TeamScore2)
}

func TestNormalizeRowsCountsDropped(t *testing.T) {
	rows := []RawRow{
		{"player1Id": "p1", "player2Id": "p2", "score1": "10", "score2": "5"},
		{"player1Id": "p1", "score1": "10", "score2": "5"},
		{"player1Id": "p1", "player2Id": "p2", "score1": "x", "score2": "5"},
	}
	records, dropped := NormalizeRows(rows)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, dropped)
}

func TestRawFromSoloRoundTrips(t *testing.T) {
	faction := "Necrons"
	row := models.SoloMatchRow{
		Date:           time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EventName:      "RTT Cup",
		GameNumber:     3,
		Player1ID:      "p1",
		Player2ID:      "p2",
		Score1:         "17",
		Score2:         "3",
		Player1Faction: &faction,
	}
	rec, err := Normalize(RawFromSolo(row))
	require.NoError(t, err)

	assert.Equal(t, "RTT Cup", rec.EventName)
	assert.Equal(t, 3, rec.RoundNumber)
	assert.Equal(t, 17, rec.Score1)
	assert.Equal(t, "Necrons", rec.Player1Faction)
	assert.Equal(t, "Unknown", rec.Player2Faction)
}
