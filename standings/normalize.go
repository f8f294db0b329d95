package standings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/league-standings/models"
)

// ErrInvalidRow marks a raw row the normalizer refuses: missing player
// ids or non-numeric scores. Tournament exports routinely contain
// sparse rows, so callers drop and count these instead of failing.
var ErrInvalidRow = errors.New("invalid match row")

// RawRow is one not-yet-validated tabular record. Field names vary
// between exports (camelCase in newer sheets, snake_case in legacy
// ones), which is why lookup goes through an ordered candidate table.
type RawRow map[string]string

const (
	defaultEventName = "Unknown Event"
	defaultFaction   = "Unknown"
)

// fieldCandidates lists, per logical field, the raw keys to try in
// preference order.
var fieldCandidates = map[string][]string{
	"date":           {"date", "matchDate", "match_date"},
	"eventName":      {"eventName", "event_name"},
	"gameNumber":     {"gameNumber", "game_number", "round", "roundNumber", "round_number"},
	"player1Id":      {"player1Id", "player1_id"},
	"player2Id":      {"player2Id", "player2_id"},
	"score1":         {"score1", "player1Score", "player1_score"},
	"score2":         {"score2", "player2Score", "player2_score"},
	"player1Faction": {"player1Faction", "player1_faction"},
	"player2Faction": {"player2Faction", "player2_faction"},
	"team1Id":        {"team1Id", "team1_id"},
	"team2Id":        {"team2Id", "team2_id"},
	"teamScore1":     {"teamScore1", "team_score1", "team1Score", "team1_score"},
	"teamScore2":     {"teamScore2", "team_score2", "team2Score", "team2_score"},
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"02.01.2006",
}

func (r RawRow) lookup(field string) string {
	for _, key := range fieldCandidates[field] {
		if v := strings.TrimSpace(r[key]); v != "" {
			return v
		}
	}
	return ""
}

func (r RawRow) lookupOr(field, fallback string) string {
	if v := r.lookup(field); v != "" {
		return v
	}
	return fallback
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// Normalize converts one raw row into the canonical MatchRecord. The
// row is treated as a team match when both team ids resolve; otherwise
// it is a singles match and any team fields are ignored.
func Normalize(row RawRow) (models.MatchRecord, error) {
	var rec models.MatchRecord

	rec.Player1ID = row.lookup("player1Id")
	rec.Player2ID = row.lookup("player2Id")
	if rec.Player1ID == "" || rec.Player2ID == "" {
		return rec, fmt.Errorf("%w: missing player id", ErrInvalidRow)
	}

	score1, err := strconv.Atoi(row.lookup("score1"))
	if err != nil {
		return rec, fmt.Errorf("%w: score1 is not a number", ErrInvalidRow)
	}
	score2, err := strconv.Atoi(row.lookup("score2"))
	if err != nil {
		return rec, fmt.Errorf("%w: score2 is not a number", ErrInvalidRow)
	}
	rec.Score1 = score1
	rec.Score2 = score2

	date, err := parseDate(row.lookup("date"))
	if err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	rec.Date = date

	if raw := row.lookup("gameNumber"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			rec.RoundNumber = n
		}
	}

	rec.EventName = row.lookupOr("eventName", defaultEventName)
	rec.Player1Faction = row.lookupOr("player1Faction", defaultFaction)
	rec.Player2Faction = row.lookupOr("player2Faction", defaultFaction)

	team1 := row.lookup("team1Id")
	team2 := row.lookup("team2Id")
	if team1 != "" && team2 != "" {
		rec.IsTeamMatch = true
		rec.Team1ID = team1
		rec.Team2ID = team2
		// Aggregate scores default to the individual game scores when a
		// legacy row carries no team totals.
		rec.TeamScore1 = score1
		rec.TeamScore2 = score2
		if n, err := strconv.Atoi(row.lookup("teamScore1")); err == nil {
			rec.TeamScore1 = n
		}
		if n, err := strconv.Atoi(row.lookup("teamScore2")); err == nil {
			rec.TeamScore2 = n
		}
	}

	return rec, nil
}

// RawFromSolo converts a stored singles row to the normalizer's input
// shape.
func RawFromSolo(row models.SoloMatchRow) RawRow {
	raw := RawRow{
		"date":        row.Date.Format("2006-01-02"),
		"event_name":  row.EventName,
		"game_number": strconv.Itoa(row.GameNumber),
		"player1_id":  row.Player1ID,
		"player2_id":  row.Player2ID,
		"score1":      row.Score1,
		"score2":      row.Score2,
	}
	if row.Player1Faction != nil {
		raw["player1_faction"] = *row.Player1Faction
	}
	if row.Player2Faction != nil {
		raw["player2_faction"] = *row.Player2Faction
	}
	return raw
}

// RawFromTeam converts a stored team-game row to the normalizer's
// input shape.
func RawFromTeam(row models.TeamMatchRow) RawRow {
	raw := RawFromSolo(models.SoloMatchRow{
		Date:           row.Date,
		EventName:      row.EventName,
		GameNumber:     row.GameNumber,
		Player1ID:      row.Player1ID,
		Player2ID:      row.Player2ID,
		Score1:         row.Score1,
		Score2:         row.Score2,
		Player1Faction: row.Player1Faction,
		Player2Faction: row.Player2Faction,
	})
	raw["team1_id"] = row.Team1ID
	raw["team2_id"] = row.Team2ID
	raw["team_score1"] = row.TeamScore1
	raw["team_score2"] = row.TeamScore2
	return raw
}
