package models

import "time"

// MatchResult — исход матча с точки зрения одной из сторон.
type MatchResult string

const (
	ResultWin  MatchResult = "Win"
	ResultLoss MatchResult = "Loss"
	ResultDraw MatchResult = "Draw"
)

type MatchType string

const (
	MatchTypeSingles MatchType = "singles"
	MatchTypeTeams   MatchType = "teams"
)

// MatchRecord is the canonical match shape every engine component
// consumes. Raw rows in either the singles or the teams schema are
// converted into this by the normalizer.
type MatchRecord struct {
	Date           time.Time `json:"date"`
	EventName      string    `json:"event_name"`
	RoundNumber    int       `json:"round_number"`
	Player1ID      string    `json:"player1_id"`
	Player2ID      string    `json:"player2_id"`
	Score1         int       `json:"score1"`
	Score2         int       `json:"score2"`
	Player1Faction string    `json:"player1_faction"`
	Player2Faction string    `json:"player2_faction"`

	IsTeamMatch bool   `json:"is_team_match"`
	Team1ID     string `json:"team1_id,omitempty"`
	Team2ID     string `json:"team2_id,omitempty"`
	TeamScore1  int    `json:"team_score1,omitempty"`
	TeamScore2  int    `json:"team_score2,omitempty"`
}

// SoloMatchRow mirrors one row of the singles results table as stored.
// Column names follow the legacy snake_case sheet headers.
type SoloMatchRow struct {
	ID             int       `json:"id" db:"id"`
	Date           time.Time `json:"date" db:"date"`
	EventName      string    `json:"event_name" db:"event_name"`
	GameNumber     int       `json:"game_number" db:"game_number"`
	Player1ID      string    `json:"player1_id" db:"player1_id"`
	Player2ID      string    `json:"player2_id" db:"player2_id"`
	Score1         string    `json:"score1" db:"score1"`
	Score2         string    `json:"score2" db:"score2"`
	Player1Faction *string   `json:"player1_faction,omitempty" db:"player1_faction"`
	Player2Faction *string   `json:"player2_faction,omitempty" db:"player2_faction"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TeamMatchRow mirrors one row of the teams results table: one
// individual game inside a team round, plus the aggregate team scores.
type TeamMatchRow struct {
	ID             int       `json:"id" db:"id"`
	Date           time.Time `json:"date" db:"date"`
	EventName      string    `json:"event_name" db:"event_name"`
	GameNumber     int       `json:"game_number" db:"game_number"`
	Player1ID      string    `json:"player1_id" db:"player1_id"`
	Player2ID      string    `json:"player2_id" db:"player2_id"`
	Score1         string    `json:"score1" db:"score1"`
	Score2         string    `json:"score2" db:"score2"`
	Player1Faction *string   `json:"player1_faction,omitempty" db:"player1_faction"`
	Player2Faction *string   `json:"player2_faction,omitempty" db:"player2_faction"`
	Team1ID        string    `json:"team1_id" db:"team1_id"`
	Team2ID        string    `json:"team2_id" db:"team2_id"`
	TeamScore1     string    `json:"team_score1" db:"team_score1"`
	TeamScore2     string    `json:"team_score2" db:"team_score2"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
