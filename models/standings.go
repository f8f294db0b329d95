package models

import "time"

// RatedMatchEntry is one item of a player's chronological match
// history, annotated by the rating fold.
type RatedMatchEntry struct {
	Date           time.Time   `json:"date"`
	EventName      string      `json:"event_name"`
	RoundNumber    int         `json:"round_number"`
	OpponentID     string      `json:"opponent_id"`
	OpponentName   string      `json:"opponent_name,omitempty"`
	OwnScore       int         `json:"own_score"`
	OpponentScore  int         `json:"opponent_score"`
	OwnFaction     string      `json:"own_faction"`
	OppFaction     string      `json:"opponent_faction"`
	MatchType      MatchType   `json:"match_type"`
	Result         MatchResult `json:"result"`
	RatingBefore   float64     `json:"rating_before"`
	RatingAfter    float64     `json:"rating_after"`
	RatingDelta    float64     `json:"rating_delta"`
	RankTransition *string     `json:"rank_transition,omitempty"`
}

// PlayerStats — накопленные счётчики игрока за всю историю.
type PlayerStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
	Games  int `json:"games"`
}

// LeaderboardEntry is one ranked row of the assembled leaderboard.
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	State    *string `json:"state,omitempty"`
	Country  *string `json:"country,omitempty"`
	Rating   float64 `json:"rating"`
	Tier     string  `json:"tier"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Draws    int     `json:"draws"`
	Games    int     `json:"games"`
}

type EventFormat string

const (
	EventFormatSingles EventFormat = "singles"
	EventFormatTeams   EventFormat = "teams"
)

// RoundResult — результат одного раунда для игрока одиночного турнира.
// nil в срезе раундов означает «в этом раунде матча не было».
type RoundResult struct {
	OpponentID    string      `json:"opponent_id"`
	OwnScore      int         `json:"own_score"`
	OpponentScore int         `json:"opponent_score"`
	Result        MatchResult `json:"result"`
}

// SinglesPlacement is one final-placement row of a singles event.
type SinglesPlacement struct {
	PlayerID    string         `json:"player_id"`
	Wins        int            `json:"wins"`
	TotalScore  int            `json:"total_score"`
	MainFaction string         `json:"main_faction"`
	Rounds      []*RoundResult `json:"rounds"`
}

// TeamRoundResult — результат одного раунда для команды.
type TeamRoundResult struct {
	OpponentTeamID string `json:"opponent_team_id"`
	OwnPoints      int    `json:"own_points"`
	OpponentPoints int    `json:"opponent_points"`
	Drawn          bool   `json:"drawn"`
	Won            bool   `json:"won"`
	EightPlayer    bool   `json:"eight_player"`
}

// TeamPlacement is one final-placement row of a teams event.
type TeamPlacement struct {
	TeamID      string             `json:"team_id"`
	RoundWins   int                `json:"round_wins"`
	TotalPoints int                `json:"total_points"`
	Rounds      []*TeamRoundResult `json:"rounds"`
}

// EventPlacements is the full placement output for one event instance.
type EventPlacements struct {
	Format  EventFormat        `json:"format"`
	Rounds  int                `json:"rounds"`
	Singles []SinglesPlacement `json:"singles,omitempty"`
	Teams   []TeamPlacement    `json:"teams,omitempty"`
}

// EventSummary describes one tournament instance found in the match
// tables. Events with 1 to 3 rounds are classified as RTTs, larger
// ones as GTs, matching the league's naming convention.
type EventSummary struct {
	Name    string      `json:"name"`
	Date    time.Time   `json:"date"`
	Rounds  int         `json:"rounds"`
	Format  EventFormat `json:"format"`
	Class   string      `json:"class"`
	Matches int         `json:"matches"`
}
