package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Dosada05/league-standings/live"
	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
)

type SoloMatchInput struct {
	Date           string  `json:"date"`
	EventName      string  `json:"event_name"`
	GameNumber     int     `json:"game_number"`
	Player1ID      string  `json:"player1_id"`
	Player2ID      string  `json:"player2_id"`
	Score1         string  `json:"score1"`
	Score2         string  `json:"score2"`
	Player1Faction *string `json:"player1_faction,omitempty"`
	Player2Faction *string `json:"player2_faction,omitempty"`
}

type TeamMatchInput struct {
	SoloMatchInput
	Team1ID    string `json:"team1_id"`
	Team2ID    string `json:"team2_id"`
	TeamScore1 string `json:"team_score1"`
	TeamScore2 string `json:"team_score2"`
}

type MatchService interface {
	CreateSolo(ctx context.Context, input SoloMatchInput) (*models.SoloMatchRow, error)
	CreateTeam(ctx context.Context, input TeamMatchInput) (*models.TeamMatchRow, error)
}

type matchService struct {
	matchRepo  repositories.MatchRepository
	playerRepo repositories.PlayerRepository
	hub        *live.Hub
	logger     *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	playerRepo repositories.PlayerRepository,
	hub *live.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		hub:        hub,
		logger:     logger,
	}
}

func (s *matchService) validateCommon(ctx context.Context, input SoloMatchInput) (time.Time, error) {
	if input.Player1ID == "" || input.Player2ID == "" {
		return time.Time{}, ErrMatchPlayersRequired
	}
	if input.Player1ID == input.Player2ID {
		return time.Time{}, ErrMatchSamePlayer
	}
	if _, err := strconv.Atoi(input.Score1); err != nil {
		return time.Time{}, ErrMatchScoresInvalid
	}
	if _, err := strconv.Atoi(input.Score2); err != nil {
		return time.Time{}, ErrMatchScoresInvalid
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return time.Time{}, ErrEventDateInvalid
	}

	// Both players must already be on the roster; the fold would skip
	// the match otherwise and the ingest would be silently useless.
	for _, id := range []string{input.Player1ID, input.Player2ID} {
		if _, err := s.playerRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return time.Time{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
			}
			return time.Time{}, fmt.Errorf("failed to check player %s: %w", id, err)
		}
	}
	return date, nil
}

func (s *matchService) CreateSolo(ctx context.Context, input SoloMatchInput) (*models.SoloMatchRow, error) {
	date, err := s.validateCommon(ctx, input)
	if err != nil {
		return nil, err
	}

	row := &models.SoloMatchRow{
		Date:           date,
		EventName:      input.EventName,
		GameNumber:     input.GameNumber,
		Player1ID:      input.Player1ID,
		Player2ID:      input.Player2ID,
		Score1:         input.Score1,
		Score2:         input.Score2,
		Player1Faction: input.Player1Faction,
		Player2Faction: input.Player2Faction,
	}
	if row.EventName == "" {
		row.EventName = "Unknown Event"
	}

	if err := s.matchRepo.CreateSolo(ctx, nil, row); err != nil {
		if errors.Is(err, repositories.ErrMatchDuplicate) {
			return nil, ErrMatchDuplicate
		}
		return nil, err
	}

	s.notifyUpdated(ctx, models.MatchTypeSingles, row.EventName)
	return row, nil
}

func (s *matchService) CreateTeam(ctx context.Context, input TeamMatchInput) (*models.TeamMatchRow, error) {
	date, err := s.validateCommon(ctx, input.SoloMatchInput)
	if err != nil {
		return nil, err
	}
	if input.Team1ID == "" || input.Team2ID == "" {
		return nil, ErrTeamIDsRequired
	}
	if _, err := strconv.Atoi(input.TeamScore1); err != nil {
		return nil, ErrMatchScoresInvalid
	}
	if _, err := strconv.Atoi(input.TeamScore2); err != nil {
		return nil, ErrMatchScoresInvalid
	}

	row := &models.TeamMatchRow{
		Date:           date,
		EventName:      input.EventName,
		GameNumber:     input.GameNumber,
		Player1ID:      input.Player1ID,
		Player2ID:      input.Player2ID,
		Score1:         input.Score1,
		Score2:         input.Score2,
		Player1Faction: input.Player1Faction,
		Player2Faction: input.Player2Faction,
		Team1ID:        input.Team1ID,
		Team2ID:        input.Team2ID,
		TeamScore1:     input.TeamScore1,
		TeamScore2:     input.TeamScore2,
	}
	if row.EventName == "" {
		row.EventName = "Unknown Event"
	}

	if err := s.matchRepo.CreateTeam(ctx, nil, row); err != nil {
		if errors.Is(err, repositories.ErrMatchDuplicate) {
			return nil, ErrMatchDuplicate
		}
		return nil, err
	}

	s.notifyUpdated(ctx, models.MatchTypeTeams, row.EventName)
	return row, nil
}

func (s *matchService) notifyUpdated(ctx context.Context, matchType models.MatchType, eventName string) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(live.Message{
		Type: "LEADERBOARD_UPDATED",
		Payload: map[string]string{
			"match_type": string(matchType),
			"event_name": eventName,
		},
	})
	s.logger.InfoContext(ctx, "broadcast leaderboard update",
		slog.String("match_type", string(matchType)),
		slog.String("event_name", eventName),
	)
}
