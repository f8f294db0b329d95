package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/standings"
)

// MatchScope selects which result tables feed a leaderboard.
type MatchScope string

const (
	ScopeAll     MatchScope = "all"
	ScopeSingles MatchScope = "singles"
	ScopeTeams   MatchScope = "teams"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, scope MatchScope, filter standings.LeaderboardFilter) ([]models.LeaderboardEntry, error)
	GetPlayerHistory(ctx context.Context, playerID string) ([]models.RatedMatchEntry, error)
}

type leaderboardService struct {
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	logger     *slog.Logger
}

func NewLeaderboardService(
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) LeaderboardService {
	return &leaderboardService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		logger:     logger,
	}
}

// loadScope fetches the roster and the requested match tables in
// parallel.
func (s *leaderboardService) loadScope(ctx context.Context, scope MatchScope) ([]models.Player, []standings.RawRow, error) {
	var (
		players  []*models.Player
		soloRows []*models.SoloMatchRow
		teamRows []*models.TeamMatchRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		players, err = s.playerRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load player roster: %w", err)
		}
		return nil
	})

	if scope == ScopeAll || scope == ScopeSingles {
		g.Go(func() error {
			var err error
			soloRows, err = s.matchRepo.ListSolo(gCtx)
			if err != nil {
				return fmt.Errorf("failed to load singles matches: %w", err)
			}
			return nil
		})
	}

	if scope == ScopeAll || scope == ScopeTeams {
		g.Go(func() error {
			var err error
			teamRows, err = s.matchRepo.ListTeam(gCtx)
			if err != nil {
				return fmt.Errorf("failed to load team matches: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return playersToValues(players), rawRowsFromStored(soloRows, teamRows), nil
}

// recompute replays the requested match history from scratch. This is
// the only way ratings come into existence: there is deliberately no
// "apply one match to a stored rating" path.
func (s *leaderboardService) recompute(ctx context.Context, scope MatchScope) ([]models.Player, *standings.FoldResult, error) {
	players, rawRows, err := s.loadScope(ctx, scope)
	if err != nil {
		return nil, nil, err
	}

	records, invalid := standings.NormalizeRows(rawRows)
	res := standings.Recompute(players, records, standings.DefaultStartingRating)

	if invalid > 0 || res.Dropped > 0 {
		s.logger.InfoContext(ctx, "recompute dropped rows",
			slog.Int("invalid", invalid),
			slog.Int("skipped", res.Dropped),
			slog.String("scope", string(scope)),
		)
	}
	return players, res, nil
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, scope MatchScope, filter standings.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	if scope == "" {
		scope = ScopeAll
	}
	players, res, err := s.recompute(ctx, scope)
	if err != nil {
		return nil, err
	}

	entries := standings.AssembleLeaderboard(players, res)
	return standings.Filter(entries, filter), nil
}

func (s *leaderboardService) GetPlayerHistory(ctx context.Context, playerID string) ([]models.RatedMatchEntry, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
	}

	_, res, err := s.recompute(ctx, ScopeAll)
	if err != nil {
		return nil, err
	}

	history := res.Histories[playerID]
	if history == nil {
		history = []models.RatedMatchEntry{}
	}
	return history, nil
}
