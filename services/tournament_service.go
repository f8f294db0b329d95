package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-standings/live"
	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/standings"
)

type TournamentService interface {
	ListEvents(ctx context.Context) ([]models.EventSummary, error)
	GetEventPlacements(ctx context.Context, eventName string, date time.Time) (*models.EventPlacements, error)
	DeleteEvent(ctx context.Context, eventName string, date time.Time) error
}

type tournamentService struct {
	matchRepo repositories.MatchRepository
	hub       *live.Hub
	logger    *slog.Logger
}

func NewTournamentService(matchRepo repositories.MatchRepository, hub *live.Hub, logger *slog.Logger) TournamentService {
	return &tournamentService{
		matchRepo: matchRepo,
		hub:       hub,
		logger:    logger,
	}
}

func (s *tournamentService) loadAllRecords(ctx context.Context) ([]models.MatchRecord, error) {
	var (
		soloRows []*models.SoloMatchRow
		teamRows []*models.TeamMatchRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		soloRows, err = s.matchRepo.ListSolo(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		teamRows, err = s.matchRepo.ListTeam(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load match tables: %w", err)
	}

	records, _ := standings.NormalizeRows(rawRowsFromStored(soloRows, teamRows))
	return records, nil
}

// ListEvents derives the distinct tournament instances present in the
// match tables, newest first.
func (s *tournamentService) ListEvents(ctx context.Context) ([]models.EventSummary, error) {
	records, err := s.loadAllRecords(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.MatchRecord)
	order := make([]string, 0)
	for _, rec := range records {
		key := eventKey(rec.EventName, rec.Date.Format("2006-01-02"))
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], rec)
	}

	summaries := make([]models.EventSummary, 0, len(order))
	for _, key := range order {
		matches := grouped[key]
		rounds := 0
		for _, m := range matches {
			if m.RoundNumber > rounds {
				rounds = m.RoundNumber
			}
		}
		summaries = append(summaries, models.EventSummary{
			Name:    matches[0].EventName,
			Date:    matches[0].Date,
			Rounds:  rounds,
			Format:  standings.ClassifyEvent(matches),
			Class:   standings.ClassifyEventSize(rounds),
			Matches: len(matches),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].Date.Equal(summaries[j].Date) {
			return summaries[i].Date.After(summaries[j].Date)
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

func (s *tournamentService) loadEventRows(ctx context.Context, eventName string, date time.Time) ([]*models.SoloMatchRow, []*models.TeamMatchRow, error) {
	var (
		soloRows []*models.SoloMatchRow
		teamRows []*models.TeamMatchRow
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		soloRows, err = s.matchRepo.ListSoloByEvent(gCtx, eventName, date)
		return err
	})
	g.Go(func() error {
		var err error
		teamRows, err = s.matchRepo.ListTeamByEvent(gCtx, eventName, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load matches for event %s: %w", eventName, err)
	}
	return soloRows, teamRows, nil
}

// GetEventPlacements computes final placements for one event instance.
func (s *tournamentService) GetEventPlacements(ctx context.Context, eventName string, date time.Time) (*models.EventPlacements, error) {
	if eventName == "" {
		return nil, ErrEventNameRequired
	}

	soloRows, teamRows, err := s.loadEventRows(ctx, eventName, date)
	if err != nil {
		return nil, err
	}

	records, _ := standings.NormalizeRows(rawRowsFromStored(soloRows, teamRows))
	if len(records) == 0 {
		return nil, ErrEventNotFound
	}
	return standings.PlaceEvent(records), nil
}

// DeleteEvent removes every stored result row for one event instance.
// The next recompute simply never sees the event, so ratings correct
// themselves without any compensating writes.
func (s *tournamentService) DeleteEvent(ctx context.Context, eventName string, date time.Time) error {
	if eventName == "" {
		return ErrEventNameRequired
	}

	soloRows, teamRows, err := s.loadEventRows(ctx, eventName, date)
	if err != nil {
		return err
	}
	if len(soloRows) == 0 && len(teamRows) == 0 {
		return ErrEventNotFound
	}

	if err := s.matchRepo.DeleteByEvent(ctx, nil, eventName, date); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast(live.Message{
			Type: "LEADERBOARD_UPDATED",
			Payload: map[string]string{
				"event_name": eventName,
			},
		})
	}
	s.logger.InfoContext(ctx, "event deleted",
		slog.String("event_name", eventName),
		slog.String("date", date.Format("2006-01-02")),
	)
	return nil
}
