package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Dosada05/league-standings/models"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchDuplicate = errors.New("match already recorded")
)

// MatchRepository stores raw result rows for both schemas. Ratings are
// never written here: the engine recomputes them from these rows.
type MatchRepository interface {
	CreateSolo(ctx context.Context, exec SQLExecutor, row *models.SoloMatchRow) error
	CreateTeam(ctx context.Context, exec SQLExecutor, row *models.TeamMatchRow) error
	ListSolo(ctx context.Context) ([]*models.SoloMatchRow, error)
	ListTeam(ctx context.Context) ([]*models.TeamMatchRow, error)
	ListSoloByEvent(ctx context.Context, eventName string, date time.Time) ([]*models.SoloMatchRow, error)
	ListTeamByEvent(ctx context.Context, eventName string, date time.Time) ([]*models.TeamMatchRow, error)
	DeleteByEvent(ctx context.Context, exec SQLExecutor, eventName string, date time.Time) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) CreateSolo(ctx context.Context, exec SQLExecutor, row *models.SoloMatchRow) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO solo_matches
			(date, event_name, game_number, player1_id, player2_id, score1, score2, player1_faction, player2_faction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		row.Date, row.EventName, row.GameNumber,
		row.Player1ID, row.Player2ID, row.Score1, row.Score2,
		row.Player1Faction, row.Player2Faction,
	).Scan(&row.ID, &row.CreatedAt)

	return r.handleMatchError(err, "solo")
}

func (r *postgresMatchRepository) CreateTeam(ctx context.Context, exec SQLExecutor, row *models.TeamMatchRow) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO team_matches
			(date, event_name, game_number, player1_id, player2_id, score1, score2,
			 player1_faction, player2_faction, team1_id, team2_id, team_score1, team_score2)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		row.Date, row.EventName, row.GameNumber,
		row.Player1ID, row.Player2ID, row.Score1, row.Score2,
		row.Player1Faction, row.Player2Faction,
		row.Team1ID, row.Team2ID, row.TeamScore1, row.TeamScore2,
	).Scan(&row.ID, &row.CreatedAt)

	return r.handleMatchError(err, "team")
}

func (r *postgresMatchRepository) handleMatchError(err error, kind string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return ErrMatchDuplicate
	}
	return fmt.Errorf("failed to insert %s match: %w", kind, err)
}

const soloColumns = `id, date, event_name, game_number, player1_id, player2_id,
	score1, score2, player1_faction, player2_faction, created_at`

func (r *postgresMatchRepository) scanSolo(rows *sql.Rows) (*models.SoloMatchRow, error) {
	row := &models.SoloMatchRow{}
	err := rows.Scan(
		&row.ID, &row.Date, &row.EventName, &row.GameNumber,
		&row.Player1ID, &row.Player2ID, &row.Score1, &row.Score2,
		&row.Player1Faction, &row.Player2Faction, &row.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan solo match row: %w", err)
	}
	return row, nil
}

const teamColumns = `id, date, event_name, game_number, player1_id, player2_id,
	score1, score2, player1_faction, player2_faction,
	team1_id, team2_id, team_score1, team_score2, created_at`

func (r *postgresMatchRepository) scanTeam(rows *sql.Rows) (*models.TeamMatchRow, error) {
	row := &models.TeamMatchRow{}
	err := rows.Scan(
		&row.ID, &row.Date, &row.EventName, &row.GameNumber,
		&row.Player1ID, &row.Player2ID, &row.Score1, &row.Score2,
		&row.Player1Faction, &row.Player2Faction,
		&row.Team1ID, &row.Team2ID, &row.TeamScore1, &row.TeamScore2,
		&row.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan team match row: %w", err)
	}
	return row, nil
}

func (r *postgresMatchRepository) ListSolo(ctx context.Context) ([]*models.SoloMatchRow, error) {
	query := `SELECT ` + soloColumns + ` FROM solo_matches ORDER BY date, game_number, id`
	return r.listSolo(ctx, query)
}

func (r *postgresMatchRepository) ListSoloByEvent(ctx context.Context, eventName string, date time.Time) ([]*models.SoloMatchRow, error) {
	query := `SELECT ` + soloColumns + ` FROM solo_matches
		WHERE event_name = $1 AND date = $2
		ORDER BY game_number, id`
	return r.listSolo(ctx, query, eventName, date)
}

func (r *postgresMatchRepository) listSolo(ctx context.Context, query string, args ...interface{}) ([]*models.SoloMatchRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solo matches: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SoloMatchRow, 0)
	for rows.Next() {
		row, err := r.scanSolo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solo match rows: %w", err)
	}
	return result, nil
}

func (r *postgresMatchRepository) ListTeam(ctx context.Context) ([]*models.TeamMatchRow, error) {
	query := `SELECT ` + teamColumns + ` FROM team_matches ORDER BY date, game_number, id`
	return r.listTeam(ctx, query)
}

func (r *postgresMatchRepository) ListTeamByEvent(ctx context.Context, eventName string, date time.Time) ([]*models.TeamMatchRow, error) {
	query := `SELECT ` + teamColumns + ` FROM team_matches
		WHERE event_name = $1 AND date = $2
		ORDER BY game_number, id`
	return r.listTeam(ctx, query, eventName, date)
}

func (r *postgresMatchRepository) listTeam(ctx context.Context, query string, args ...interface{}) ([]*models.TeamMatchRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team matches: %w", err)
	}
	defer rows.Close()

	result := make([]*models.TeamMatchRow, 0)
	for rows.Next() {
		row, err := r.scanTeam(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team match rows: %w", err)
	}
	return result, nil
}

func (r *postgresMatchRepository) DeleteByEvent(ctx context.Context, exec SQLExecutor, eventName string, date time.Time) error {
	executor := r.getExecutor(exec)
	if _, err := executor.ExecContext(ctx,
		`DELETE FROM solo_matches WHERE event_name = $1 AND date = $2`, eventName, date); err != nil {
		return fmt.Errorf("failed to delete solo matches for event %s: %w", eventName, err)
	}
	if _, err := executor.ExecContext(ctx,
		`DELETE FROM team_matches WHERE event_name = $1 AND date = $2`, eventName, date); err != nil {
		return fmt.Errorf("failed to delete team matches for event %s: %w", eventName, err)
	}
	return nil
}
