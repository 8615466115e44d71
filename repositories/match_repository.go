package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
)

// MatchRepository is append-only: results can be added or purged as a whole,
// never edited.
type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.MatchResult) error
	List(ctx context.Context, exec SQLExecutor) ([]models.MatchResult, error)
	CountByPlayer(ctx context.Context, exec SQLExecutor, playerID int) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error)
}

type sqlMatchRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewMatchRepository(conn *db.DB) MatchRepository {
	return &sqlMatchRepository{db: conn.DB, dialect: conn.Dialect}
}

func (r *sqlMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.MatchResult) error {
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}
	query := r.dialect.Rebind(`
		INSERT INTO matches (winner_id, loser_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`)

	err := r.getExecutor(exec).QueryRowContext(ctx, query, match.WinnerID, match.LoserID, match.CreatedAt).Scan(&match.ID)
	if err != nil {
		return mapConstraintError(err, ErrMatchPlayerInvalid)
	}
	return nil
}

func (r *sqlMatchRepository) List(ctx context.Context, exec SQLExecutor) ([]models.MatchResult, error) {
	rows, err := r.getExecutor(exec).QueryContext(ctx, `
		SELECT id, winner_id, loser_id, created_at
		FROM matches
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.MatchResult, 0)
	for rows.Next() {
		var m models.MatchResult
		if scanErr := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &m.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *sqlMatchRepository) CountByPlayer(ctx context.Context, exec SQLExecutor, playerID int) (int, error) {
	query := r.dialect.Rebind(`SELECT COUNT(*) FROM matches WHERE winner_id = $1 OR loser_id = $2`)

	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, query, playerID, playerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches for player %d: %w", playerID, err)
	}
	return count, nil
}

func (r *sqlMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error) {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM matches`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches: %w", err)
	}
	return rowsAffected(result)
}
