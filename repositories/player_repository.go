package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
)

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error)
	List(ctx context.Context, exec SQLExecutor) ([]models.Player, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error)
}

type sqlPlayerRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewPlayerRepository(conn *db.DB) PlayerRepository {
	return &sqlPlayerRepository{db: conn.DB, dialect: conn.Dialect}
}

func (r *sqlPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	query := r.dialect.Rebind(`INSERT INTO players (name, created_at) VALUES ($1, $2) RETURNING id`)
	err := r.getExecutor(exec).QueryRowContext(ctx, query, player.Name, player.CreatedAt).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("failed to insert player %q: %w", player.Name, err)
	}
	return nil
}

func (r *sqlPlayerRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error) {
	query := r.dialect.Rebind(`SELECT id, name, created_at FROM players WHERE id = $1`)

	var p models.Player
	err := r.getExecutor(exec).QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return &p, nil
}

// List returns players in registration order, which is also the standings
// tie-break order.
func (r *sqlPlayerRepository) List(ctx context.Context, exec SQLExecutor) ([]models.Player, error) {
	rows, err := r.getExecutor(exec).QueryContext(ctx, `SELECT id, name, created_at FROM players ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}

func (r *sqlPlayerRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (r *sqlPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) (int64, error) {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM players`)
	if err != nil {
		return 0, mapConstraintError(err, ErrPlayersHaveMatches)
	}
	return rowsAffected(result)
}
