package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrMatchPlayerInvalid = errors.New("match references a player that does not exist")
	ErrMatchSelf          = errors.New("match winner and loser must be different players")
	ErrPlayersHaveMatches = errors.New("players still have recorded matches")
)

const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return n, nil
}

// mapConstraintError turns driver constraint violations into sentinel errors.
// What a foreign key violation means depends on the statement, so the caller
// passes it in.
func mapConstraintError(err error, foreignKeyErr error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("%w (constraint %s)", foreignKeyErr, pqErr.Constraint)
		case pqCheckViolation:
			return ErrMatchSelf
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		msg := liteErr.Error()
		switch {
		case liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return foreignKeyErr
		case liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_CHECK, strings.Contains(msg, "CHECK constraint failed"):
			return ErrMatchSelf
		}
	}
	return err
}
