package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/lib/pq" // Import postgres driver
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

var placeholderRe = regexp.MustCompile(`\$\d+`)

// DB is a connection pool together with the SQL dialect it speaks.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// ParseDSN picks the driver from the DSN. postgres:// and postgresql:// go to
// lib/pq, sqlite:// and file: go to modernc.org/sqlite.
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite DSN %q has no path", dsn)
		}
		return DialectSQLite, sqlitePragmas(path), nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, sqlitePragmas(dsn), nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme in %q", dsn)
	}
}

func sqlitePragmas(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func Connect(dsn string, timeout time.Duration) (*DB, error) {
	dialect, driverDSN, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), driverDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	// Configure connection pool
	switch dialect {
	case DialectSQLite:
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY between pool members.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	// Verify the connection with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database within %v: %w (close also failed: %v)", timeout, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

// Migrate creates the tables if they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	schema, err := schemaFS.ReadFile("schema/" + string(db.Dialect) + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for dialect %s: %w", db.Dialect, err)
	}
	for _, stmt := range strings.Split(string(schema), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// Rebind rewrites $1-style placeholders for drivers that only take '?'.
// Queries must use each placeholder once and in ascending order.
func (d Dialect) Rebind(query string) string {
	if d != DialectSQLite {
		return query
	}
	return placeholderRe.ReplaceAllString(query, "?")
}

// SnapshotTxOptions are the options for a transaction that reads players and
// matches as one consistent view.
func (d Dialect) SnapshotTxOptions() *sql.TxOptions {
	if d == DialectSQLite {
		// A deferred SQLite transaction already reads a single snapshot.
		return nil
	}
	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
