package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	username      TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS budget_items (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	category   TEXT NOT NULL,
	amount     DOUBLE PRECISION NOT NULL,
	type       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_budget_items_user ON budget_items(user_id);

CREATE TABLE IF NOT EXISTS savings_goals (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	name           TEXT NOT NULL,
	target_amount  DOUBLE PRECISION NOT NULL,
	current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_savings_goals_user ON savings_goals(user_id);

CREATE TABLE IF NOT EXISTS ratings (
	resource_id TEXT NOT NULL,
	user_id     TEXT NOT NULL,
	stars       INTEGER NOT NULL,
	updated_at  TEXT NOT NULL,
	PRIMARY KEY (resource_id, user_id)
);

CREATE TABLE IF NOT EXISTS challenge_progress (
	user_id     TEXT NOT NULL,
	category_id TEXT NOT NULL,
	attempts    INTEGER NOT NULL DEFAULT 0,
	correct     INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, category_id)
);

CREATE TABLE IF NOT EXISTS challenge_mastered (
	user_id     TEXT NOT NULL,
	category_id TEXT NOT NULL,
	question_id INTEGER NOT NULL,
	PRIMARY KEY (user_id, question_id)
);
`

// Repository provides database operations
type Repository struct {
	db     *sql.DB
	driver string
}

// NewRepository wraps an open database. driver selects the placeholder style.
func NewRepository(db *sql.DB, driver string) *Repository {
	return &Repository{db: db, driver: driver}
}

// Open connects to the database, applies the schema and returns a repository.
func Open(ctx context.Context, driver, dsn string) (*Repository, error) {
	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
				return nil, fmt.Errorf("creating database dir: %w", err)
			}
			if !strings.Contains(dsn, "?") {
				dsn += "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)"
			}
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := NewRepository(db, driver)
	if err := repo.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Migrate creates any missing tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// rebind rewrites ? placeholders to $n for Postgres.
func (r *Repository) rebind(query string) string {
	if r.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.db.ExecContext(ctx, r.rebind(query), args...)
}

func (r *Repository) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, r.rebind(query), args...)
}

func (r *Repository) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.db.QueryRowContext(ctx, r.rebind(query), args...)
}

// requireAffected turns a zero-row update or delete into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
