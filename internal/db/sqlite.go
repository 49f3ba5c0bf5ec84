// Package db provides SQLite and in-memory storage for aims.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/todayaim/internal/aim"
)

// SQLite implements aim.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
// The parent directory of path is created if missing.
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	if err := RunMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &SQLite{db: db}, nil
}

// CreateAim adds a new aim and sets its ID.
func (s *SQLite) CreateAim(ctx context.Context, a *aim.Aim) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO aims (description, offset_from_today, is_accomplished, is_favorited, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		a.Description,
		a.OffsetFromToday,
		a.Accomplished,
		a.Favorited,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting aim: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	a.ID = id

	return nil
}

// GetAim retrieves an aim by ID.
func (s *SQLite) GetAim(ctx context.Context, id int64) (*aim.Aim, error) {
	query := `
		SELECT id, description, offset_from_today, is_accomplished, is_favorited, created_at
		FROM aims
		WHERE id = ?
	`

	a, err := scanAim(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying aim: %w", err)
	}
	return &a, nil
}

// ListAims returns every aim in creation order.
func (s *SQLite) ListAims(ctx context.Context) ([]aim.Aim, error) {
	query := `
		SELECT id, description, offset_from_today, is_accomplished, is_favorited, created_at
		FROM aims
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying aims: %w", err)
	}
	defer func() { _ = rows.Close() }()

	aims := []aim.Aim{}
	for rows.Next() {
		a, err := scanAim(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning aim: %w", err)
		}
		aims = append(aims, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aims: %w", err)
	}

	return aims, nil
}

// Apply executes a mutation command.
func (s *SQLite) Apply(ctx context.Context, cmd aim.Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		query string
		args  []any
	)
	switch cmd.Op {
	case aim.OpDelete:
		query = `DELETE FROM aims WHERE id = ?`
		args = []any{cmd.ID}
	case aim.OpSetFavorited:
		query = `UPDATE aims SET is_favorited = ? WHERE id = ?`
		args = []any{cmd.Value, cmd.ID}
	case aim.OpSetAccomplished:
		if cmd.Value {
			query = `UPDATE aims SET is_accomplished = 1 WHERE id = ?`
		} else {
			query = `UPDATE aims SET is_accomplished = 0, is_favorited = 0 WHERE id = ?`
		}
		args = []any{cmd.ID}
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("applying %s: %w", cmd, err)
	}

	return checkAffected(result, cmd)
}

// checkAffected maps a result that touched no row to ErrAimNotFound.
func checkAffected(result sql.Result, cmd aim.Command) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("applying %s: %w", cmd, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %d", aim.ErrAimNotFound, cmd.ID)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAim(row rowScanner) (aim.Aim, error) {
	var (
		a         aim.Aim
		createdAt sql.NullString
	)

	err := row.Scan(
		&a.ID,
		&a.Description,
		&a.OffsetFromToday,
		&a.Accomplished,
		&a.Favorited,
		&createdAt,
	)
	if err != nil {
		return aim.Aim{}, err
	}

	if createdAt.Valid {
		a.CreatedAt, err = parseTimestamp(createdAt.String)
		if err != nil {
			return aim.Aim{}, fmt.Errorf("parsing created at: %w", err)
		}
	}

	return a, nil
}

// parseTimestamp parses the formats SQLite may hand back for a DATETIME.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
