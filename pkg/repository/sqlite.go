package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite implements Repository interface with a local SQLite database. Each pull is stored as a
// JSON document next to the columns used for ordering.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and applies pending migrations
func NewSQLite(ctx context.Context, path string) (interfaces.Repository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("dir", dir))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	// a single connection avoids SQLITE_BUSY between writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping sqlite database", goerr.V("path", path))
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to migrate sqlite database", goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("SQLite repository initialized", "path", path)

	return &SQLite{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return goerr.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to read migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return goerr.Wrap(err, "failed to create migrate instance")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerr.Wrap(err, "failed to apply migrations")
	}
	return nil
}

// PutPull saves a pull, replacing any pull with the same ID
func (s *SQLite) PutPull(ctx context.Context, pull *model.Pull) error {
	if pull == nil {
		return goerr.New("pull is nil")
	}
	if pull.ID == "" {
		return goerr.New("pull ID is empty")
	}

	body, err := json.Marshal(pull)
	if err != nil {
		return goerr.Wrap(err, "failed to encode pull", goerr.V("id", pull.ID))
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO pulls (id, created_at, term, record_count, body) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   created_at = excluded.created_at,
		   term = excluded.term,
		   record_count = excluded.record_count,
		   body = excluded.body`,
		pull.ID.String(), pull.CreatedAt.UnixNano(), pull.Query.Term, pull.RecordCount, string(body))
	if err != nil {
		return goerr.Wrap(err, "failed to save pull to sqlite", goerr.V("id", pull.ID))
	}
	return nil
}

// GetPull retrieves a pull by ID
func (s *SQLite) GetPull(ctx context.Context, id types.PullID) (*model.Pull, error) {
	if id == "" {
		return nil, goerr.New("pull ID is empty")
	}

	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM pulls WHERE id = ?`, id.String()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(model.ErrPullNotFound, "failed to get pull", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull from sqlite", goerr.V("id", id))
	}

	return decodePull(body, id.String())
}

// ListPulls returns pulls newest first. A limit of zero or less returns every pull.
func (s *SQLite) ListPulls(ctx context.Context, limit int) ([]*model.Pull, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM pulls ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pulls from sqlite")
	}
	defer func() { _ = rows.Close() }()

	var pulls []*model.Pull
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, goerr.Wrap(err, "failed to scan pull row")
		}
		pull, err := decodePull(body, id)
		if err != nil {
			return nil, err
		}
		pulls = append(pulls, pull)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate pulls")
	}

	return pulls, nil
}

func decodePull(body, id string) (*model.Pull, error) {
	var pull model.Pull
	if err := json.Unmarshal([]byte(body), &pull); err != nil {
		return nil, goerr.Wrap(err, "failed to decode pull", goerr.V("id", id))
	}
	return &pull, nil
}

// Close closes the database
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ interfaces.Repository = (*SQLite)(nil) // Compile-time interface check
