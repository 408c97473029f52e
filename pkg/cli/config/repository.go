package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/repository"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository selects where pulls are stored: Firestore when a project is set, otherwise a
// SQLite file, otherwise memory
type Repository struct {
	DBPath     string
	ProjectID  string
	DatabaseID string
}

// DefaultDBPath returns the SQLite file under the user config directory
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "frtally.db"
	}
	return filepath.Join(dir, "frtally", "frtally.db")
}

// Flags returns CLI flags for Repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db",
			Usage:       "SQLite file storing pull history; empty keeps history in memory",
			Category:    "Storage",
			Value:       DefaultDBPath(),
			Sources:     cli.EnvVars("FRTALLY_DB"),
			Destination: &r.DBPath,
		},
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Storage",
			Sources:     cli.EnvVars("FRTALLY_FIRESTORE_PROJECT"),
			Destination: &r.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Value:       "(default)",
			Sources:     cli.EnvVars("FRTALLY_FIRESTORE_DATABASE"),
			Destination: &r.DatabaseID,
		},
	}
}

// Configure creates and returns the repository
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if r.ProjectID != "" {
		repo, err := repository.NewFirestore(ctx, r.ProjectID, r.DatabaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore",
				goerr.V("project", r.ProjectID),
				goerr.V("database", r.DatabaseID),
			)
		}
		return repo, nil
	}

	if r.DBPath != "" {
		repo, err := repository.NewSQLite(ctx, r.DBPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init sqlite", goerr.V("path", r.DBPath))
		}
		return repo, nil
	}

	logger.Warn("Using memory database. Pull history will be removed when the process exits")
	return repository.NewMemory(), nil
}

// LogValue returns structured log value
func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("db", r.DBPath),
		slog.String("firestore_project", r.ProjectID),
		slog.String("firestore_database", r.DatabaseID),
	)
}
