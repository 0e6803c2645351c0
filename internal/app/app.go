// Package app wires configuration, the database pool, repositories and
// services into one runnable unit shared by the commands.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	adminrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/admin"
	assignmentrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/assignment"
	complaintrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/complaint"
	notificationrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/notification"
	officerrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/officer"
	unitrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/unit"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/config"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/service/assignment"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/service/directory"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/service/suggestion"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/taxonomy"
)

// App holds the wired services.
type App struct {
	Directory  *directory.Service
	Suggestion *suggestion.Service
	Assignment *assignment.Service
	Units      *unitrepo.Repo

	pool *pgxpool.Pool
}

// New connects to the database and wires every service on top of the pool.
// Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	a := Wire(log, cfg, pool)
	a.pool = pool

	log.Info("application wired",
		slog.String("version", BuildVersion()),
		slog.Bool("availability_function", !cfg.Directory.DisablePrimary),
		slog.Bool("notifications", !cfg.Assignment.DisableNotifications),
	)
	return a, nil
}

// Wire builds the services on top of db. The caller keeps ownership of db.
func Wire(log *slog.Logger, cfg *config.Config, db postgres.DB) *App {
	mapper := taxonomy.Default()
	txm := postgres.NewTxManager(db)

	officers := officerrepo.New(db)
	units := unitrepo.New(db)

	dir := directory.NewService(log, officers, strategies(log, cfg.Directory, officers, units, mapper)...)

	return &App{
		Directory:  dir,
		Suggestion: suggestion.NewService(log, dir),
		Assignment: assignment.NewService(log,
			dir,
			adminrepo.New(db),
			complaintrepo.New(db),
			assignmentrepo.New(db),
			notificationrepo.New(db),
			txm,
			cfg.Assignment,
		),
		Units: units,
	}
}

// strategies returns the directory lookup chain: the server-side
// availability function unless disabled, then the direct query.
func strategies(
	log *slog.Logger,
	cfg config.DirectoryConfig,
	officers *officerrepo.Repo,
	units *unitrepo.Repo,
	mapper *taxonomy.Mapper,
) []directory.Strategy {
	var out []directory.Strategy
	if !cfg.DisablePrimary {
		out = append(out, directory.NewAvailabilityFunction(log, officers, mapper, cfg.AvailabilityFunction))
	}
	return append(out, directory.NewDirectQuery(log, officers, units, mapper))
}

// Close releases the database pool.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
