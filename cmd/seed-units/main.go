// Command seed-units syncs the units table with the crime taxonomy compiled
// into the binary. Each unit is stored with its category and the display
// names of the crime types it handles, stamped with the taxonomy version.
//
// Availability lookups match a complaint's crime type against the stored
// unit's crime types only, so a unit missing a display name hides its
// officers for that crime type. --check reports such drift.
//
// Flags:
//
//	--dry-run  log the units without writing them
//	--check    compare stored units with the taxonomy without writing
//
// Exit codes: 0 = success (or no drift), 1 = error (or drift found).
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	unitrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/unit"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/app"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/config"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/taxonomy"
)

func main() {
	os.Exit(run())
}

func run() int {
	dryRun := flag.Bool("dry-run", false, "log the units without writing them")
	check := flag.Bool("check", false, "compare stored units with the taxonomy without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	m := taxonomy.Default()
	units := m.Units()
	logger.Info("taxonomy loaded",
		slog.String("taxonomy_version", taxonomy.Version),
		slog.Int("crime_types", m.Len()),
		slog.Int("units", len(units)),
	)
	for _, u := range units {
		logger.Info("unit",
			slog.String("name", u.Name),
			slog.String("category", u.Category.String()),
			slog.Int("crime_types", len(u.CrimeTypes)),
		)
	}
	if *dryRun {
		logger.Info("dry run, nothing written")
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	repo := unitrepo.New(pool)

	if *check {
		stored, err := repo.List(ctx)
		if err != nil {
			logger.Error("list units failed", slog.String("error", err.Error()))
			return 1
		}
		drift := m.Drift(stored)
		for _, d := range drift {
			logger.Warn("unit drift",
				slog.String("category", d.Category.String()),
				slog.String("unit", d.Unit),
				slog.Bool("missing", d.Missing),
				slog.String("stored_name", d.StoredName),
				slog.String("uncovered", strings.Join(d.Uncovered, ", ")),
			)
		}
		if len(drift) > 0 {
			logger.Error("stored units disagree with the taxonomy, run seed-units", slog.Int("categories", len(drift)))
			return 1
		}
		logger.Info("stored units match the taxonomy", slog.Int("units", len(stored)))
		return 0
	}

	txm := postgres.NewTxManager(pool)

	var affected int64
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		affected, err = repo.Upsert(ctx, units, taxonomy.Version)
		return err
	})
	if err != nil {
		logger.Error("sync units failed", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("units synced",
		slog.Int64("rows", affected),
		slog.String("taxonomy_version", taxonomy.Version),
	)
	return 0
}
