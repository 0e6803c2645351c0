// Command migrate applies the schema migrations embedded in the binary.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/app"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		return 1
	}
	defer m.Close()

	switch command {
	case "up":
		results, err := m.Up(ctx)
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("migrations up to date", slog.Int("applied", len(results)))

	case "down":
		r, err := m.Down(ctx)
		if err != nil {
			logger.Error("migrate down failed", slog.String("error", err.Error()))
			return 1
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))

	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			logger.Error("migrate status failed", slog.String("error", err.Error()))
			return 1
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}

	default:
		logger.Error("unknown command", slog.String("command", command))
		return 1
	}
	return 0
}
