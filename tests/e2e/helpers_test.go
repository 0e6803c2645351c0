//go:build e2e

package e2e_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	complaintrepo "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/complaint"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres/testhelper"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/app"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/config"
)

type env struct {
	app        *app.App
	pool       *pgxpool.Pool
	complaints *complaintrepo.Repo
}

func setup(t *testing.T, mutate ...func(*config.Config)) *env {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	cfg := &config.Config{
		Assignment: config.AssignmentConfig{
			BatchInterval: 5 * time.Millisecond,
			BatchBurst:    1,
			BatchMaxItems: 50,
		},
		Directory: config.DirectoryConfig{AvailabilityFunction: "get_available_officers"},
	}
	for _, m := range mutate {
		m(cfg)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return &env{
		app:        app.Wire(log, cfg, pool),
		pool:       pool,
		complaints: complaintrepo.New(pool),
	}
}

func countNotifications(t *testing.T, e *env, officerID, complaintID any) int {
	t.Helper()
	var n int
	err := e.pool.QueryRow(t.Context(),
		`SELECT count(*) FROM officer_notifications WHERE officer_id = $1 AND complaint_id = $2`,
		officerID, complaintID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	return n
}
