// Package notification writes officer notifications to the outbox table read
// by the push delivery service.
package notification

import (
	"context"
	"fmt"

	postgres "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts n and fills its ID and CreatedAt.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	query, args, err := postgres.Builder.
		Insert("officer_notifications").
		Columns("officer_id", "complaint_id", "kind", "title", "body").
		Values(n.OfficerID, n.ComplaintID, string(n.Kind), n.Title, n.Body).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build notification insert: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "notification for officer", n.OfficerID)
	}
	return nil
}
