// Package complaint implements complaint lookups.
package complaint

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Repo provides complaint persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new complaint repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a complaint by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	query, args, err := postgres.Builder.
		Select("id", "crime_type", "status", "assigned_officer_id", "assigned_unit_id", "updated_at").
		From("complaints").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build complaint query: %w", err)
	}

	var (
		c      domain.Complaint
		status string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CrimeType, &status, &c.AssignedOfficerID, &c.AssignedUnitID, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "complaint", id)
	}
	c.Status = domain.ComplaintStatus(status)
	return &c, nil
}
