// Package admin implements administrator lookups.
package admin

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Repo provides admin persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new admin repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an admin by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	return r.getOne(ctx, sq.Expr("id = ?", id), id)
}

// GetByAuthUID returns an admin by identity-provider uid.
func (r *Repo) GetByAuthUID(ctx context.Context, authUID string) (*domain.Admin, error) {
	return r.getOne(ctx, sq.Expr("auth_uid = ?", authUID), authUID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id any) (*domain.Admin, error) {
	query, args, err := postgres.Builder.
		Select("id", "auth_uid", "full_name").
		From("admins").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build admin query: %w", err)
	}

	var (
		a       domain.Admin
		authUID *string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&a.ID, &authUID, &a.Name)
	if err != nil {
		return nil, postgres.MapError(err, "admin", id)
	}
	if authUID != nil {
		a.AuthUID = *authUID
	}
	return &a, nil
}
