// Package officer implements officer lookups and the availability queries
// used by the officer directory.
package officer

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Repo provides officer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new officer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var officerColumns = []string{
	"o.id", "o.auth_uid", "o.full_name", "o.badge_number", "o.rank",
	"o.unit_id", "u.name", "u.category",
	"o.active_cases", "o.total_cases", "o.availability_status", "o.employment_status",
	"o.last_assignment_at",
}

func selectOfficers() sq.SelectBuilder {
	return postgres.Builder.
		Select(officerColumns...).
		From("officers o").
		Join("units u ON u.id = o.unit_id")
}

// GetByID returns an officer by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Officer, error) {
	return r.getOne(ctx, sq.Expr("o.id = ?", id), id)
}

// GetByAuthUID returns an officer by identity-provider uid.
func (r *Repo) GetByAuthUID(ctx context.Context, authUID string) (*domain.Officer, error) {
	return r.getOne(ctx, sq.Expr("o.auth_uid = ?", authUID), authUID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id any) (*domain.Officer, error) {
	query, args, err := selectOfficers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build officer query: %w", err)
	}

	o, err := scanOfficer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "officer", id)
	}
	return o, nil
}

// ListEligible returns active-employment officers matching filter, least loaded first.
// Empty filter fields do not restrict the result.
func (r *Repo) ListEligible(ctx context.Context, filter domain.OfficerFilter) ([]domain.Officer, error) {
	b := selectOfficers().
		Where(sq.Eq{"o.employment_status": string(domain.EmploymentActive)}).
		OrderBy("o.active_cases ASC", "o.last_assignment_at ASC NULLS FIRST", "o.full_name ASC")

	if filter.UnitID != nil {
		b = b.Where("o.unit_id = ?", *filter.UnitID)
	}

	var scope sq.Or
	if len(filter.UnitIDs) > 0 {
		scope = append(scope, sq.Expr("o.unit_id = ANY(?)", filter.UnitIDs))
	}
	if len(filter.Categories) > 0 {
		cats := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			cats[i] = string(c)
		}
		scope = append(scope, sq.Expr("u.category = ANY(?)", cats))
	}
	if len(scope) > 0 {
		b = b.Where(scope)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build eligible officers query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list eligible officers: %w", err)
	}
	defer rows.Close()

	var out []domain.Officer
	for rows.Next() {
		o, err := scanOfficer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan eligible officer: %w", err)
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list eligible officers: %w", err)
	}
	return out, nil
}

// Available calls the server-side availability function fn with an optional
// unit and crime type. fn may be schema-qualified. Rows returned by the
// function are always active-employment officers.
func (r *Repo) Available(ctx context.Context, fn string, unitID *uuid.UUID, crimeType *string) ([]domain.Officer, error) {
	ident := pgx.Identifier(strings.Split(fn, ".")).Sanitize()
	query := `SELECT officer_id, officer_name, badge_number, rank, unit_id, unit_name,
		active_cases, total_cases, availability_status, last_assignment
		FROM ` + ident + `($1, $2)`

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, unitID, crimeType)
	if err != nil {
		if postgres.IsUndefinedFunction(err) {
			return nil, fmt.Errorf("availability function %s is not installed: %w", fn, err)
		}
		return nil, fmt.Errorf("call %s: %w", fn, err)
	}
	defer rows.Close()

	var out []domain.Officer
	for rows.Next() {
		var (
			o            domain.Officer
			availability string
		)
		if err := rows.Scan(
			&o.ID, &o.Name, &o.BadgeNumber, &o.Rank, &o.UnitID, &o.UnitName,
			&o.ActiveCases, &o.TotalCases, &availability, &o.LastAssignmentAt,
		); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", fn, err)
		}
		o.Availability = domain.AvailabilityStatus(availability)
		o.Employment = domain.EmploymentActive
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("call %s: %w", fn, err)
	}
	return out, nil
}

func scanOfficer(row pgx.Row) (*domain.Officer, error) {
	var (
		o            domain.Officer
		authUID      *string
		category     string
		availability string
		employment   string
		lastAssigned *time.Time
	)
	if err := row.Scan(
		&o.ID, &authUID, &o.Name, &o.BadgeNumber, &o.Rank,
		&o.UnitID, &o.UnitName, &category,
		&o.ActiveCases, &o.TotalCases, &availability, &employment,
		&lastAssigned,
	); err != nil {
		return nil, err
	}
	if authUID != nil {
		o.AuthUID = *authUID
	}
	o.UnitCategory = domain.CrimeCategory(category)
	o.Availability = domain.AvailabilityStatus(availability)
	o.Employment = domain.EmploymentStatus(employment)
	o.LastAssignmentAt = lastAssigned
	return &o, nil
}
