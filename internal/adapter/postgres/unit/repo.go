// Package unit implements unit persistence and the crime-type index over units.
package unit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Repo provides unit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new unit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// IDsByCrimeType returns the ids of units whose crime_types list any of the
// given values, compared case-insensitively.
func (r *Repo) IDsByCrimeType(ctx context.Context, crimeTypes ...string) ([]uuid.UUID, error) {
	if len(crimeTypes) == 0 {
		return nil, nil
	}
	values := make([]string, len(crimeTypes))
	for i, ct := range crimeTypes {
		values[i] = domain.NormalizeText(ct)
	}

	query, args, err := postgres.Builder.
		Select("id").
		From("units").
		Where("EXISTS (SELECT 1 FROM unnest(crime_types) AS ct WHERE lower(ct) = ANY(?))", values).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build unit query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("units by crime type: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unit id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("units by crime type: %w", err)
	}
	return ids, nil
}

// List returns every unit ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Unit, error) {
	query, args, err := postgres.Builder.
		Select("id", "name", "category", "crime_types").
		From("units").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build unit query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var out []domain.Unit
	for rows.Next() {
		var (
			u        domain.Unit
			category string
		)
		if err := rows.Scan(&u.ID, &u.Name, &category, &u.CrimeTypes); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		u.Category = domain.CrimeCategory(category)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return out, nil
}

// Upsert inserts units by name, or replaces the category and crime types of
// existing ones, stamping each row with version. It returns the affected row count.
func (r *Repo) Upsert(ctx context.Context, units []domain.Unit, version string) (int64, error) {
	if len(units) == 0 {
		return 0, nil
	}

	b := postgres.Builder.
		Insert("units").
		Columns("name", "category", "crime_types", "taxonomy_version")
	for _, u := range units {
		b = b.Values(u.Name, string(u.Category), u.CrimeTypes, version)
	}
	b = b.Suffix(`ON CONFLICT (name) DO UPDATE SET
		category = EXCLUDED.category,
		crime_types = EXCLUDED.crime_types,
		taxonomy_version = EXCLUDED.taxonomy_version,
		updated_at = now()`)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build unit upsert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "units", version)
	}
	return tag.RowsAffected(), nil
}
