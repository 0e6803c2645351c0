package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/taxonomy"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUnit creates a unit for category listing the category's display names
// from the default taxonomy. Unit names are suffixed so tests sharing one
// database never collide; the category column is unique, so an existing
// row for the category is reused.
func SeedUnit(t *testing.T, pool *pgxpool.Pool, category domain.CrimeCategory) domain.Unit {
	t.Helper()
	ctx := context.Background()

	name, _ := taxonomy.Default().UnitForCategory(category)
	u := domain.Unit{
		Name:       name + " " + uniqueSuffix(),
		Category:   category,
		CrimeTypes: taxonomy.Default().DisplayNamesByCategory(category),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO units (name, category, crime_types)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (category) DO UPDATE SET crime_types = EXCLUDED.crime_types
		 RETURNING id, name`,
		u.Name, string(u.Category), u.CrimeTypes,
	).Scan(&u.ID, &u.Name)
	if err != nil {
		t.Fatalf("testhelper: SeedUnit: %v", err)
	}
	return u
}

// OfficerOption customizes a seeded officer.
type OfficerOption func(o *domain.Officer)

// WithActiveCases sets the starting active case count.
func WithActiveCases(n int) OfficerOption {
	return func(o *domain.Officer) { o.ActiveCases = n }
}

// WithEmployment sets the employment status.
func WithEmployment(s domain.EmploymentStatus) OfficerOption {
	return func(o *domain.Officer) { o.Employment = s }
}

// SeedOfficer creates an available, active officer in unit.
func SeedOfficer(t *testing.T, pool *pgxpool.Pool, unit domain.Unit, opts ...OfficerOption) domain.Officer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	o := domain.Officer{
		AuthUID:      "officer-" + suffix,
		Name:         "Officer " + suffix,
		BadgeNumber:  "B-" + suffix,
		Rank:         "Police Officer I",
		UnitID:       unit.ID,
		UnitName:     unit.Name,
		UnitCategory: unit.Category,
		Availability: domain.AvailabilityAvailable,
		Employment:   domain.EmploymentActive,
	}
	for _, opt := range opts {
		opt(&o)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO officers (auth_uid, full_name, badge_number, rank, unit_id, active_cases,
		                       availability_status, employment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		o.AuthUID, o.Name, o.BadgeNumber, o.Rank, o.UnitID, o.ActiveCases,
		string(o.Availability), string(o.Employment),
	).Scan(&o.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedOfficer: %v", err)
	}
	return o
}

// SeedAdmin creates an admin.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Admin {
	t.Helper()

	suffix := uniqueSuffix()
	a := domain.Admin{AuthUID: "admin-" + suffix, Name: "Admin " + suffix}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO admins (auth_uid, full_name) VALUES ($1, $2) RETURNING id`,
		a.AuthUID, a.Name,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}
	return a
}

// SeedComplaint creates an unassigned complaint of crimeType.
func SeedComplaint(t *testing.T, pool *pgxpool.Pool, crimeType string) domain.Complaint {
	t.Helper()

	c := domain.Complaint{CrimeType: crimeType, Status: domain.ComplaintToBeAssigned}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO complaints (crime_type) VALUES ($1) RETURNING id, updated_at`,
		crimeType,
	).Scan(&c.ID, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComplaint: %v", err)
	}
	return c
}
