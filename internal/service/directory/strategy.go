package directory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/taxonomy"
)

// AvailabilityFunction reads officers through the server-side availability
// function, which joins officers, units and workload in one call.
type AvailabilityFunction struct {
	officers officerRepo
	mapper   *taxonomy.Mapper
	function string
	log      *slog.Logger
}

// NewAvailabilityFunction creates the strategy calling function.
func NewAvailabilityFunction(log *slog.Logger, officers officerRepo, mapper *taxonomy.Mapper, function string) *AvailabilityFunction {
	return &AvailabilityFunction{
		officers: officers,
		mapper:   mapper,
		function: function,
		log:      log.With("strategy", "availability_function"),
	}
}

func (a *AvailabilityFunction) Name() string { return "availability_function" }

// Find forwards the crime type as its canonical display name. An unmapped
// crime type is forwarded as given.
func (a *AvailabilityFunction) Find(ctx context.Context, q domain.OfficerQuery) ([]domain.Officer, error) {
	var crimeType *string
	if raw := strings.TrimSpace(q.CrimeType); raw != "" {
		display, ok := a.mapper.Normalize(raw)
		if !ok {
			a.log.WarnContext(ctx, "crime type not in taxonomy, forwarding unmapped",
				slog.String("crime_type", raw),
			)
			display = raw
		}
		crimeType = &display
	}

	officers, err := a.officers.Available(ctx, a.function, q.UnitID, crimeType)
	if err != nil {
		return nil, err
	}
	if officers == nil {
		officers = []domain.Officer{}
	}
	return officers, nil
}

// DirectQuery reads officers with a query against the officer and unit
// tables, resolving the crime type into a store filter first.
type DirectQuery struct {
	officers officerRepo
	units    unitRepo
	mapper   *taxonomy.Mapper
	log      *slog.Logger
}

// NewDirectQuery creates the direct-query strategy.
func NewDirectQuery(log *slog.Logger, officers officerRepo, units unitRepo, mapper *taxonomy.Mapper) *DirectQuery {
	return &DirectQuery{
		officers: officers,
		units:    units,
		mapper:   mapper,
		log:      log.With("strategy", "direct_query"),
	}
}

func (d *DirectQuery) Name() string { return "direct_query" }

// Find resolves the crime type in order: its taxonomy category, then the
// units listing it, then the categories of every fuzzy taxonomy match.
// A crime type that resolves to nothing matches no officer.
func (d *DirectQuery) Find(ctx context.Context, q domain.OfficerQuery) ([]domain.Officer, error) {
	filter, ok := d.resolve(ctx, q)
	if !ok {
		d.log.InfoContext(ctx, "crime type matched no unit or category",
			slog.String("crime_type", q.CrimeType),
		)
		return []domain.Officer{}, nil
	}

	officers, err := d.officers.ListEligible(ctx, filter)
	if err != nil {
		return nil, err
	}
	if officers == nil {
		officers = []domain.Officer{}
	}
	return officers, nil
}

func (d *DirectQuery) resolve(ctx context.Context, q domain.OfficerQuery) (domain.OfficerFilter, bool) {
	filter := domain.OfficerFilter{UnitID: q.UnitID}

	raw := strings.TrimSpace(q.CrimeType)
	if raw == "" {
		return filter, true
	}

	if category, ok := d.mapper.Category(raw); ok {
		filter.Categories = []domain.CrimeCategory{category}
		return filter, true
	}

	ids, err := d.units.IDsByCrimeType(ctx, raw)
	if err != nil {
		d.log.WarnContext(ctx, "unit lookup by crime type failed",
			slog.String("crime_type", raw),
			slog.String("error", err.Error()),
		)
	}
	if len(ids) > 0 {
		filter.UnitIDs = ids
		return filter, true
	}

	seen := make(map[domain.CrimeCategory]bool)
	for _, m := range d.mapper.FindCandidates(raw) {
		if !seen[m.Category] {
			seen[m.Category] = true
			filter.Categories = append(filter.Categories, m.Category)
		}
	}
	return filter, len(filter.Categories) > 0
}
