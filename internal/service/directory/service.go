// Package directory answers "which officers can take this case" by trying an
// ordered list of lookup strategies against the officer store.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

type officerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Officer, error)
	GetByAuthUID(ctx context.Context, authUID string) (*domain.Officer, error)
	Available(ctx context.Context, fn string, unitID *uuid.UUID, crimeType *string) ([]domain.Officer, error)
	ListEligible(ctx context.Context, filter domain.OfficerFilter) ([]domain.Officer, error)
}

type unitRepo interface {
	IDsByCrimeType(ctx context.Context, crimeTypes ...string) ([]uuid.UUID, error)
}

// Strategy is one way of reading eligible officers. A strategy reports an
// empty result as an empty slice and a nil error; only errors make the
// service move on to the next strategy.
type Strategy interface {
	Name() string
	Find(ctx context.Context, q domain.OfficerQuery) ([]domain.Officer, error)
}

// Service provides officer directory lookups.
type Service struct {
	officers   officerRepo
	strategies []Strategy
	log        *slog.Logger
}

// NewService creates a new directory service that tries strategies in order.
func NewService(log *slog.Logger, officers officerRepo, strategies ...Strategy) *Service {
	return &Service{
		officers:   officers,
		strategies: strategies,
		log:        log.With("service", "directory"),
	}
}

// FindEligibleOfficers returns the active officers matching q, each annotated
// with its workload level. "No officers" is an empty slice. The error is
// domain.ErrDirectoryUnavailable, joined with every strategy failure, only
// when all strategies failed.
func (s *Service) FindEligibleOfficers(ctx context.Context, q domain.OfficerQuery) ([]domain.OfficerCandidate, error) {
	var failures []error
	for _, st := range s.strategies {
		officers, err := st.Find(ctx, q)
		if err == nil {
			s.log.DebugContext(ctx, "officer lookup served",
				slog.String("strategy", st.Name()),
				slog.Int("officers", len(officers)),
			)
			return annotate(officers), nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("find eligible officers: %w", ctxErr)
		}

		s.log.WarnContext(ctx, "officer lookup strategy failed",
			slog.String("strategy", st.Name()),
			slog.String("crime_type", q.CrimeType),
			slog.String("error", err.Error()),
		)
		failures = append(failures, fmt.Errorf("%s: %w", st.Name(), err))
	}

	return nil, errors.Join(append([]error{domain.ErrDirectoryUnavailable}, failures...)...)
}

// ResolveOfficer looks an officer up by id, falling back to the
// identity-provider uid when ref is not a uuid or no officer has that id.
func (s *Service) ResolveOfficer(ctx context.Context, ref string) (*domain.Officer, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.NewValidationError("officer_id", "required")
	}

	if id, err := uuid.Parse(ref); err == nil {
		o, err := s.officers.GetByID(ctx, id)
		switch {
		case err == nil:
			return o, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get officer by id: %w", err)
		}
	}

	o, err := s.officers.GetByAuthUID(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%q: %w", ref, domain.ErrOfficerNotFound)
		}
		return nil, fmt.Errorf("get officer by auth uid: %w", err)
	}
	return o, nil
}

// OfficerWorkload returns one officer annotated with its current workload level.
func (s *Service) OfficerWorkload(ctx context.Context, ref string) (*domain.OfficerCandidate, error) {
	o, err := s.ResolveOfficer(ctx, ref)
	if err != nil {
		return nil, err
	}
	c := domain.NewOfficerCandidate(*o)
	return &c, nil
}

// annotate drops officers that are not in active employment and scores the rest.
func annotate(officers []domain.Officer) []domain.OfficerCandidate {
	out := make([]domain.OfficerCandidate, 0, len(officers))
	for _, o := range officers {
		if !o.IsEligible() {
			continue
		}
		out = append(out, domain.NewOfficerCandidate(o))
	}
	return out
}
