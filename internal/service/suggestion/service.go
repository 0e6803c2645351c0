// Package suggestion picks the least loaded eligible officer for a case.
package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

type officerDirectory interface {
	FindEligibleOfficers(ctx context.Context, q domain.OfficerQuery) ([]domain.OfficerCandidate, error)
}

// Service provides officer suggestions.
type Service struct {
	directory officerDirectory
	log       *slog.Logger
}

// NewService creates a new suggestion service.
func NewService(log *slog.Logger, directory officerDirectory) *Service {
	return &Service{
		directory: directory,
		log:       log.With("service", "suggestion"),
	}
}

// Suggest returns the best candidate for a case of crimeType, optionally
// restricted to unitID. It returns nil and no error when nobody is eligible.
func (s *Service) Suggest(ctx context.Context, unitID *uuid.UUID, crimeType string) (*domain.OfficerCandidate, error) {
	ranked, err := s.Rank(ctx, unitID, crimeType)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		s.log.InfoContext(ctx, "no eligible officer to suggest", slog.String("crime_type", crimeType))
		return nil, nil
	}
	best := ranked[0]
	return &best, nil
}

// Rank returns every eligible candidate ordered from best to worst.
func (s *Service) Rank(ctx context.Context, unitID *uuid.UUID, crimeType string) ([]domain.OfficerCandidate, error) {
	candidates, err := s.directory.FindEligibleOfficers(ctx, domain.OfficerQuery{UnitID: unitID, CrimeType: crimeType})
	if err != nil {
		return nil, fmt.Errorf("find eligible officers: %w", err)
	}

	ranked := make([]domain.OfficerCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.IsEligible() {
			ranked = append(ranked, c)
		}
	}
	SortCandidates(ranked)
	return ranked, nil
}

// SortCandidates orders candidates by workload level, then by active cases.
// Candidates equal on both keep their relative order.
func SortCandidates(candidates []domain.OfficerCandidate) {
	slices.SortStableFunc(candidates, func(a, b domain.OfficerCandidate) int {
		if d := a.Workload.Rank() - b.Workload.Rank(); d != 0 {
			return d
		}
		return a.ActiveCases - b.ActiveCases
	})
}
