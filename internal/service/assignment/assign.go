package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Assign binds an officer to a complaint that is still awaiting assignment.
// Errors classify with domain.KindOf; a second Assign of the same complaint,
// or any Assign of a resolved or dismissed one, fails with
// domain.ErrAlreadyAssigned.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*domain.AssignmentOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		outcome   *domain.AssignmentOutcome
		officer   *domain.Officer
		complaint *domain.Complaint
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		officer, err = s.officers.ResolveOfficer(txCtx, input.OfficerRef)
		if err != nil {
			return err
		}
		admin, err := s.resolveAssigner(txCtx, input.AssignerRef)
		if err != nil {
			return err
		}
		complaint, err = s.getComplaint(txCtx, input.ComplaintID)
		if err != nil {
			return err
		}
		if !complaint.AwaitsAssignment() {
			return fmt.Errorf("complaint %s is %s: %w", complaint.ID, complaint.Status, domain.ErrAlreadyAssigned)
		}

		_, err = s.assignments.GetActive(txCtx, input.ComplaintID)
		switch {
		case err == nil:
			return fmt.Errorf("complaint %s: %w", input.ComplaintID, domain.ErrAlreadyAssigned)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get active assignment: %w", err)
		}

		outcome, err = s.assignments.Assign(txCtx, domain.AssignParams{
			ComplaintID: input.ComplaintID,
			OfficerID:   officer.ID,
			AssignerID:  admin.ID,
			Notes:       trimOrNil(input.Notes),
		})
		return err
	})
	if err != nil {
		err = asStoreFailure(err)
		s.log.WarnContext(ctx, "assignment rejected",
			slog.String("complaint_id", input.ComplaintID.String()),
			slog.String("officer_ref", input.OfficerRef),
			slog.String("kind", domain.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "complaint assigned",
		slog.String("complaint_id", input.ComplaintID.String()),
		slog.String("officer_id", officer.ID.String()),
		slog.String("assignment_id", outcome.AssignmentID.String()),
	)

	s.notify(ctx, domain.Notification{
		OfficerID:   officer.ID,
		ComplaintID: complaint.ID,
		Kind:        domain.NotificationCaseAssigned,
		Title:       "New case assigned",
		Body:        fmt.Sprintf("A %s complaint has been assigned to you.", complaint.CrimeType),
	})

	return outcome, nil
}

// Reassign moves a complaint's active assignment to another officer and
// records the reason on the new assignment row.
func (s *Service) Reassign(ctx context.Context, input ReassignInput) (*domain.AssignmentOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		outcome   *domain.AssignmentOutcome
		officer   *domain.Officer
		complaint *domain.Complaint
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		officer, err = s.officers.ResolveOfficer(txCtx, input.NewOfficerRef)
		if err != nil {
			return err
		}
		admin, err := s.resolveAssigner(txCtx, input.AssignerRef)
		if err != nil {
			return err
		}
		complaint, err = s.getComplaint(txCtx, input.ComplaintID)
		if err != nil {
			return err
		}

		active, err := s.assignments.GetActive(txCtx, input.ComplaintID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("complaint %s: %w", input.ComplaintID, domain.ErrNoActiveAssignment)
		case err != nil:
			return fmt.Errorf("get active assignment: %w", err)
		case active.OfficerID == officer.ID:
			return domain.NewValidationError("new_officer_id", "officer already holds this complaint")
		}

		outcome, err = s.assignments.Reassign(txCtx, domain.ReassignParams{
			ComplaintID:  input.ComplaintID,
			NewOfficerID: officer.ID,
			AssignerID:   admin.ID,
			Reason:       strings.TrimSpace(input.Reason),
		})
		return err
	})
	if err != nil {
		err = asStoreFailure(err)
		s.log.WarnContext(ctx, "reassignment rejected",
			slog.String("complaint_id", input.ComplaintID.String()),
			slog.String("officer_ref", input.NewOfficerRef),
			slog.String("kind", domain.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "complaint reassigned",
		slog.String("complaint_id", input.ComplaintID.String()),
		slog.String("officer_id", officer.ID.String()),
		slog.String("assignment_id", outcome.AssignmentID.String()),
	)

	s.notify(ctx, domain.Notification{
		OfficerID:   officer.ID,
		ComplaintID: complaint.ID,
		Kind:        domain.NotificationCaseReassigned,
		Title:       "Case reassigned to you",
		Body:        fmt.Sprintf("A %s complaint has been reassigned to you.", complaint.CrimeType),
	})

	return outcome, nil
}

// History returns every assignment of a complaint, oldest first.
func (s *Service) History(ctx context.Context, complaintID uuid.UUID) ([]domain.Assignment, error) {
	if complaintID == uuid.Nil {
		return nil, domain.NewValidationError("complaint_id", "required")
	}
	if _, err := s.getComplaint(ctx, complaintID); err != nil {
		return nil, asStoreFailure(err)
	}

	history, err := s.assignments.History(ctx, complaintID)
	if err != nil {
		return nil, asStoreFailure(fmt.Errorf("assignment history: %w", err))
	}
	return history, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
