// Package assignment binds officers to complaints through the store's
// assignment procedures and orchestrates batches of such assignments.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/config"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

type officerResolver interface {
	ResolveOfficer(ctx context.Context, ref string) (*domain.Officer, error)
}

type adminRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByAuthUID(ctx context.Context, authUID string) (*domain.Admin, error)
}

type complaintRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
}

type assignmentRepo interface {
	GetActive(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error)
	Assign(ctx context.Context, p domain.AssignParams) (*domain.AssignmentOutcome, error)
	Reassign(ctx context.Context, p domain.ReassignParams) (*domain.AssignmentOutcome, error)
	History(ctx context.Context, complaintID uuid.UUID) ([]domain.Assignment, error)
}

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// pacer spaces batch items. *rate.Limiter satisfies it.
type pacer interface {
	Wait(ctx context.Context) error
}

// Service provides assignment operations.
type Service struct {
	officers      officerResolver
	admins        adminRepo
	complaints    complaintRepo
	assignments   assignmentRepo
	notifications notificationRepo
	tx            txManager
	pacer         pacer
	maxBatchItems int
	log           *slog.Logger
}

// NewService creates a new assignment service. Notifications are skipped when
// notifications is nil or cfg disables them.
func NewService(
	log *slog.Logger,
	officers officerResolver,
	admins adminRepo,
	complaints complaintRepo,
	assignments assignmentRepo,
	notifications notificationRepo,
	tx txManager,
	cfg config.AssignmentConfig,
) *Service {
	if cfg.DisableNotifications {
		notifications = nil
	}
	return &Service{
		officers:      officers,
		admins:        admins,
		complaints:    complaints,
		assignments:   assignments,
		notifications: notifications,
		tx:            tx,
		pacer:         rate.NewLimiter(rate.Every(cfg.BatchInterval), cfg.BatchBurst),
		maxBatchItems: cfg.BatchMaxItems,
		log:           log.With("service", "assignment"),
	}
}

// resolveAssigner looks an admin up by id, falling back to the
// identity-provider uid when ref is not a uuid or no admin has that id.
func (s *Service) resolveAssigner(ctx context.Context, ref string) (*domain.Admin, error) {
	ref = strings.TrimSpace(ref)

	if id, err := uuid.Parse(ref); err == nil {
		a, err := s.admins.GetByID(ctx, id)
		switch {
		case err == nil:
			return a, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get admin by id: %w", err)
		}
	}

	a, err := s.admins.GetByAuthUID(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%q: %w", ref, domain.ErrAssignerNotFound)
		}
		return nil, fmt.Errorf("get admin by auth uid: %w", err)
	}
	return a, nil
}

func (s *Service) getComplaint(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	c, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("complaint %s: %w", id, domain.ErrComplaintNotFound)
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}
	return c, nil
}

// asStoreFailure tags errors that carry no assignment kind of their own.
func asStoreFailure(err error) error {
	if err == nil || errors.Is(err, domain.ErrStoreFailure) {
		return err
	}
	if domain.KindOf(err) == domain.AssignmentErrorStoreFailure {
		return fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
	}
	return err
}

// notify records an officer notification. Failures are logged and never
// reach the caller; the assignment is already committed.
func (s *Service) notify(ctx context.Context, n domain.Notification) {
	if s.notifications == nil {
		return
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.WarnContext(ctx, "officer notification not recorded",
			slog.String("officer_id", n.OfficerID.String()),
			slog.String("complaint_id", n.ComplaintID.String()),
			slog.String("error", err.Error()),
		)
	}
}
