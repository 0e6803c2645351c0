// Package assignment implements the case-assignment history and the calls to
// the assignment stored procedures.
package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/Pinoccchio/LawbotWeb-sub000/internal/adapter/postgres"
	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// Repo provides case-assignment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new assignment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var assignmentColumns = []string{
	"id", "complaint_id", "officer_id", "assigned_by", "assignment_type",
	"status", "notes", "assigned_at", "updated_at",
}

// GetActive returns the active assignment of a complaint.
// It returns domain.ErrNotFound when the complaint has none.
func (r *Repo) GetActive(ctx context.Context, complaintID uuid.UUID) (*domain.Assignment, error) {
	query, args, err := postgres.Builder.
		Select(assignmentColumns...).
		From("case_assignments").
		Where("complaint_id = ?", complaintID).
		Where(sq.Eq{"status": string(domain.AssignmentStatusActive)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active assignment query: %w", err)
	}

	a, err := scanAssignment(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "active assignment of complaint", complaintID)
	}
	return a, nil
}

// History returns every assignment row of a complaint, oldest first.
func (r *Repo) History(ctx context.Context, complaintID uuid.UUID) ([]domain.Assignment, error) {
	query, args, err := postgres.Builder.
		Select(assignmentColumns...).
		From("case_assignments").
		Where("complaint_id = ?", complaintID).
		OrderBy("assigned_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment history query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("assignment history: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("assignment history: %w", err)
	}
	return out, nil
}

// Assign calls assign_complaint_to_officer. Rejections reported by the
// procedure are returned as the matching domain error.
func (r *Repo) Assign(ctx context.Context, p domain.AssignParams) (*domain.AssignmentOutcome, error) {
	const query = `SELECT assign_complaint_to_officer($1, $2, $3, $4)`
	return r.call(ctx, query, p.ComplaintID, p.ComplaintID, p.OfficerID, p.AssignerID, p.Notes)
}

// Reassign calls reassign_complaint.
func (r *Repo) Reassign(ctx context.Context, p domain.ReassignParams) (*domain.AssignmentOutcome, error) {
	const query = `SELECT reassign_complaint($1, $2, $3, $4)`
	return r.call(ctx, query, p.ComplaintID, p.ComplaintID, p.NewOfficerID, p.AssignerID, p.Reason)
}

// procedureResult is the jsonb document returned by both procedures.
type procedureResult struct {
	Success        bool      `json:"success"`
	AssignmentID   uuid.UUID `json:"assignment_id"`
	OfficerName    string    `json:"officer_name"`
	NewOfficerName string    `json:"new_officer_name"`
	Message        string    `json:"message"`
	Error          string    `json:"error"`
	ErrorCode      string    `json:"error_code"`
}

func (r *Repo) call(ctx context.Context, query string, complaintID uuid.UUID, args ...any) (*domain.AssignmentOutcome, error) {
	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		mapped := postgres.MapError(err, "assignment of complaint", complaintID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("complaint %s: %w", complaintID, domain.ErrAlreadyAssigned)
		}
		return nil, mapped
	}

	var res procedureResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode procedure result: %w", err)
	}

	if !res.Success {
		return nil, procedureError(complaintID, res)
	}

	name := res.OfficerName
	if name == "" {
		name = res.NewOfficerName
	}
	return &domain.AssignmentOutcome{
		AssignmentID: res.AssignmentID,
		OfficerName:  name,
		Message:      res.Message,
	}, nil
}

func procedureError(complaintID uuid.UUID, res procedureResult) error {
	var sentinel error
	switch domain.AssignmentErrorKind(res.ErrorCode) {
	case domain.AssignmentErrorOfficerNotFound:
		sentinel = domain.ErrOfficerNotFound
	case domain.AssignmentErrorAssignerNotFound:
		sentinel = domain.ErrAssignerNotFound
	case domain.AssignmentErrorComplaintNotFound:
		sentinel = domain.ErrComplaintNotFound
	case domain.AssignmentErrorAlreadyAssigned:
		sentinel = domain.ErrAlreadyAssigned
	case domain.AssignmentErrorNoActiveAssignment:
		sentinel = domain.ErrNoActiveAssignment
	default:
		return fmt.Errorf("complaint %s: procedure failed: %s (%s): %w",
			complaintID, res.Error, res.ErrorCode, domain.ErrStoreFailure)
	}
	return fmt.Errorf("complaint %s: %w", complaintID, sentinel)
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		a              domain.Assignment
		assignmentType string
		status         string
	)
	if err := row.Scan(
		&a.ID, &a.ComplaintID, &a.OfficerID, &a.AssignerID, &assignmentType,
		&status, &a.Notes, &a.AssignedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Type = domain.AssignmentType(assignmentType)
	a.Status = domain.AssignmentStatus(status)
	return &a, nil
}
