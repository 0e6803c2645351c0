package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is one append-only history row binding an officer to a complaint.
// At most one row per complaint has AssignmentStatusActive.
type Assignment struct {
	ID          uuid.UUID
	ComplaintID uuid.UUID
	OfficerID   uuid.UUID
	AssignerID  uuid.UUID
	Type        AssignmentType
	Status      AssignmentStatus
	Notes       *string
	AssignedAt  time.Time
	UpdatedAt   time.Time
}

// AssignParams is the request of the assignment procedure.
type AssignParams struct {
	ComplaintID uuid.UUID
	OfficerID   uuid.UUID
	AssignerID  uuid.UUID
	Notes       *string
}

// ReassignParams is the request of the reassignment procedure.
type ReassignParams struct {
	ComplaintID  uuid.UUID
	NewOfficerID uuid.UUID
	AssignerID   uuid.UUID
	Reason       string
}

// AssignmentOutcome is the successful response of either procedure.
type AssignmentOutcome struct {
	AssignmentID uuid.UUID
	OfficerName  string
	Message      string
}
