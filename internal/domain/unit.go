package domain

import (
	"time"

	"github.com/google/uuid"
)

// Unit is an organizational group of officers specializing in one crime category.
type Unit struct {
	ID         uuid.UUID
	Name       string
	Category   CrimeCategory
	CrimeTypes []string
}

// HandlesCrimeType reports whether the unit lists crimeType (case-insensitive).
func (u *Unit) HandlesCrimeType(crimeType string) bool {
	key := NormalizeText(crimeType)
	for _, ct := range u.CrimeTypes {
		if NormalizeText(ct) == key {
			return true
		}
	}
	return false
}

// Complaint is a reported incident awaiting or under investigation.
// AssignedOfficerID is non-nil exactly when Status is not ComplaintToBeAssigned.
type Complaint struct {
	ID                uuid.UUID
	CrimeType         string
	Status            ComplaintStatus
	AssignedOfficerID *uuid.UUID
	AssignedUnitID    *uuid.UUID
	UpdatedAt         time.Time
}

// IsAssigned reports whether an officer is currently bound to the complaint.
func (c *Complaint) IsAssigned() bool {
	return c.AssignedOfficerID != nil
}

// AwaitsAssignment reports whether the complaint can take a first assignment.
// Resolved and dismissed complaints keep their last officer and never qualify.
func (c *Complaint) AwaitsAssignment() bool {
	return c.Status == ComplaintToBeAssigned && !c.IsAssigned()
}

// Notification is an outbox record picked up by the external push service.
type Notification struct {
	ID          uuid.UUID
	OfficerID   uuid.UUID
	ComplaintID uuid.UUID
	Kind        NotificationKind
	Title       string
	Body        string
	CreatedAt   time.Time
}

