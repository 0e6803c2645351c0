package domain

import (
	"time"

	"github.com/google/uuid"
)

// Officer is an investigator who can be bound to complaints.
// Counters are owned by the store and change only through the assignment procedures.
type Officer struct {
	ID               uuid.UUID
	AuthUID          string // identity-provider uid, accepted as an alias of ID
	Name             string
	BadgeNumber      string
	Rank             string
	UnitID           uuid.UUID
	UnitName         string
	UnitCategory     CrimeCategory
	ActiveCases      int
	TotalCases       int
	Availability     AvailabilityStatus
	Employment       EmploymentStatus
	LastAssignmentAt *time.Time
}

// IsEligible reports whether the officer may receive new assignments.
func (o *Officer) IsEligible() bool {
	return o.Employment == EmploymentActive
}

// OfficerCandidate is an officer annotated with its derived workload level.
type OfficerCandidate struct {
	Officer
	Workload WorkloadLevel
}

// NewOfficerCandidate scores the officer's current active cases.
func NewOfficerCandidate(o Officer) OfficerCandidate {
	return OfficerCandidate{Officer: o, Workload: ScoreWorkload(o.ActiveCases)}
}

// Admin is an administrator identity allowed to assign complaints.
type Admin struct {
	ID      uuid.UUID
	AuthUID string
	Name    string
}

// OfficerQuery asks the directory for eligible officers. A nil UnitID and an
// empty CrimeType do not restrict the result. CrimeType may be a client key,
// a display name, or free text.
type OfficerQuery struct {
	UnitID    *uuid.UUID
	CrimeType string
}

// OfficerFilter is a resolved store-level filter. UnitIDs and Categories are
// alternatives: an officer matches when it belongs to any listed unit or to a
// unit of any listed category.
type OfficerFilter struct {
	UnitID     *uuid.UUID
	UnitIDs    []uuid.UUID
	Categories []CrimeCategory
}
