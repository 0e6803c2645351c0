package domain

// CrimeCategory groups crime types; each category is handled by exactly one unit.
type CrimeCategory string

const (
	CategoryCommunicationSocialMedia CrimeCategory = "Communication & Social Media Crimes"
	CategoryFinancialFraud           CrimeCategory = "Financial Fraud & Scams"
	CategoryHarassmentExploitation   CrimeCategory = "Harassment & Exploitation"
	CategoryHackingIntrusion         CrimeCategory = "Hacking & System Intrusion"
	CategoryMalware                  CrimeCategory = "Malware & Ransomware"
	CategoryIdentityPrivacy          CrimeCategory = "Identity Theft & Data Privacy"
	CategoryECommerce                CrimeCategory = "E-Commerce & Online Transaction Fraud"
	CategoryIntellectualProperty     CrimeCategory = "Intellectual Property & Content Crimes"
	CategoryCryptocurrency           CrimeCategory = "Cryptocurrency & Investment Crimes"
	CategoryCriticalInfrastructure   CrimeCategory = "Cyber Terrorism & Critical Infrastructure"
)

func (c CrimeCategory) String() string { return string(c) }

func (c CrimeCategory) IsValid() bool {
	switch c {
	case CategoryCommunicationSocialMedia, CategoryFinancialFraud, CategoryHarassmentExploitation,
		CategoryHackingIntrusion, CategoryMalware, CategoryIdentityPrivacy, CategoryECommerce,
		CategoryIntellectualProperty, CategoryCryptocurrency, CategoryCriticalInfrastructure:
		return true
	}
	return false
}

// AvailabilityStatus is set by the officer and is independent of workload.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityOverloaded  AvailabilityStatus = "overloaded"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

func (s AvailabilityStatus) String() string { return string(s) }

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOverloaded, AvailabilityUnavailable:
		return true
	}
	return false
}

// EmploymentStatus decides assignment eligibility: only active officers qualify.
type EmploymentStatus string

const (
	EmploymentActive    EmploymentStatus = "active"
	EmploymentOnLeave   EmploymentStatus = "on_leave"
	EmploymentSuspended EmploymentStatus = "suspended"
	EmploymentRetired   EmploymentStatus = "retired"
)

func (s EmploymentStatus) String() string { return string(s) }

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentActive, EmploymentOnLeave, EmploymentSuspended, EmploymentRetired:
		return true
	}
	return false
}

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintToBeAssigned       ComplaintStatus = "to_be_assigned"
	ComplaintUnderInvestigation ComplaintStatus = "under_investigation"
	ComplaintRequiresMoreInfo   ComplaintStatus = "requires_more_info"
	ComplaintResolved           ComplaintStatus = "resolved"
	ComplaintDismissed          ComplaintStatus = "dismissed"
)

func (s ComplaintStatus) String() string { return string(s) }

func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintToBeAssigned, ComplaintUnderInvestigation, ComplaintRequiresMoreInfo,
		ComplaintResolved, ComplaintDismissed:
		return true
	}
	return false
}

// AssignmentType records why an assignment row was created.
type AssignmentType string

const (
	AssignmentTypePrimary      AssignmentType = "primary"
	AssignmentTypeReassignment AssignmentType = "reassignment"
	AssignmentTypeTemporary    AssignmentType = "temporary"
)

func (t AssignmentType) String() string { return string(t) }

func (t AssignmentType) IsValid() bool {
	switch t {
	case AssignmentTypePrimary, AssignmentTypeReassignment, AssignmentTypeTemporary:
		return true
	}
	return false
}

// AssignmentStatus is the state of one assignment history row.
type AssignmentStatus string

const (
	AssignmentStatusActive     AssignmentStatus = "active"
	AssignmentStatusReassigned AssignmentStatus = "reassigned"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusReassigned, AssignmentStatusCompleted:
		return true
	}
	return false
}

// NotificationKind identifies the event an officer notification describes.
type NotificationKind string

const (
	NotificationCaseAssigned   NotificationKind = "case_assigned"
	NotificationCaseReassigned NotificationKind = "case_reassigned"
)

func (k NotificationKind) String() string { return string(k) }
