package assignment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Pinoccchio/LawbotWeb-sub000/internal/domain"
)

// MaxNoteLength caps assignment notes and reassignment reasons, in characters.
const MaxNoteLength = 1000

// AssignInput holds the parameters for assigning a complaint.
// Officer and assigner references are ids or identity-provider uids.
type AssignInput struct {
	ComplaintID uuid.UUID
	OfficerRef  string
	AssignerRef string
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.ComplaintID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "complaint_id", Message: "required"})
	}
	if strings.TrimSpace(i.OfficerRef) == "" {
		errs = append(errs, domain.FieldError{Field: "officer_id", Message: "required"})
	}
	if strings.TrimSpace(i.AssignerRef) == "" {
		errs = append(errs, domain.FieldError{Field: "assigner_id", Message: "required"})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNoteLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReassignInput holds the parameters for moving a complaint to another officer.
type ReassignInput struct {
	ComplaintID   uuid.UUID
	NewOfficerRef string
	AssignerRef   string
	Reason        string
}

// Validate checks all fields and collects all errors.
func (i ReassignInput) Validate() error {
	var errs []domain.FieldError

	if i.ComplaintID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "complaint_id", Message: "required"})
	}
	if strings.TrimSpace(i.NewOfficerRef) == "" {
		errs = append(errs, domain.FieldError{Field: "new_officer_id", Message: "required"})
	}
	if strings.TrimSpace(i.AssignerRef) == "" {
		errs = append(errs, domain.FieldError{Field: "assigner_id", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if utf8.RuneCountInString(reason) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: fmt.Sprintf("max %d characters", MaxNoteLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BatchItem is one complaint/officer pair of a batch.
type BatchItem struct {
	ComplaintID uuid.UUID `yaml:"complaint_id"`
	OfficerRef  string    `yaml:"officer_id"`
}

// BatchInput holds the parameters for a batch assignment. The assigner and
// notes apply to every item.
type BatchInput struct {
	Items       []BatchItem
	AssignerRef string
	Notes       *string
}

// Validate checks the batch-wide fields. Items are validated one by one
// during the batch so a bad item fails alone.
func (i BatchInput) Validate(maxItems int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.AssignerRef) == "" {
		errs = append(errs, domain.FieldError{Field: "assigner_id", Message: "required"})
	}
	if maxItems > 0 && len(i.Items) > maxItems {
		errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d items", maxItems)})
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", MaxNoteLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
