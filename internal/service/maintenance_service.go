package service

import (
	"context"

	"github.com/condoportal/backend/internal/model"
)

// ScheduleLeadDays is how many calendar days out a new repair is scheduled.
const ScheduleLeadDays = 5

// MissingFieldError reports a required request field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// ErrIssueSubjectRequired is returned by Schedule when issueSubject is empty.
var ErrIssueSubjectRequired = &MissingFieldError{Field: "issueSubject"}

// MaintenanceService defines the business logic for the maintenance board.
type MaintenanceService interface {
	// List returns every item on the board in insertion order.
	List(ctx context.Context) ([]model.MaintenanceItem, error)

	// Schedule turns a resident request into a Repair item dated
	// ScheduleLeadDays from now, appends it and returns it.
	Schedule(ctx context.Context, req model.MaintenanceRequest) (*model.MaintenanceItem, error)
}
