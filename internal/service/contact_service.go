package service

import (
	"context"

	"github.com/condoportal/backend/internal/model"
)

// ContactService defines the business logic for the resident contact form.
type ContactService interface {
	// Categories returns the fixed inquiry categories in display order.
	Categories(ctx context.Context) []model.InquiryCategory

	// Submit validates a contact form submission and records it in the log.
	// A failed validation returns *model.ValidationError. Nothing is stored.
	Submit(ctx context.Context, sub *model.ContactSubmission) error
}
