package service

import (
	"context"
	"log/slog"

	"github.com/condoportal/backend/internal/metrics"
	"github.com/condoportal/backend/internal/model"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	logger *slog.Logger
}

// NewContactService creates a ContactService that logs accepted submissions
// to logger. A nil logger uses slog.Default().
func NewContactService(logger *slog.Logger) ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactServiceImpl{logger: logger}
}

func (s *contactServiceImpl) Categories(ctx context.Context) []model.InquiryCategory {
	return model.InquiryCategories()
}

// Submit validates sub and emits one structured log record on success.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if err := sub.Validate(); err != nil {
		metrics.RecordContactSubmission(false)
		return err
	}

	s.logger.InfoContext(ctx, "contact submission received",
		"name", sub.Name,
		"email", sub.Email,
		"unit_number", sub.UnitNumber,
		"category", sub.Category,
		"message_length", len([]rune(sub.Message)),
		"copy_to_email", sub.CopyToEmail,
	)
	metrics.RecordContactSubmission(true)
	return nil
}
