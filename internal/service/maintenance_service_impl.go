package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/condoportal/backend/internal/metrics"
	"github.com/condoportal/backend/internal/model"
	"github.com/condoportal/backend/internal/repository"
)

// maintenanceServiceImpl is the production implementation of MaintenanceService.
type maintenanceServiceImpl struct {
	repo   repository.MaintenanceRepository
	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location
}

// MaintenanceOption customises a MaintenanceService.
type MaintenanceOption func(*maintenanceServiceImpl)

// WithClock overrides the time source used to compute scheduled dates.
func WithClock(now func() time.Time) MaintenanceOption {
	return func(s *maintenanceServiceImpl) { s.now = now }
}

// WithLocation sets the time zone scheduled dates are rendered in.
func WithLocation(loc *time.Location) MaintenanceOption {
	return func(s *maintenanceServiceImpl) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLogger sets the logger for scheduled requests.
func WithLogger(logger *slog.Logger) MaintenanceOption {
	return func(s *maintenanceServiceImpl) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewMaintenanceService creates a MaintenanceService backed by the given repository.
func NewMaintenanceService(repo repository.MaintenanceRepository, opts ...MaintenanceOption) MaintenanceService {
	s := &maintenanceServiceImpl{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *maintenanceServiceImpl) List(ctx context.Context) ([]model.MaintenanceItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list maintenance items: %w", err)
	}
	return items, nil
}

// Schedule validates req and appends the new item as its last step, so a
// failure never leaves a partial item on the board.
func (s *maintenanceServiceImpl) Schedule(ctx context.Context, req model.MaintenanceRequest) (*model.MaintenanceItem, error) {
	if req.IssueSubject == "" {
		metrics.RecordMaintenanceRequest("rejected")
		return nil, ErrIssueSubjectRequired
	}
	if utf8.RuneCountInString(req.IssueSubject) > model.MaxIssueSubjectLength {
		metrics.RecordMaintenanceRequest("rejected")
		ve := &model.ValidationError{}
		ve.Add("issueSubject", fmt.Sprintf("Issue subject must be at most %d characters", model.MaxIssueSubjectLength))
		return nil, ve
	}

	scheduled := s.now().In(s.loc).AddDate(0, 0, ScheduleLeadDays)
	item := model.MaintenanceItem{
		Type:   model.MaintenanceTypeRepair,
		Task:   req.IssueSubject,
		Date:   scheduled.Format(model.DateLayout),
		Status: model.MaintenanceStatusScheduled,
	}

	if err := s.repo.Append(ctx, item); err != nil {
		metrics.RecordMaintenanceRequest("failed")
		return nil, fmt.Errorf("append maintenance item: %w", err)
	}
	metrics.RecordMaintenanceRequest("scheduled")

	s.logger.InfoContext(ctx, "maintenance request scheduled",
		"task", item.Task,
		"date", item.Date,
		"issue_type", req.IssueType,
		"issue_location", req.IssueLocation,
		"description_length", utf8.RuneCountInString(req.IssueDescription),
	)
	return &item, nil
}
