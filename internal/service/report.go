package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/webhook"
)

// initialHistoryComment is written into the first status history entry of
// every report.
const initialHistoryComment = "report created"

// ReportRepository defines the storage contract for reports, their status
// history and comments. Create and UpdateStatus are atomic: report row and
// history row are written in one transaction or not at all.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report, initialComment string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	GetAggregate(ctx context.Context, id uuid.UUID) (*models.ReportAggregate, error)
	List(ctx context.Context, filter models.ReportFilter, page, limit int) ([]*models.ReportSummary, int, error)
	Update(ctx context.Context, report *models.Report) error
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.ReportStatus, updatedBy uuid.UUID, comment *string) (models.ReportStatus, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddComment(ctx context.Context, comment *models.Comment) error
	Statistics(ctx context.Context) (*models.Statistics, error)
}

// CreateReportInput carries everything needed to file a new report.
type CreateReportInput struct {
	Title       string
	Description string
	AuthorID    uuid.UUID
	LocationID  uuid.UUID
	CategoryID  uuid.UUID
	ImageURL    *string
}

// UpdateReportInput updates core report fields. Status is deliberately
// absent: it only changes through UpdateStatus.
type UpdateReportInput struct {
	Title       *string
	Description *string
	ImageURL    *string
}

// ReportService defines the business logic for the report lifecycle.
type ReportService interface {
	CreateReport(ctx context.Context, input CreateReportInput) (*models.ReportAggregate, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.ReportAggregate, error)
	ListReports(ctx context.Context, filter models.ReportFilter, page, limit int) ([]*models.ReportSummary, models.PageMeta, error)
	UpdateReport(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*models.ReportAggregate, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.ReportStatus, updatedBy uuid.UUID, comment *string) (*models.ReportAggregate, error)
	AddComment(ctx context.Context, reportID, authorID uuid.UUID, content string) (*models.Comment, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

type reportService struct {
	repo       ReportRepository
	users      UserRepository
	locations  LocationRepository
	categories CategoryRepository
	logger     *logrus.Logger
	publisher  webhook.EventPublisher
}

func NewReportService(
	repo ReportRepository,
	users UserRepository,
	locations LocationRepository,
	categories CategoryRepository,
	logger *logrus.Logger,
	publisher webhook.EventPublisher,
) ReportService {
	return &reportService{
		repo:       repo,
		users:      users,
		locations:  locations,
		categories: categories,
		logger:     logger,
		publisher:  publisher,
	}
}

// CreateReport files a new report. The report row and its initial PENDING
// history entry are written atomically by the repository.
func (s *reportService) CreateReport(ctx context.Context, input CreateReportInput) (*models.ReportAggregate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "CreateReport",
		"author_id": input.AuthorID,
	})
	log.Info("Attempting to create a new report")

	if _, err := s.users.GetByID(ctx, input.AuthorID); err != nil {
		log.WithError(err).Warn("Report author does not exist")
		return nil, fmt.Errorf("service: author %s: %w", input.AuthorID, err)
	}
	if _, err := s.locations.GetByID(ctx, input.LocationID); err != nil {
		log.WithError(err).Warn("Report location does not exist")
		return nil, fmt.Errorf("service: location %s: %w", input.LocationID, err)
	}
	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		log.WithError(err).Warn("Report category does not exist")
		return nil, fmt.Errorf("service: category %s: %w", input.CategoryID, err)
	}

	report := &models.Report{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.StatusPending,
		ImageURL:    input.ImageURL,
		AuthorID:    input.AuthorID,
		LocationID:  input.LocationID,
		CategoryID:  input.CategoryID,
	}

	if err := s.repo.Create(ctx, report, initialHistoryComment); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	aggregate, err := s.repo.GetAggregate(ctx, report.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load created report aggregate")
		return nil, fmt.Errorf("service: could not load created report: %w", err)
	}

	s.publish(ctx, log, webhook.ReportEvent{
		ReportID:  aggregate.ID,
		Title:     aggregate.Title,
		Status:    aggregate.Status,
		UpdatedBy: input.AuthorID,
		Timestamp: time.Now().UTC(),
	})

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return aggregate, nil
}

// GetReport returns the full aggregate for a report.
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.ReportAggregate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	aggregate, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	return aggregate, nil
}

// ListReports returns a page of report summaries, newest-first.
func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter, page, limit int) ([]*models.ReportSummary, models.PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListReports",
		"page":    page,
		"limit":   limit,
	})

	summaries, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, models.PageMeta{}, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(summaries)).Info("Reports listed successfully")
	return summaries, models.NewPageMeta(total, page, limit), nil
}

// UpdateReport changes title, description or image of an existing report.
func (s *reportService) UpdateReport(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*models.ReportAggregate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "UpdateReport",
		"report_id": id,
	})

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent report")
		return nil, fmt.Errorf("service: report %s not found for update: %w", id, err)
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.ImageURL != nil {
		existing.ImageURL = input.ImageURL
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update report in repository")
		return nil, fmt.Errorf("service: could not update report: %w", err)
	}

	aggregate, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not load updated report: %w", err)
	}

	log.Info("Report updated successfully")
	return aggregate, nil
}

// UpdateStatus moves a report to a new lifecycle status. The repository
// validates the transition against the current status inside a single
// transaction and appends the history entry together with the status write.
func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.ReportStatus, updatedBy uuid.UUID, comment *string) (*models.ReportAggregate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "UpdateStatus",
		"report_id":  id,
		"new_status": newStatus,
		"updated_by": updatedBy,
	})
	log.Info("Attempting to update report status")

	if _, err := s.users.GetByID(ctx, updatedBy); err != nil {
		log.WithError(err).Warn("Acting user does not exist")
		return nil, fmt.Errorf("service: user %s: %w", updatedBy, err)
	}

	previous, err := s.repo.UpdateStatus(ctx, id, newStatus, updatedBy, comment)
	if err != nil {
		log.WithError(err).Warn("Status update rejected")
		return nil, fmt.Errorf("service: could not update report status: %w", err)
	}

	aggregate, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load report aggregate after status update")
		return nil, fmt.Errorf("service: could not load updated report: %w", err)
	}

	s.publish(ctx, log, webhook.ReportEvent{
		ReportID:       aggregate.ID,
		Title:          aggregate.Title,
		Status:         newStatus,
		PreviousStatus: previous,
		UpdatedBy:      updatedBy,
		Timestamp:      time.Now().UTC(),
	})

	log.Info("Report status updated successfully")
	return aggregate, nil
}

// AddComment attaches a free-text comment to a report. Status and history
// are untouched.
func (s *reportService) AddComment(ctx context.Context, reportID, authorID uuid.UUID, content string) (*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "AddComment",
		"report_id": reportID,
		"author_id": authorID,
	})

	if _, err := s.repo.GetByID(ctx, reportID); err != nil {
		log.WithError(err).Warn("Attempted to comment on a non-existent report")
		return nil, fmt.Errorf("service: report %s: %w", reportID, err)
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		log.WithError(err).Warn("Comment author does not exist")
		return nil, fmt.Errorf("service: author %s: %w", authorID, err)
	}

	comment := &models.Comment{
		ReportID: reportID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		log.WithError(err).Error("Failed to add comment in repository")
		return nil, fmt.Errorf("service: could not add comment: %w", err)
	}
	comment.Author = author

	log.WithField("comment_id", comment.ID).Info("Comment added successfully")
	return comment, nil
}

// DeleteReport removes a report. History and comments go with it via
// cascading foreign keys.
func (s *reportService) DeleteReport(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "DeleteReport",
		"report_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent report")
		return fmt.Errorf("service: report %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete report in repository")
		return fmt.Errorf("service: could not delete report: %w", err)
	}

	log.Info("Report deleted successfully")
	return nil
}

// GetStatistics aggregates report counts and computes the resolution rate
// as a percentage of confirmed-resolved reports.
func (s *reportService) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "GetStatistics",
	})

	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get statistics from repository")
		return nil, fmt.Errorf("service: could not get statistics: %w", err)
	}

	stats.ResolutionRate = "0.00%"
	if stats.Total > 0 {
		rate := float64(stats.ByStatus[models.StatusResolvedConfirmed]) / float64(stats.Total) * 100
		stats.ResolutionRate = fmt.Sprintf("%.2f%%", rate)
	}

	return stats, nil
}

// publish enqueues a webhook event. Delivery is best-effort: a publish
// failure is logged and never fails the originating request.
func (s *reportService) publish(ctx context.Context, log *logrus.Entry, event webhook.ReportEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish report event")
	}
}
