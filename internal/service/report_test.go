package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
	"github.com/urbanaccess/report-api/internal/service/mocks"
	"github.com/urbanaccess/report-api/internal/webhook"
	webhook_mocks "github.com/urbanaccess/report-api/internal/webhook/mocks"
	"go.uber.org/mock/gomock"
)

type reportServiceMocks struct {
	repo       *mocks.MockReportRepository
	users      *mocks.MockUserRepository
	locations  *mocks.MockLocationRepository
	categories *mocks.MockCategoryRepository
	publisher  *webhook_mocks.MockEventPublisher
}

// newTestReportService builds the service with all collaborators mocked.
func newTestReportService(t *testing.T) (service.ReportService, reportServiceMocks) {
	ctrl := gomock.NewController(t)
	m := reportServiceMocks{
		repo:       mocks.NewMockReportRepository(ctrl),
		users:      mocks.NewMockUserRepository(ctrl),
		locations:  mocks.NewMockLocationRepository(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
		publisher:  webhook_mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := service.NewReportService(m.repo, m.users, m.locations, m.categories, logger, m.publisher)
	return svc, m
}

func TestCreateReport_Success(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	authorID := uuid.New()
	locationID := uuid.New()
	categoryID := uuid.New()
	reportID := uuid.New()

	input := service.CreateReportInput{
		Title:       "Broken ramp at the north entrance",
		Description: "The ramp surface is cracked and unusable for wheelchairs",
		AuthorID:    authorID,
		LocationID:  locationID,
		CategoryID:  categoryID,
	}

	m.users.EXPECT().GetByID(ctx, authorID).Return(&models.User{ID: authorID}, nil).Times(1)
	m.locations.EXPECT().GetByID(ctx, locationID).Return(&models.Location{ID: locationID}, nil).Times(1)
	m.categories.EXPECT().GetByID(ctx, categoryID).Return(&models.Category{ID: categoryID}, nil).Times(1)

	m.repo.EXPECT().
		Create(ctx, gomock.Any(), "report created").
		DoAndReturn(func(_ context.Context, report *models.Report, _ string) error {
			assert.Equal(t, models.StatusPending, report.Status)
			report.ID = reportID
			return nil
		}).Times(1)

	aggregate := &models.ReportAggregate{
		Report: models.Report{
			ID:     reportID,
			Title:  input.Title,
			Status: models.StatusPending,
		},
		History: []models.StatusHistoryEntry{
			{ReportID: reportID, Status: models.StatusPending},
		},
	}
	m.repo.EXPECT().GetAggregate(ctx, reportID).Return(aggregate, nil).Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.ReportEvent) {
			assert.Equal(t, reportID, event.ReportID)
			assert.Equal(t, models.StatusPending, event.Status)
			assert.Equal(t, authorID, event.UpdatedBy)
		}).Return(nil).Times(1)

	result, err := svc.CreateReport(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, aggregate, result)
	require.Len(t, result.History, 1)
	assert.Equal(t, models.StatusPending, result.History[0].Status)
}

func TestCreateReport_AuthorNotFound(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	input := service.CreateReportInput{
		Title:      "Missing tactile paving",
		AuthorID:   uuid.New(),
		LocationID: uuid.New(),
		CategoryID: uuid.New(),
	}

	m.users.EXPECT().GetByID(ctx, input.AuthorID).Return(nil, models.ErrNotFound).Times(1)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.CreateReport(ctx, input)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateReport_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	input := service.CreateReportInput{
		Title:      "Elevator out of service",
		AuthorID:   uuid.New(),
		LocationID: uuid.New(),
		CategoryID: uuid.New(),
	}
	reportID := uuid.New()

	m.users.EXPECT().GetByID(ctx, input.AuthorID).Return(&models.User{ID: input.AuthorID}, nil).Times(1)
	m.locations.EXPECT().GetByID(ctx, input.LocationID).Return(&models.Location{ID: input.LocationID}, nil).Times(1)
	m.categories.EXPECT().GetByID(ctx, input.CategoryID).Return(&models.Category{ID: input.CategoryID}, nil).Times(1)
	m.repo.EXPECT().
		Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.Report, _ string) error {
			report.ID = reportID
			return nil
		}).Times(1)
	m.repo.EXPECT().GetAggregate(ctx, reportID).Return(&models.ReportAggregate{
		Report: models.Report{ID: reportID, Status: models.StatusPending},
	}, nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue unavailable")).Times(1)

	result, err := svc.CreateReport(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, reportID, result.ID)
}

func TestUpdateStatus_Success(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	adminID := uuid.New()
	comment := "analysis started"

	m.users.EXPECT().GetByID(ctx, adminID).Return(&models.User{ID: adminID, Role: models.RoleAdmin}, nil).Times(1)
	m.repo.EXPECT().
		UpdateStatus(ctx, reportID, models.StatusInAnalysis, adminID, &comment).
		Return(models.StatusPending, nil).
		Times(1)

	aggregate := &models.ReportAggregate{
		Report: models.Report{ID: reportID, Status: models.StatusInAnalysis},
	}
	m.repo.EXPECT().GetAggregate(ctx, reportID).Return(aggregate, nil).Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.ReportEvent) {
			assert.Equal(t, models.StatusInAnalysis, event.Status)
			assert.Equal(t, models.StatusPending, event.PreviousStatus)
			assert.Equal(t, adminID, event.UpdatedBy)
		}).Return(nil).Times(1)

	result, err := svc.UpdateStatus(ctx, reportID, models.StatusInAnalysis, adminID, &comment)

	require.NoError(t, err)
	assert.Equal(t, models.StatusInAnalysis, result.Status)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	adminID := uuid.New()
	transitionErr := &models.InvalidTransitionError{
		From: models.StatusPending,
		To:   models.StatusResolvedConfirmed,
	}

	m.users.EXPECT().GetByID(ctx, adminID).Return(&models.User{ID: adminID}, nil).Times(1)
	m.repo.EXPECT().
		UpdateStatus(ctx, reportID, models.StatusResolvedConfirmed, adminID, nil).
		Return(models.ReportStatus(""), transitionErr).
		Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.UpdateStatus(ctx, reportID, models.StatusResolvedConfirmed, adminID, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	var invalid *models.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.StatusPending, invalid.From)
	assert.Equal(t, models.StatusResolvedConfirmed, invalid.To)
}

func TestUpdateStatus_ActingUserNotFound(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	userID := uuid.New()

	m.users.EXPECT().GetByID(ctx, userID).Return(nil, models.ErrNotFound).Times(1)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.UpdateStatus(ctx, reportID, models.StatusInAnalysis, userID, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddComment_Success(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	authorID := uuid.New()
	author := &models.User{ID: authorID, Name: "Maria"}

	m.repo.EXPECT().GetByID(ctx, reportID).Return(&models.Report{ID: reportID}, nil).Times(1)
	m.users.EXPECT().GetByID(ctx, authorID).Return(author, nil).Times(1)
	m.repo.EXPECT().
		AddComment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, comment *models.Comment) error {
			comment.ID = uuid.New()
			return nil
		}).Times(1)

	comment, err := svc.AddComment(ctx, reportID, authorID, "still not fixed")

	require.NoError(t, err)
	assert.Equal(t, reportID, comment.ReportID)
	assert.Equal(t, "still not fixed", comment.Content)
	assert.Equal(t, author, comment.Author)
}

func TestAddComment_ReportNotFound(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, models.ErrNotFound).Times(1)
	m.repo.EXPECT().AddComment(gomock.Any(), gomock.Any()).Times(0)

	comment, err := svc.AddComment(ctx, uuid.New(), uuid.New(), "anyone there?")

	require.Error(t, err)
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateReport_Success(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	newTitle := "Updated title"

	existing := &models.Report{
		ID:          reportID,
		Title:       "Old title",
		Description: "Old description",
		Status:      models.StatusInAnalysis,
	}

	m.repo.EXPECT().GetByID(ctx, reportID).Return(existing, nil).Times(1)
	m.repo.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(_ context.Context, report *models.Report) {
			assert.Equal(t, newTitle, report.Title)
			assert.Equal(t, "Old description", report.Description)
			assert.Equal(t, models.StatusInAnalysis, report.Status)
		}).Return(nil).Times(1)
	m.repo.EXPECT().GetAggregate(ctx, reportID).Return(&models.ReportAggregate{
		Report: models.Report{ID: reportID, Title: newTitle, Status: models.StatusInAnalysis},
	}, nil).Times(1)

	result, err := svc.UpdateReport(ctx, reportID, service.UpdateReportInput{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, newTitle, result.Title)
}

func TestDeleteReport_NotFound(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.repo.EXPECT().GetByID(ctx, reportID).Return(nil, models.ErrNotFound).Times(1)
	m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteReport(ctx, reportID)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetStatistics_ResolutionRate(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()

	m.repo.EXPECT().Statistics(ctx).Return(&models.Statistics{
		Total: 10,
		ByStatus: map[models.ReportStatus]int{
			models.StatusPending:             4,
			models.StatusInAnalysis:          2,
			models.StatusResolvedProvisional: 1,
			models.StatusResolvedConfirmed:   3,
			models.StatusArchived:            0,
		},
	}, nil).Times(1)

	stats, err := svc.GetStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, "30.00%", stats.ResolutionRate)
}

func TestGetStatistics_Empty(t *testing.T) {
	svc, m := newTestReportService(t)
	ctx := context.Background()

	m.repo.EXPECT().Statistics(ctx).Return(&models.Statistics{
		Total:    0,
		ByStatus: map[models.ReportStatus]int{},
	}, nil).Times(1)

	stats, err := svc.GetStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, "0.00%", stats.ResolutionRate)
}
