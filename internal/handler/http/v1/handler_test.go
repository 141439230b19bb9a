package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbanaccess/report-api/internal/config"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
	"github.com/urbanaccess/report-api/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	reports    *mocks.MockReportService
	users      *mocks.MockUserService
	locations  *mocks.MockLocationService
	categories *mocks.MockCategoryService
}

// newTestHandler builds a Handler with mocked services behind a test router.
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		reports:    mocks.NewMockReportService(ctrl),
		users:      mocks.NewMockUserService(ctrl),
		locations:  mocks.NewMockLocationService(ctrl),
		categories: mocks.NewMockCategoryService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.reports, m.users, m.locations, m.categories, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func apiKey() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestCreateReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	authorID := uuid.New()
	reqBody := CreateReportRequest{
		Title:       "Broken ramp at the north entrance",
		Description: "Cracked surface, unusable for wheelchairs",
		AuthorID:    authorID.String(),
		LocationID:  uuid.New().String(),
		CategoryID:  uuid.New().String(),
	}

	aggregate := &models.ReportAggregate{
		Report: models.Report{
			ID:       reportID,
			Title:    reqBody.Title,
			Status:   models.StatusPending,
			AuthorID: authorID,
		},
		Author: models.User{ID: authorID, Name: "Joao"},
		History: []models.StatusHistoryEntry{
			{ReportID: reportID, Status: models.StatusPending},
		},
	}

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CreateReportInput) (*models.ReportAggregate, error) {
			assert.Equal(t, reqBody.Title, input.Title)
			assert.Equal(t, authorID, input.AuthorID)
			return aggregate, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ReportAggregateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, string(models.StatusPending), resp.Status)
	require.Len(t, resp.StatusHistory, 1)
	assert.Equal(t, string(models.StatusPending), resp.StatusHistory[0].Status)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"title": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateReport_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Description: "Missing title and IDs",
	}

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateReport_AuthorNotFound(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Title:       "Missing tactile paving",
		Description: "No tactile floor on the platform",
		AuthorID:    uuid.New().String(),
		LocationID:  uuid.New().String(),
		CategoryID:  uuid.New().String(),
	}

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: author: %w", models.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "resource not found")
}

func TestListReports_Success(t *testing.T) {
	m, router := newTestHandler(t)
	status := models.StatusPending
	summaries := []*models.ReportSummary{
		{Report: models.Report{ID: uuid.New(), Title: "First", Status: status}},
		{Report: models.Report{ID: uuid.New(), Title: "Second", Status: status}},
	}

	m.reports.EXPECT().
		ListReports(gomock.Any(), models.ReportFilter{Status: &status}, 2, 5).
		Return(summaries, models.NewPageMeta(12, 2, 5), nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?status=PENDING&page=2&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 12, resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestListReports_InvalidStatus(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports?status=BOGUS", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReports_InvalidFilterID(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports?location_id=not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid location_id")
}

func TestListReports_InvalidPage(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports?page=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid page")
}

func TestGetReport_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestGetReport_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/"+reportID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "resource not found")
}

func TestUpdateReportStatus_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	adminID := uuid.New()
	comment := "analysis started"
	reqBody := UpdateStatusRequest{
		Status:    "IN_ANALYSIS",
		UpdatedBy: adminID.String(),
		Comment:   &comment,
	}

	m.reports.EXPECT().
		UpdateStatus(gomock.Any(), reportID, models.StatusInAnalysis, adminID, &comment).
		Return(&models.ReportAggregate{
			Report: models.Report{ID: reportID, Status: models.StatusInAnalysis},
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/reports/%s/status", reportID), bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReportAggregateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.StatusInAnalysis), resp.Status)
}

func TestUpdateReportStatus_InvalidTransition(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := UpdateStatusRequest{
		Status:    "RESOLVED_CONFIRMED",
		UpdatedBy: uuid.New().String(),
	}

	transitionErr := &models.InvalidTransitionError{
		From: models.StatusPending,
		To:   models.StatusResolvedConfirmed,
	}
	m.reports.EXPECT().
		UpdateStatus(gomock.Any(), reportID, models.StatusResolvedConfirmed, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", transitionErr)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/reports/%s/status", reportID), bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// c.JSON escapes ">" in the raw body, so compare after decoding.
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid status transition: PENDING -> RESOLVED_CONFIRMED", resp["error"])
}

func TestUpdateReportStatus_UnknownStatus(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{
		Status:    "DONE",
		UpdatedBy: uuid.New().String(),
	}

	m.reports.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/reports/%s/status", uuid.New()), bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReportStatus_MissingAPIKey(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{
		Status:    "IN_ANALYSIS",
		UpdatedBy: uuid.New().String(),
	}

	m.reports.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/reports/%s/status", uuid.New()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAddReportComment_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	authorID := uuid.New()
	reqBody := CreateCommentRequest{
		AuthorID: authorID.String(),
		Content:  "still not fixed",
	}

	m.reports.EXPECT().
		AddComment(gomock.Any(), reportID, authorID, reqBody.Content).
		Return(&models.Comment{
			ID:       uuid.New(),
			ReportID: reportID,
			AuthorID: authorID,
			Content:  reqBody.Content,
			Author:   &models.User{ID: authorID, Name: "Maria"},
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/comments", reportID), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reqBody.Content, resp.Content)
	require.NotNil(t, resp.Author)
	assert.Equal(t, "Maria", resp.Author.Name)
}

func TestDeleteReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().DeleteReport(gomock.Any(), reportID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/reports/"+reportID.String(), nil, apiKey())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteReport_MissingAPIKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().DeleteReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/reports/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStatistics_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().GetStatistics(gomock.Any()).Return(&models.Statistics{
		Total: 10,
		ByStatus: map[models.ReportStatus]int{
			models.StatusPending:           7,
			models.StatusResolvedConfirmed: 3,
		},
		ByCategory: []models.CategoryCount{
			{ID: uuid.New(), Name: "Ramps", Count: 6},
			{ID: uuid.New(), Name: "Signage", Count: 4},
		},
		ResolutionRate: "30.00%",
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/statistics", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, "30.00%", resp.ResolutionRate)
	assert.Equal(t, 7, resp.ByStatus["PENDING"])
	assert.Len(t, resp.ByCategory, 2)
}

func TestCreateUser_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateUserRequest{
		Email: "joao@example.com",
		Name:  "Joao",
	}

	m.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			user.Role = models.RolePedestrian
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reqBody.Email, resp.Email)
	assert.Equal(t, string(models.RolePedestrian), resp.Role)
}

func TestCreateUser_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateUserRequest{
		Email: "taken@example.com",
		Name:  "Second",
	}

	m.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: email: %w", models.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "resource already exists")
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateUserRequest{
		Email: "not-an-email",
		Name:  "Joao",
	}

	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'email' tag")
}

func TestListLocations_NearbyQuery(t *testing.T) {
	m, router := newTestHandler(t)
	expected := []*models.Location{
		{ID: uuid.New(), Name: "Central Station", Latitude: -23.55, Longitude: -46.63},
	}

	m.locations.EXPECT().
		ListLocations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query service.LocationQuery) ([]*models.Location, models.PageMeta, error) {
			require.NotNil(t, query.Latitude)
			require.NotNil(t, query.Longitude)
			require.NotNil(t, query.RadiusKm)
			assert.InDelta(t, -23.55, *query.Latitude, 1e-9)
			assert.InDelta(t, -46.63, *query.Longitude, 1e-9)
			assert.InDelta(t, 5, *query.RadiusKm, 1e-9)
			return expected, models.NewPageMeta(1, 1, 10), nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations?latitude=-23.55&longitude=-46.63&radius=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LocationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestListLocations_InvalidLatitude(t *testing.T) {
	m, router := newTestHandler(t)

	m.locations.EXPECT().ListLocations(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/locations?latitude=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid latitude")
}

func TestListLocations_InvalidLimit(t *testing.T) {
	m, router := newTestHandler(t)

	m.locations.EXPECT().ListLocations(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/locations?limit=ten", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid limit")
}

func TestCreateLocation_MissingAPIKey(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateLocationRequest{
		Name:      "Central Station",
		Address:   "Main Square 1",
		Latitude:  -23.55,
		Longitude: -46.63,
		Type:      "BUS_STOP",
	}

	m.locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCategory_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateCategoryRequest{
		Name: "Broken ramps",
		Type: "RAMP",
	}

	m.categories.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, category *models.Category) error {
			category.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/categories", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reqBody.Name, resp.Name)
	assert.Equal(t, reqBody.Type, resp.Type)
}

func TestCreateCategory_InvalidType(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateCategoryRequest{
		Name: "Misc",
		Type: "SOMETHING_ELSE",
	}

	m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/categories", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Type' failed on the 'oneof' tag")
}

func TestCreateCategory_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateCategoryRequest{
		Name: "Broken ramps",
		Type: "RAMP",
	}

	m.categories.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: category: %w", models.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/categories", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().DeleteReport(gomock.Any(), reportID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/reports/"+reportID.String(), nil,
		map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().DeleteReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/reports/"+uuid.New().String(), nil,
		map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

// Service errors that do not map to the known taxonomy come back as a
// generic 500.
func TestRespondServiceError_Unexpected(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, errors.New("connection refused")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/"+reportID.String(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
