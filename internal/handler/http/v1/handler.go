package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/urbanaccess/report-api/internal/config"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
)

type Handler struct {
	reports    service.ReportService
	users      service.UserService
	locations  service.LocationService
	categories service.CategoryService
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(
	reports service.ReportService,
	users service.UserService,
	locations service.LocationService,
	categories service.CategoryService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reports:    reports,
		users:      users,
		locations:  locations,
		categories: categories,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Unexpected errors become a generic 500 without leaking storage
// internals.
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var invalid *models.InvalidTransitionError
	switch {
	case errors.As(err, &invalid):
		log.WithError(err).Warn("Invalid status transition requested")
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Requested entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Uniqueness conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
