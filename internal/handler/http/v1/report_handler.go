package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
)

// @Summary File a new report
// @Description File a new accessibility report against a location and category.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} ReportAggregateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Author, location or category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceInput := service.CreateReportInput{
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    uuid.MustParse(input.AuthorID),
		LocationID:  uuid.MustParse(input.LocationID),
		CategoryID:  uuid.MustParse(input.CategoryID),
		ImageURL:    input.ImageURL,
	}

	aggregate, err := h.reports.CreateReport(c.Request.Context(), serviceInput)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toReportAggregateResponse(aggregate))
}

// @Summary List reports
// @Description List reports newest-first with optional status, location, category and author filters.
// @Tags Reports
// @Accept json
// @Produce json
// @Param status query string false "Report status filter"
// @Param location_id query string false "Location filter"
// @Param category_id query string false "Category filter"
// @Param author_id query string false "Author filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Success 200 {object} ReportListResponse
// @Failure 400 {object} map[string]string "Invalid filter value"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	filter := models.ReportFilter{}
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseReportStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Status = &status
	}
	for param, target := range map[string]**uuid.UUID{
		"location_id": &filter.LocationID,
		"category_id": &filter.CategoryID,
		"author_id":   &filter.AuthorID,
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
				return
			}
			*target = &id
		}
	}

	summaries, meta, err := h.reports.ListReports(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Data: toReportSummaryResponses(summaries),
		Meta: toPageMetaResponse(meta),
	})
}

// @Summary Get report by ID
// @Description Get the full report aggregate: author, location, category, status history and comments.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportAggregateResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	aggregate, err := h.reports.GetReport(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toReportAggregateResponse(aggregate))
}

// @Summary Update report fields
// @Description Update title, description or image of a report. Status is immutable here.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param report body UpdateReportRequest true "Report update request"
// @Success 200 {object} ReportAggregateResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [patch]
func (h *Handler) updateReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "updateReport").WithField("id", id)

	var input UpdateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aggregate, err := h.reports.UpdateReport(c.Request.Context(), id, service.UpdateReportInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toReportAggregateResponse(aggregate))
}

// @Summary Update report status
// @Description Request a lifecycle transition. The transition is validated against the current status; an accepted transition appends an immutable history entry. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 {object} ReportAggregateResponse
// @Failure 400 {object} map[string]string "Invalid transition, report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report or acting user not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/status [patch]
func (h *Handler) updateReportStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "updateReportStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseReportStatus(input.Status)
	if err != nil {
		log.WithError(err).Warn("Unknown status value")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aggregate, err := h.reports.UpdateStatus(c.Request.Context(), id, status, uuid.MustParse(input.UpdatedBy), input.Comment)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toReportAggregateResponse(aggregate))
}

// @Summary Comment on a report
// @Description Attach a free-text comment to a report. Status and history are untouched.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param comment body CreateCommentRequest true "Comment creation request"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 404 {object} map[string]string "Report or author not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/comments [post]
func (h *Handler) addReportComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "addReportComment").WithField("id", id)

	var input CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.reports.AddComment(c.Request.Context(), id, uuid.MustParse(input.AuthorID), input.Content)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// @Summary Delete a report
// @Description Delete a report together with its status history and comments. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "deleteReport").WithField("id", id)

	if err := h.reports.DeleteReport(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get report statistics
// @Description Get total, per-status and per-category report counts plus the resolution rate.
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/statistics [get]
func (h *Handler) getStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getStatistics")

	stats, err := h.reports.GetStatistics(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toStatisticsResponse(stats))
}
