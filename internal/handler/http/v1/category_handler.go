package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/urbanaccess/report-api/internal/models"
)

// @Summary Register a problem category
// @Description Register a category reports can be classified under. Category names are unique. Requires API key.
// @Tags Categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param category body CreateCategoryRequest true "Category creation request"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Category name already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var input CreateCategoryRequest
	log := h.logger.WithField("method", "createCategory")

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

	category := &models.Category{
		Name:        input.Name,
		Type:        models.CategoryType(input.Type),
		Description: input.Description,
	}
	if err := h.categories.CreateCategory(c.Request.Context(), category); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// @Summary List problem categories
// @Tags Categories
// @Accept json
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	log := h.logger.WithField("method", "listCategories")

	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// @Summary Get category by ID
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}
	log := h.logger.WithField("method", "getCategory").WithField("id", id)

	category, err := h.categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// @Summary Update a problem category
// @Description Update an existing category. Requires API key.
// @Tags Categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Category ID"
// @Param category body UpdateCategoryRequest true "Category update request"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} map[string]string "Invalid category ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category name already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [patch]
func (h *Handler) updateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}
	log := h.logger.WithField("method", "updateCategory").WithField("id", id)

	var input UpdateCategoryRequest
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

	category := &models.Category{
		ID:          id,
		Name:        input.Name,
		Type:        models.CategoryType(input.Type),
		Description: input.Description,
	}
	if err := h.categories.UpdateCategory(c.Request.Context(), category); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(category))
}

// @Summary Delete a problem category
// @Description Delete a category together with its reports. Requires API key.
// @Tags Categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [delete]
func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}
	log := h.logger.WithField("method", "deleteCategory").WithField("id", id)

	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
