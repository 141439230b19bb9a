package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
)

// @Summary Register a new transit location
// @Description Register a transit point reports can be filed against. Requires API key.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body CreateLocationRequest true "Location creation request"
// @Success 201 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) createLocation(c *gin.Context) {
	var input CreateLocationRequest
	log := h.logger.WithField("method", "createLocation")

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

	location := locationFromRequest(input.Name, input.Address, input.Latitude, input.Longitude, input.Type, input.Description, input.AdminID)
	if err := h.locations.CreateLocation(c.Request.Context(), location); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toLocationResponse(location))
}

// @Summary List transit locations
// @Description List locations with pagination. With latitude, longitude and radius query parameters only locations within the given distance (km) are returned.
// @Tags Locations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(10)
// @Param latitude query number false "Center latitude for nearby filter"
// @Param longitude query number false "Center longitude for nearby filter"
// @Param radius query number false "Radius in kilometers for nearby filter"
// @Success 200 {object} LocationListResponse
// @Failure 400 {object} map[string]string "Invalid query parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")
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

	query := service.LocationQuery{Page: page, Limit: limit}
	for param, target := range map[string]**float64{
		"latitude":  &query.Latitude,
		"longitude": &query.Longitude,
		"radius":    &query.RadiusKm,
	} {
		if raw := c.Query(param); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
				return
			}
			*target = &value
		}
	}

	locations, meta, err := h.locations.ListLocations(c.Request.Context(), query)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LocationListResponse{
		Data: toLocationResponses(locations),
		Meta: toPageMetaResponse(meta),
	})
}

// @Summary Get location by ID
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [get]
func (h *Handler) getLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "getLocation").WithField("id", id)

	location, err := h.locations.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toLocationResponse(location))
}

// @Summary Update a transit location
// @Description Update an existing location. Requires API key.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid location ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [patch]
func (h *Handler) updateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
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

	location := locationFromRequest(input.Name, input.Address, input.Latitude, input.Longitude, input.Type, input.Description, input.AdminID)
	location.ID = id

	if err := h.locations.UpdateLocation(c.Request.Context(), location); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toLocationResponse(location))
}

// @Summary Delete a transit location
// @Description Delete a location together with its reports. Requires API key.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [delete]
func (h *Handler) deleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "deleteLocation").WithField("id", id)

	if err := h.locations.DeleteLocation(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func locationFromRequest(name, address string, latitude, longitude float64, locType, description string, adminID *string) *models.Location {
	location := &models.Location{
		Name:        name,
		Address:     address,
		Latitude:    latitude,
		Longitude:   longitude,
		Type:        locType,
		Description: description,
	}
	if adminID != nil {
		id := uuid.MustParse(*adminID)
		location.AdminID = &id
	}
	return location
}
