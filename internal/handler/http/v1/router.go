package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Reference data (locations,
// categories), status transitions and deletes are guarded by the API-key
// middleware; citizen-facing report and user endpoints are open.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authorized := APIKeyAuthMiddleware(h.cfg, h.logger)

	reports := api.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/statistics", h.getStatistics)
		reports.GET("/:id", h.getReport)
		reports.PATCH("/:id", h.updateReport)
		reports.PATCH("/:id/status", authorized, h.updateReportStatus)
		reports.POST("/:id/comments", h.addReportComment)
		reports.DELETE("/:id", authorized, h.deleteReport)
	}

	users := api.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PATCH("/:id", h.updateUser)
		users.DELETE("/:id", authorized, h.deleteUser)
	}

	locations := api.Group("/locations")
	{
		locations.POST("", authorized, h.createLocation)
		locations.GET("", h.listLocations)
		locations.GET("/:id", h.getLocation)
		locations.PATCH("/:id", authorized, h.updateLocation)
		locations.DELETE("/:id", authorized, h.deleteLocation)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", authorized, h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PATCH("/:id", authorized, h.updateCategory)
		categories.DELETE("/:id", authorized, h.deleteCategory)
	}

	api.GET("/system/health", h.healthCheck)
}
