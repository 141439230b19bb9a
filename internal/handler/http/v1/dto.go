package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest is the payload for filing a new report.
// @Description Payload for filing a new accessibility report
type CreateReportRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=255"`
	Description string  `json:"description" validate:"required"`
	AuthorID    string  `json:"author_id" validate:"required,uuid"`
	LocationID  string  `json:"location_id" validate:"required,uuid"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateReportRequest updates core report fields. Status is absent on
// purpose: it only changes through the status endpoint.
// @Description Payload for updating report title, description or image
type UpdateReportRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateStatusRequest requests a lifecycle transition.
// @Description Payload for a report status transition
type UpdateStatusRequest struct {
	Status    string  `json:"status" validate:"required"`
	UpdatedBy string  `json:"updated_by" validate:"required,uuid"`
	Comment   *string `json:"comment,omitempty"`
}

// CreateCommentRequest attaches a comment to a report.
// @Description Payload for commenting on a report
type CreateCommentRequest struct {
	AuthorID string `json:"author_id" validate:"required,uuid"`
	Content  string `json:"content" validate:"required"`
}

// CreateUserRequest registers a new user.
// @Description Payload for registering a user
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=PEDESTRIAN ADMIN"`
}

// UpdateUserRequest updates user fields.
// @Description Payload for updating a user
type UpdateUserRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=PEDESTRIAN ADMIN"`
}

// CreateLocationRequest registers a transit location.
// @Description Payload for registering a transit location
type CreateLocationRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Address     string  `json:"address" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description,omitempty"`
	AdminID     *string `json:"admin_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateLocationRequest updates a transit location.
// @Description Payload for updating a transit location
type UpdateLocationRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Address     string  `json:"address" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description,omitempty"`
	AdminID     *string `json:"admin_id,omitempty" validate:"omitempty,uuid"`
}

// CreateCategoryRequest registers a problem category.
// @Description Payload for registering a problem category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Type        string `json:"type" validate:"required,oneof=RAMP TACTILE_FLOOR ELEVATOR SIGNAGE ACCESSIBILITY INFRASTRUCTURE OTHER"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest updates a problem category.
// @Description Payload for updating a problem category
type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Type        string `json:"type,omitempty" validate:"omitempty,oneof=RAMP TACTILE_FLOOR ELEVATOR SIGNAGE ACCESSIBILITY INFRASTRUCTURE OTHER"`
	Description string `json:"description,omitempty"`
}

// UserResponse is the public user representation.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationResponse is the public location representation.
type LocationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	AdminID     *uuid.UUID `json:"admin_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CategoryResponse is the public category representation.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusHistoryResponse is one immutable audit record of a status
// assignment.
type StatusHistoryResponse struct {
	ID        uuid.UUID     `json:"id"`
	Status    string        `json:"status"`
	Comment   *string       `json:"comment,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// CommentResponse is one comment on a report.
type CommentResponse struct {
	ID        uuid.UUID     `json:"id"`
	Content   string        `json:"content"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// ReportSummaryResponse is the report list view.
type ReportSummaryResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	ImageURL    *string           `json:"image_url,omitempty"`
	Author      UserResponse      `json:"author"`
	Location    LocationResponse  `json:"location"`
	Category    CategoryResponse  `json:"category"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ReportAggregateResponse is the full report read view returned by every
// mutating report operation.
type ReportAggregateResponse struct {
	ID            uuid.UUID               `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Status        string                  `json:"status"`
	ImageURL      *string                 `json:"image_url,omitempty"`
	Author        UserResponse            `json:"author"`
	Location      LocationResponse        `json:"location"`
	Category      CategoryResponse        `json:"category"`
	StatusHistory []StatusHistoryResponse `json:"status_history"`
	Comments      []CommentResponse       `json:"comments"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// PageMetaResponse carries pagination metadata.
type PageMetaResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// ReportListResponse is a page of report summaries.
type ReportListResponse struct {
	Data []*ReportSummaryResponse `json:"data"`
	Meta PageMetaResponse         `json:"meta"`
}

// LocationListResponse is a page of locations.
type LocationListResponse struct {
	Data []*LocationResponse `json:"data"`
	Meta PageMetaResponse    `json:"meta"`
}

// CategoryCountResponse is a per-category report count.
type CategoryCountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

// StatisticsResponse is the dashboard statistics view.
type StatisticsResponse struct {
	Total          int                     `json:"total"`
	ByStatus       map[string]int          `json:"by_status"`
	ByCategory     []CategoryCountResponse `json:"by_category"`
	ResolutionRate string                  `json:"resolution_rate"`
}
