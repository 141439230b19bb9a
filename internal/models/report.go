package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a citizen-submitted record of an accessibility problem at a
// location. Status only changes through the validated lifecycle operation,
// never by direct overwrite.
type Report struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	ImageURL    *string      `json:"image_url,omitempty"`
	AuthorID    uuid.UUID    `json:"author_id"`
	LocationID  uuid.UUID    `json:"location_id"`
	CategoryID  uuid.UUID    `json:"category_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// StatusHistoryEntry is an immutable audit record of a single status
// assignment. Created once at report creation and once per accepted
// transition; never updated or deleted.
type StatusHistoryEntry struct {
	ID        uuid.UUID    `json:"id"`
	ReportID  uuid.UUID    `json:"report_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Status    ReportStatus `json:"status"`
	Comment   *string      `json:"comment,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	User      *User        `json:"user,omitempty"`
}

// Comment is a free-text annotation on a report, independent of the status
// lifecycle.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    *User     `json:"author,omitempty"`
}

// ReportAggregate is the full read view of a report: core fields plus
// author, location, category, history (newest-first) and comments
// (newest-first). Every mutating report operation returns this shape.
type ReportAggregate struct {
	Report
	Author   User                 `json:"author"`
	Location Location             `json:"location"`
	Category Category             `json:"category"`
	History  []StatusHistoryEntry `json:"status_history"`
	Comments []Comment            `json:"comments"`
}

// ReportFilter narrows report listings. Nil fields are ignored.
type ReportFilter struct {
	Status     *ReportStatus
	LocationID *uuid.UUID
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
}

// ReportSummary is the list view: the report plus its resolved references,
// without history or comments.
type ReportSummary struct {
	Report
	Author   User     `json:"author"`
	Location Location `json:"location"`
	Category Category `json:"category"`
}

// PageMeta carries pagination metadata alongside a page of results.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// NewPageMeta computes TotalPages from total and limit.
func NewPageMeta(total, page, limit int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// CategoryCount is a per-category report count in the statistics view.
type CategoryCount struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

// Statistics is the dashboard view over all reports.
type Statistics struct {
	Total          int                  `json:"total"`
	ByStatus       map[ReportStatus]int `json:"by_status"`
	ByCategory     []CategoryCount      `json:"by_category"`
	ResolutionRate string               `json:"resolution_rate"`
}
