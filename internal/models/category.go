package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType classifies the accessibility problem a category covers.
type CategoryType string

const (
	CategoryRamp           CategoryType = "RAMP"
	CategoryTactileFloor   CategoryType = "TACTILE_FLOOR"
	CategoryElevator       CategoryType = "ELEVATOR"
	CategorySignage        CategoryType = "SIGNAGE"
	CategoryAccessibility  CategoryType = "ACCESSIBILITY"
	CategoryInfrastructure CategoryType = "INFRASTRUCTURE"
	CategoryOther          CategoryType = "OTHER"
)

type Category struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
