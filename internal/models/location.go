package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is a transit point (bus stop, metro station) reports are filed
// against.
type Location struct {
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
