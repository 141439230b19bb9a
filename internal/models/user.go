package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes pedestrians from location administrators.
type UserRole string

const (
	RolePedestrian UserRole = "PEDESTRIAN"
	RoleAdmin      UserRole = "ADMIN"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
