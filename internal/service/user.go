package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urbanaccess/report-api/internal/models"
)

// UserRepository defines the storage contract for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService defines the business logic for user management.
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// CreateUser registers a new user. Email must be unique.
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "CreateUser",
		"email":   user.Email,
	})
	log.Info("Attempting to create a new user")

	existing, err := s.repo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to check email uniqueness")
		return fmt.Errorf("service: could not check email: %w", err)
	}
	if existing != nil {
		log.Warn("Email already registered")
		return fmt.Errorf("service: email %s: %w", user.Email, models.ErrConflict)
	}

	if user.Role == "" {
		user.Role = models.RolePedestrian
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return nil
}

// GetUser fetches a user by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail fetches a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user by email: %w", err)
	}
	return user, nil
}

// ListUsers returns all users, newest-first.
func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// UpdateUser changes name, email or role of an existing user. A new email
// must not belong to another user.
func (s *userService) UpdateUser(ctx context.Context, user *models.User) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": user.ID,
	})

	existing, err := s.repo.GetByID(ctx, user.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return fmt.Errorf("service: user %s not found for update: %w", user.ID, err)
	}

	if user.Email != "" && user.Email != existing.Email {
		taken, err := s.repo.GetByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("service: could not check email: %w", err)
		}
		if taken != nil && taken.ID != user.ID {
			log.Warn("Email already registered by another user")
			return fmt.Errorf("service: email %s: %w", user.Email, models.ErrConflict)
		}
		existing.Email = user.Email
	}
	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Role != "" {
		existing.Role = user.Role
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return fmt.Errorf("service: could not update user: %w", err)
	}

	*user = *existing
	log.Info("User updated successfully")
	return nil
}

// DeleteUser removes a user and, via cascading constraints, their reports.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteUser",
		"user_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent user")
		return fmt.Errorf("service: user %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user in repository")
		return fmt.Errorf("service: could not delete user: %w", err)
	}

	log.Info("User deleted successfully")
	return nil
}
