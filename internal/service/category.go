package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urbanaccess/report-api/internal/models"
)

// CategoryRepository defines the storage contract for problem categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryService defines the business logic for category management.
type CategoryService interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo   CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger,
	}
}

// CreateCategory registers a new problem category. Name must be unique.
func (s *categoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "category",
		"method":  "CreateCategory",
		"name":    category.Name,
	})
	log.Info("Attempting to create a new category")

	existing, err := s.repo.GetByName(ctx, category.Name)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to check category name uniqueness")
		return fmt.Errorf("service: could not check category name: %w", err)
	}
	if existing != nil {
		log.Warn("Category name already exists")
		return fmt.Errorf("service: category %s: %w", category.Name, models.ErrConflict)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		log.WithError(err).Error("Failed to create category in repository")
		return fmt.Errorf("service: could not create category: %w", err)
	}

	log.WithField("category_id", category.ID).Info("Category created successfully")
	return nil
}

// GetCategory fetches a category by ID.
func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get category: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories ordered by name.
func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory changes fields of an existing category. A new name must
// not belong to another category.
func (s *categoryService) UpdateCategory(ctx context.Context, category *models.Category) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "UpdateCategory",
		"category_id": category.ID,
	})

	existing, err := s.repo.GetByID(ctx, category.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent category")
		return fmt.Errorf("service: category %s not found for update: %w", category.ID, err)
	}

	if category.Name != "" && category.Name != existing.Name {
		taken, err := s.repo.GetByName(ctx, category.Name)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("service: could not check category name: %w", err)
		}
		if taken != nil && taken.ID != category.ID {
			log.Warn("Category name already exists")
			return fmt.Errorf("service: category %s: %w", category.Name, models.ErrConflict)
		}
		existing.Name = category.Name
	}
	if category.Type != "" {
		existing.Type = category.Type
	}
	if category.Description != "" {
		existing.Description = category.Description
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update category in repository")
		return fmt.Errorf("service: could not update category: %w", err)
	}

	*category = *existing
	log.Info("Category updated successfully")
	return nil
}

// DeleteCategory removes a category and, via cascading constraints, its
// reports.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "DeleteCategory",
		"category_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent category")
		return fmt.Errorf("service: category %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete category in repository")
		return fmt.Errorf("service: could not delete category: %w", err)
	}

	log.Info("Category deleted successfully")
	return nil
}
