package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urbanaccess/report-api/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371.0

// LocationRepository defines the storage contract for transit locations.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	List(ctx context.Context, page, limit int) ([]*models.Location, int, error)
	ListAll(ctx context.Context) ([]*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationQuery narrows a location listing. When Latitude, Longitude and
// RadiusKm are all set, results are filtered by Haversine distance.
type LocationQuery struct {
	Page      int
	Limit     int
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// LocationService defines the business logic for location management.
type LocationService interface {
	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, error)
	ListLocations(ctx context.Context, query LocationQuery) ([]*models.Location, models.PageMeta, error)
	UpdateLocation(ctx context.Context, location *models.Location) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}

type locationService struct {
	repo   LocationRepository
	logger *logrus.Logger
}

func NewLocationService(repo LocationRepository, logger *logrus.Logger) LocationService {
	return &locationService{
		repo:   repo,
		logger: logger,
	}
}

// CreateLocation registers a new transit location.
func (s *locationService) CreateLocation(ctx context.Context, location *models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "CreateLocation",
		"name":    location.Name,
	})
	log.Info("Attempting to create a new location")

	if err := s.repo.Create(ctx, location); err != nil {
		log.WithError(err).Error("Failed to create location in repository")
		return fmt.Errorf("service: could not create location: %w", err)
	}

	log.WithField("location_id", location.ID).Info("Location created successfully")
	return nil
}

// GetLocation fetches a location by ID.
func (s *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}
	return location, nil
}

// ListLocations returns a page of locations. With coordinates and a radius
// in the query it filters by Haversine distance and paginates in memory.
func (s *locationService) ListLocations(ctx context.Context, query LocationQuery) ([]*models.Location, models.PageMeta, error) {
	page := query.Page
	limit := query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "ListLocations",
		"page":    page,
		"limit":   limit,
	})

	if query.Latitude != nil && query.Longitude != nil && query.RadiusKm != nil {
		all, err := s.repo.ListAll(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to list locations from repository")
			return nil, models.PageMeta{}, fmt.Errorf("service: could not list locations: %w", err)
		}

		nearby := make([]*models.Location, 0)
		for _, loc := range all {
			distance := haversineKm(*query.Latitude, *query.Longitude, loc.Latitude, loc.Longitude)
			if distance <= *query.RadiusKm {
				nearby = append(nearby, loc)
			}
		}

		total := len(nearby)
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		log.WithField("count", end-start).Info("Nearby locations listed successfully")
		return nearby[start:end], models.NewPageMeta(total, page, limit), nil
	}

	locations, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, models.PageMeta{}, fmt.Errorf("service: could not list locations: %w", err)
	}

	log.WithField("count", len(locations)).Info("Locations listed successfully")
	return locations, models.NewPageMeta(total, page, limit), nil
}

// UpdateLocation changes fields of an existing location.
func (s *locationService) UpdateLocation(ctx context.Context, location *models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "UpdateLocation",
		"location_id": location.ID,
	})

	existing, err := s.repo.GetByID(ctx, location.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent location")
		return fmt.Errorf("service: location %s not found for update: %w", location.ID, err)
	}

	existing.Name = location.Name
	existing.Address = location.Address
	existing.Latitude = location.Latitude
	existing.Longitude = location.Longitude
	existing.Type = location.Type
	existing.Description = location.Description
	existing.AdminID = location.AdminID

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update location in repository")
		return fmt.Errorf("service: could not update location: %w", err)
	}

	*location = *existing
	log.Info("Location updated successfully")
	return nil
}

// DeleteLocation removes a location and, via cascading constraints, its
// reports.
func (s *locationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "DeleteLocation",
		"location_id": id,
	})

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent location")
		return fmt.Errorf("service: location %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete location in repository")
		return fmt.Errorf("service: could not delete location: %w", err)
	}

	log.Info("Location deleted successfully")
	return nil
}

// haversineKm computes the great-circle distance between two coordinates in
// kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
