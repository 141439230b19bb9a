package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{
		db: db,
	}
}

func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (name, address, latitude, longitude, type, description, admin_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		location.Name,
		location.Address,
		location.Latitude,
		location.Longitude,
		location.Type,
		location.Description,
		location.AdminID,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	location := &models.Location{}
	query := `
		SELECT id, name, address, latitude, longitude, type, description, admin_id, created_at, updated_at
		FROM locations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Name,
		&location.Address,
		&location.Latitude,
		&location.Longitude,
		&location.Type,
		&location.Description,
		&location.AdminID,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}
	return location, nil
}

// List returns a page of locations newest-first plus the total count.
func (r *LocationRepository) List(ctx context.Context, page, limit int) ([]*models.Location, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM locations;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count locations: %w", err)
	}

	offset := (page - 1) * limit
	query := `
		SELECT id, name, address, latitude, longitude, type, description, admin_id, created_at, updated_at
		FROM locations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations, err := scanLocations(rows)
	if err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// ListAll returns every location. Used by the nearby filter, which computes
// Haversine distances in the service layer.
func (r *LocationRepository) ListAll(ctx context.Context) ([]*models.Location, error) {
	query := `
		SELECT id, name, address, latitude, longitude, type, description, admin_id, created_at, updated_at
		FROM locations
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]*models.Location, error) {
	locations := make([]*models.Location, 0)
	for rows.Next() {
		location := &models.Location{}
		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.Address,
			&location.Latitude,
			&location.Longitude,
			&location.Type,
			&location.Description,
			&location.AdminID,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return locations, nil
}

func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	query := `
		UPDATE locations SET
			name = $1,
			address = $2,
			latitude = $3,
			longitude = $4,
			type = $5,
			description = $6,
			admin_id = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		location.Name,
		location.Address,
		location.Latitude,
		location.Longitude,
		location.Type,
		location.Description,
		location.AdminID,
		location.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location with id %s: %w", location.ID, models.ErrNotFound)
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}
