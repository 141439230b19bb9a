package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbanaccess/report-api/internal/models"
	"github.com/urbanaccess/report-api/internal/service"
	"github.com/urbanaccess/report-api/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLocationService(t *testing.T) (service.LocationService, *mocks.MockLocationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLocationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewLocationService(repoMock, logger), repoMock
}

func floatPtr(v float64) *float64 { return &v }

func TestListLocations_Paged(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()
	expected := []*models.Location{
		{ID: uuid.New(), Name: "Central Station"},
		{ID: uuid.New(), Name: "City Hall Stop"},
	}

	repoMock.EXPECT().List(ctx, 1, 10).Return(expected, 12, nil).Times(1)

	locations, meta, err := svc.ListLocations(ctx, service.LocationQuery{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestListLocations_NormalizesPageAndLimit(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()

	// Out-of-range paging values fall back to defaults.
	repoMock.EXPECT().List(ctx, 1, 10).Return(nil, 0, nil).Times(1)

	_, meta, err := svc.ListLocations(ctx, service.LocationQuery{Page: -3, Limit: 5000})

	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.Limit)
}

func TestListLocations_NearbyFilter(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()

	// Distances from (0, 0): atCenter 0 km, nearby ~55.6 km, faraway ~1568 km.
	atCenter := &models.Location{ID: uuid.New(), Name: "At center", Latitude: 0, Longitude: 0}
	nearby := &models.Location{ID: uuid.New(), Name: "Nearby", Latitude: 0, Longitude: 0.5}
	faraway := &models.Location{ID: uuid.New(), Name: "Far away", Latitude: 10, Longitude: 10}

	repoMock.EXPECT().
		ListAll(ctx).
		Return([]*models.Location{atCenter, nearby, faraway}, nil).
		Times(1)

	locations, meta, err := svc.ListLocations(ctx, service.LocationQuery{
		Page:      1,
		Limit:     10,
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
		RadiusKm:  floatPtr(60),
	})

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, atCenter, locations[0])
	assert.Equal(t, nearby, locations[1])
	assert.Equal(t, 2, meta.Total)
}

func TestListLocations_NearbyPagination(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()

	all := []*models.Location{
		{ID: uuid.New(), Name: "First", Latitude: 0, Longitude: 0},
		{ID: uuid.New(), Name: "Second", Latitude: 0.1, Longitude: 0},
		{ID: uuid.New(), Name: "Third", Latitude: 0.2, Longitude: 0},
	}
	repoMock.EXPECT().ListAll(ctx).Return(all, nil).Times(1)

	locations, meta, err := svc.ListLocations(ctx, service.LocationQuery{
		Page:      2,
		Limit:     2,
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
		RadiusKm:  floatPtr(100),
	})

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Third", locations[0].Name)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestListLocations_NearbyPageBeyondRange(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()

	all := []*models.Location{
		{ID: uuid.New(), Name: "Only one", Latitude: 0, Longitude: 0},
	}
	repoMock.EXPECT().ListAll(ctx).Return(all, nil).Times(1)

	locations, meta, err := svc.ListLocations(ctx, service.LocationQuery{
		Page:      5,
		Limit:     10,
		Latitude:  floatPtr(0),
		Longitude: floatPtr(0),
		RadiusKm:  floatPtr(10),
	})

	require.NoError(t, err)
	assert.Empty(t, locations)
	assert.Equal(t, 1, meta.Total)
}

func TestListLocations_PartialGeoIgnoresFilter(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()

	// Radius alone is not enough to trigger the nearby filter.
	repoMock.EXPECT().List(ctx, 1, 10).Return(nil, 0, nil).Times(1)
	repoMock.EXPECT().ListAll(gomock.Any()).Times(0)

	_, _, err := svc.ListLocations(ctx, service.LocationQuery{
		Page:     1,
		Limit:    10,
		RadiusKm: floatPtr(50),
	})

	require.NoError(t, err)
}

func TestUpdateLocation_NotFound(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()
	location := &models.Location{ID: uuid.New(), Name: "Ghost stop"}

	repoMock.EXPECT().GetByID(ctx, location.ID).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateLocation(ctx, location)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteLocation_Success(t *testing.T) {
	svc, repoMock := newTestLocationService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetByID(ctx, id).Return(&models.Location{ID: id}, nil).Times(1)
	repoMock.EXPECT().Delete(ctx, id).Return(nil).Times(1)

	require.NoError(t, svc.DeleteLocation(ctx, id))
}
