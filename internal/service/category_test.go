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

func newTestCategoryService(t *testing.T) (service.CategoryService, *mocks.MockCategoryRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCategoryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewCategoryService(repoMock, logger), repoMock
}

func TestCreateCategory_Success(t *testing.T) {
	svc, repoMock := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{Name: "Broken ramps", Type: models.CategoryRamp}

	repoMock.EXPECT().GetByName(ctx, category.Name).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) error {
			c.ID = uuid.New()
			return nil
		}).Times(1)

	require.NoError(t, svc.CreateCategory(ctx, category))
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc, repoMock := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{Name: "Broken ramps", Type: models.CategoryRamp}

	repoMock.EXPECT().
		GetByName(ctx, category.Name).
		Return(&models.Category{ID: uuid.New(), Name: category.Name}, nil).
		Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateCategory(ctx, category)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateCategory_NameTakenByAnotherCategory(t *testing.T) {
	svc, repoMock := newTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	update := &models.Category{ID: categoryID, Name: "Taken"}

	repoMock.EXPECT().
		GetByID(ctx, categoryID).
		Return(&models.Category{ID: categoryID, Name: "Original"}, nil).
		Times(1)
	repoMock.EXPECT().
		GetByName(ctx, "Taken").
		Return(&models.Category{ID: uuid.New(), Name: "Taken"}, nil).
		Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateCategory(ctx, update)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateCategory_MergesFields(t *testing.T) {
	svc, repoMock := newTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	update := &models.Category{ID: categoryID, Description: "Ramps and access slopes"}

	existing := &models.Category{
		ID:   categoryID,
		Name: "Ramps",
		Type: models.CategoryRamp,
	}
	repoMock.EXPECT().GetByID(ctx, categoryID).Return(existing, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(_ context.Context, c *models.Category) {
			assert.Equal(t, "Ramps", c.Name)
			assert.Equal(t, "Ramps and access slopes", c.Description)
		}).Return(nil).Times(1)

	require.NoError(t, svc.UpdateCategory(ctx, update))
	assert.Equal(t, "Ramps", update.Name)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc, repoMock := newTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, categoryID).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteCategory(ctx, categoryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
