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

func newTestUserService(t *testing.T) (service.UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewUserService(repoMock, logger), repoMock
}

func TestCreateUser_Success(t *testing.T) {
	svc, repoMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{Email: "joao@example.com", Name: "Joao"}

	repoMock.EXPECT().GetByEmail(ctx, user.Email).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		}).Times(1)

	err := svc.CreateUser(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, models.RolePedestrian, user.Role)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestCreateUser_KeepsExplicitRole(t *testing.T) {
	svc, repoMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{Email: "admin@example.com", Name: "Admin", Role: models.RoleAdmin}

	repoMock.EXPECT().GetByEmail(ctx, user.Email).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, svc.CreateUser(ctx, user))
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, repoMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{Email: "taken@example.com", Name: "Second"}

	repoMock.EXPECT().
		GetByEmail(ctx, user.Email).
		Return(&models.User{ID: uuid.New(), Email: user.Email}, nil).
		Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateUser(ctx, user)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateUser_EmailTakenByAnotherUser(t *testing.T) {
	svc, repoMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	update := &models.User{ID: userID, Email: "new@example.com"}

	repoMock.EXPECT().
		GetByID(ctx, userID).
		Return(&models.User{ID: userID, Email: "old@example.com"}, nil).
		Times(1)
	repoMock.EXPECT().
		GetByEmail(ctx, "new@example.com").
		Return(&models.User{ID: uuid.New(), Email: "new@example.com"}, nil).
		Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateUser(ctx, update)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateUser_MergesFields(t *testing.T) {
	svc, repoMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	update := &models.User{ID: userID, Name: "New Name"}

	existing := &models.User{
		ID:    userID,
		Email: "keep@example.com",
		Name:  "Old Name",
		Role:  models.RolePedestrian,
	}
	repoMock.EXPECT().GetByID(ctx, userID).Return(existing, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(_ context.Context, u *models.User) {
			assert.Equal(t, "New Name", u.Name)
			assert.Equal(t, "keep@example.com", u.Email)
		}).Return(nil).Times(1)

	err := svc.UpdateUser(ctx, update)

	require.NoError(t, err)
	assert.Equal(t, "keep@example.com", update.Email)
	assert.Equal(t, models.RolePedestrian, update.Role)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, repoMock := newTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	repoMock.EXPECT().GetByID(ctx, userID).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	err := svc.DeleteUser(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
