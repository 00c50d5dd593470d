package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserUsecase(db *gorm.DB) UserUsecase {
	return NewUserUsecase(db, newTestLogger(), repository.NewUserRepository())
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)

	resp, err := uc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "frontdesk",
		Password: "secret123",
		Role:     "receptionist",
	})
	require.NoError(t, err)

	assert.Equal(t, "frontdesk", resp.Username)
	assert.Equal(t, "receptionist", resp.Role)
	assert.True(t, resp.IsActive)

	var user entity.User
	require.NoError(t, db.Where("username = ?", "frontdesk").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)
	ctx := context.Background()

	_, err := uc.Create(ctx, &dto.CreateUserRequest{Username: "frontdesk", Password: "secret123", Role: "receptionist"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, &dto.CreateUserRequest{Username: "frontdesk", Password: "other456", Role: "doctor"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)

	_, err := uc.Create(context.Background(), &dto.CreateUserRequest{Username: "nurse1", Password: "secret123", Role: "nurse"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestListUsersFiltersByRole(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)
	ctx := context.Background()

	for _, u := range []dto.CreateUserRequest{
		{Username: "admin1", Password: "secret123", Role: "admin"},
		{Username: "drhouse", Password: "secret123", Role: "doctor"},
		{Username: "frontdesk", Password: "secret123", Role: "receptionist"},
	} {
		_, err := uc.Create(ctx, &u)
		require.NoError(t, err)
	}

	users, total, err := uc.List(ctx, "doctor", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "drhouse", users[0].Username)

	_, total, err = uc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestUpdateUserCannotDisableSelf(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)
	ctx := context.Background()

	admin, err := uc.Create(ctx, &dto.CreateUserRequest{Username: "admin1", Password: "secret123", Role: "admin"})
	require.NoError(t, err)

	disabled := false
	_, err = uc.Update(ctx, admin.ID, admin.ID, &dto.UpdateUserRequest{IsActive: &disabled})
	assert.ErrorIs(t, err, ErrCannotDisableSelf)

	err = uc.Deactivate(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrCannotDisableSelf)
}

func TestDeactivateUser(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)
	ctx := context.Background()

	admin, err := uc.Create(ctx, &dto.CreateUserRequest{Username: "admin1", Password: "secret123", Role: "admin"})
	require.NoError(t, err)
	doctor, err := uc.Create(ctx, &dto.CreateUserRequest{Username: "drhouse", Password: "secret123", Role: "doctor"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(ctx, admin.ID, doctor.ID))

	got, err := uc.GetByID(ctx, doctor.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateUserChangesRole(t *testing.T) {
	db := newTestDB(t)
	uc := newUserUsecase(db)
	ctx := context.Background()

	admin, err := uc.Create(ctx, &dto.CreateUserRequest{Username: "admin1", Password: "secret123", Role: "admin"})
	require.NoError(t, err)
	user, err := uc.Create(ctx, &dto.CreateUserRequest{Username: "frontdesk", Password: "secret123", Role: "receptionist"})
	require.NoError(t, err)

	role := "doctor"
	updated, err := uc.Update(ctx, admin.ID, user.ID, &dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "doctor", updated.Role)

	bad := "janitor"
	_, err = uc.Update(ctx, admin.ID, user.ID, &dto.UpdateUserRequest{Role: &bad})
	assert.ErrorIs(t, err, ErrInvalidRole)
}
