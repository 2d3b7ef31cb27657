package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/email"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func newUserService() services.UserService {
	return services.NewUserService(
		repositories.NewUserRepository(),
		repositories.NewRefreshTokenRepository(),
	)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)

	bio := "Ten years of technical interviewing."
	specialty := "Backend engineering"
	updated, err := svc.UpdateProfile(db, coach.ID, &dto.UpdateProfileRequest{
		Bio:       &bio,
		Specialty: &specialty,
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, specialty, updated.Specialty)
	assert.Equal(t, "Coach", updated.Name, "untouched fields keep their value")
}

func TestListUsersByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService()
	createUser(t, db, "Student One", "s1@test.com", models.UserRoleStudent)
	createUser(t, db, "Student Two", "s2@test.com", models.UserRoleStudent)
	createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)

	res, err := svc.ListUsers(db, &dto.ListUsersRequest{Role: models.UserRoleStudent})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)

	res, err = svc.ListUsers(db, &dto.ListUsersRequest{Search: "student one"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
}

func TestUpdateUserRoleRevokesTokens(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService()
	authSvc := services.NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewRefreshTokenRepository(),
		email.NoopProvider{},
	)

	res, err := authSvc.Register(db, &dto.RegisterRequest{
		Email:    "promote@test.com",
		Password: testPassword,
		Role:     models.UserRoleStudent,
		Name:     "Promote Me",
	})
	require.NoError(t, err)

	promoted, err := svc.UpdateUserRole(db, res.User.ID, models.UserRoleCoach)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCoach, promoted.Role)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", res.User.ID).Error)
	assert.Equal(t, models.UserRoleCoach, reloaded.Role)

	// The role change invalidates outstanding sessions.
	_, err = authSvc.RefreshToken(db, res.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	_, err := svc.UpdateUserRole(db, student.ID, models.UserRole("superuser"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestDeleteUserIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	require.NoError(t, svc.DeleteUser(db, student.ID))

	_, err := svc.GetUser(db, student.ID)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Where("id = ?", student.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "the row survives the soft delete")
}
