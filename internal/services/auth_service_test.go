package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func newAuthService() services.AuthService {
	return services.NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewRefreshTokenRepository(),
		email.NoopProvider{},
	)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	res, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "student@test.com",
		Password: testPassword,
		Role:     models.UserRoleStudent,
		Name:     "Test Student",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	require.NotNil(t, res.User)
	assert.Equal(t, models.UserRoleStudent, res.User.Role)

	login, err := svc.Login(db, &dto.LoginRequest{Email: "student@test.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "student@test.com", Password: "wrong_password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	req := &dto.RegisterRequest{
		Email:    "dup@test.com",
		Password: testPassword,
		Role:     models.UserRoleCoach,
		Name:     "First Coach",
	}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	_, err = svc.Register(db, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterAdminRoleRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "admin@test.com",
		Password: testPassword,
		Role:     models.UserRoleAdmin,
		Name:     "Sneaky Admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "weak@test.com",
		Password: "short",
		Role:     models.UserRoleStudent,
		Name:     "Weak Password",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRefreshTokenRotation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	res, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "rotate@test.com",
		Password: testPassword,
		Role:     models.UserRoleStudent,
		Name:     "Rotate Me",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(db, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.NotEqual(t, res.RefreshToken, refreshed.RefreshToken)

	// The consumed token must not work a second time.
	_, err = svc.RefreshToken(db, res.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.RefreshToken(db, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestLogoutUnknownTokenIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	assert.NoError(t, svc.Logout(db, "never-issued"))
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	res, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "change@test.com",
		Password: testPassword,
		Role:     models.UserRoleStudent,
		Name:     "Change Me",
	})
	require.NoError(t, err)
	userID := res.User.ID

	err = svc.ChangePassword(db, userID, &dto.ChangePasswordRequest{
		CurrentPassword: "not_the_password",
		NewPassword:     "another_password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = svc.ChangePassword(db, userID, &dto.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "another_password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "change@test.com", Password: testPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "change@test.com", Password: "another_password123"})
	assert.NoError(t, err)

	// The new hash is actually persisted, not just mutated in memory.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", userID).Error)
	assert.True(t, auth.CheckPasswordHash("another_password123", reloaded.PasswordHash))
	assert.False(t, auth.CheckPasswordHash(testPassword, reloaded.PasswordHash))

	// Changing the password revokes outstanding refresh tokens.
	_, err = svc.RefreshToken(db, res.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
