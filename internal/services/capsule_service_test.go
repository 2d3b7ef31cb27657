package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func newCapsuleService() services.CapsuleService {
	return services.NewCapsuleService(
		repositories.NewCapsuleRepository(),
		repositories.NewUserRepository(),
	)
}

func TestCapsuleOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newCapsuleService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)
	rival := createUser(t, db, "Rival", "rival@test.com", models.UserRoleCoach)

	capsule, err := svc.Create(db, coach.ID, &dto.CreateCapsuleRequest{
		Title:    "STAR method in five minutes",
		VideoURL: "https://videos.test/star.mp4",
		Category: "interviewing",
	})
	require.NoError(t, err)
	assert.Equal(t, coach.Name, capsule.Author)

	newTitle := "STAR method, revised"
	_, err = svc.Update(db, capsule.ID, rival.ID, models.UserRoleCoach, &dto.UpdateCapsuleRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	updated, err := svc.Update(db, capsule.ID, coach.ID, models.UserRoleCoach, &dto.UpdateCapsuleRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	err = svc.Delete(db, capsule.ID, rival.ID, models.UserRoleCoach)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	// Admins moderate any capsule.
	require.NoError(t, svc.Delete(db, capsule.ID, "admin-id", models.UserRoleAdmin))

	_, err = svc.Get(db, capsule.ID)
	assert.Error(t, err)
}

func TestCapsuleListByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newCapsuleService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)

	_, err := svc.Create(db, coach.ID, &dto.CreateCapsuleRequest{
		Title:    "Salary negotiation basics",
		VideoURL: "https://videos.test/salary.mp4",
		Category: "negotiation",
	})
	require.NoError(t, err)
	_, err = svc.Create(db, coach.ID, &dto.CreateCapsuleRequest{
		Title:    "CV screening walkthrough",
		VideoURL: "https://videos.test/cv.mp4",
		Category: "sourcing",
	})
	require.NoError(t, err)

	res, err := svc.List(db, &dto.ListCapsulesRequest{Category: "negotiation"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	mine, err := svc.ListMine(db, coach.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
