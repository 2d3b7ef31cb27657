package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func newInterviewService() services.InterviewService {
	return services.NewInterviewService(
		repositories.NewInterviewRepository(),
		repositories.NewNotificationRepository(),
	)
}

func TestCreateInterviewStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)

	pending, err := svc.Create(db, coach.ID, &dto.CreateInterviewRequest{Title: "Mock Interview"})
	require.NoError(t, err)
	assert.Equal(t, models.InterviewStatusPending, pending.Status)

	when := time.Now().Add(48 * time.Hour)
	scheduled, err := svc.Create(db, coach.ID, &dto.CreateInterviewRequest{
		Title:       "Scheduled Interview",
		ScheduledAt: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InterviewStatusScheduled, scheduled.Status)
}

func TestInterviewApplyDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	interview, err := svc.Create(db, coach.ID, &dto.CreateInterviewRequest{Title: "Open Interview"})
	require.NoError(t, err)

	require.NoError(t, svc.Apply(db, interview.ID, student.ID))

	err = svc.Apply(db, interview.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCandidate)

	mine, err := svc.MyApplications(db, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, interview.ID, mine[0].ID)
}

func TestInterviewApplyClosedRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	interview, err := svc.Create(db, coach.ID, &dto.CreateInterviewRequest{Title: "Finished Interview"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(db, interview.ID, coach.ID, models.UserRoleCoach, models.InterviewStatusCompleted)
	require.NoError(t, err)

	err = svc.Apply(db, interview.ID, student.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestInterviewStatusTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)

	interview, err := svc.Create(db, coach.ID, &dto.CreateInterviewRequest{Title: "One-way Interview"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(db, interview.ID, coach.ID, models.UserRoleCoach, models.InterviewStatusCancelled)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(db, interview.ID, coach.ID, models.UserRoleCoach, models.InterviewStatusScheduled)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestListCandidatesOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService()
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)
	rival := createUser(t, db, "Rival", "rival@test.com", models.UserRoleCoach)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	interview, err := svc.Create(db, coach.ID, &dto.CreateInterviewRequest{Title: "Private Interview"})
	require.NoError(t, err)
	require.NoError(t, svc.Apply(db, interview.ID, student.ID))

	_, err = svc.ListCandidates(db, interview.ID, rival.ID, models.UserRoleCoach)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	candidates, err := svc.ListCandidates(db, interview.ID, coach.ID, models.UserRoleCoach)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, student.ID, candidates[0].UserID)
	assert.Equal(t, student.Email, candidates[0].Email)

	// Admins bypass the ownership check.
	_, err = svc.ListCandidates(db, interview.ID, "some-admin", models.UserRoleAdmin)
	assert.NoError(t, err)
}
