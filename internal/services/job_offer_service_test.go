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

func newJobOfferService() services.JobOfferService {
	return services.NewJobOfferService(
		repositories.NewJobOfferRepository(),
		repositories.NewUserRepository(),
		repositories.NewNotificationRepository(),
		email.NoopProvider{},
	)
}

func TestApplyToJobOffer(t *testing.T) {
	db := newTestDB(t)
	svc := newJobOfferService()
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	offer, err := svc.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{
		Title:    "Junior Backend Developer",
		Location: "Paris",
		Contract: "CDI",
	})
	require.NoError(t, err)
	assert.Equal(t, "open", offer.Status)

	application, err := svc.Apply(db, offer.ID, student.ID, &dto.ApplyJobOfferRequest{
		CoverLetter: "I would love to join.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)

	// One application per user per offer.
	_, err = svc.Apply(db, offer.ID, student.ID, &dto.ApplyJobOfferRequest{})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

	mine, err := svc.MyApplications(db, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, offer.ID, mine[0].JobOfferID)
}

func TestApplyToClosedOfferRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newJobOfferService()
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	offer, err := svc.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{Title: "Short-lived Offer"})
	require.NoError(t, err)

	closed := "closed"
	_, err = svc.Update(db, offer.ID, enterprise.ID, models.UserRoleEnterprise, &dto.UpdateJobOfferRequest{Status: &closed})
	require.NoError(t, err)

	_, err = svc.Apply(db, offer.ID, student.ID, &dto.ApplyJobOfferRequest{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestSetApplicationStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newJobOfferService()
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)
	rival := createUser(t, db, "Rival", "rival@test.com", models.UserRoleEnterprise)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	offer, err := svc.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{Title: "Data Analyst"})
	require.NoError(t, err)

	application, err := svc.Apply(db, offer.ID, student.ID, &dto.ApplyJobOfferRequest{})
	require.NoError(t, err)

	// Only the offer owner (or an admin) decides.
	_, err = svc.SetApplicationStatus(db, application.ID, rival.ID, models.UserRoleEnterprise, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	decided, err := svc.SetApplicationStatus(db, application.ID, enterprise.ID, models.UserRoleEnterprise, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, decided.Status)

	// Accepted and rejected are terminal.
	_, err = svc.SetApplicationStatus(db, application.ID, enterprise.ID, models.UserRoleEnterprise, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrApplicationStatusFinal)
}

func TestApplyNotifiesOfferOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newJobOfferService()
	notifications := services.NewNotificationService(
		repositories.NewNotificationRepository(),
		repositories.NewUserRepository(),
	)
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	offer, err := svc.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{Title: "DevOps Engineer"})
	require.NoError(t, err)

	_, err = svc.Apply(db, offer.ID, student.ID, &dto.ApplyJobOfferRequest{})
	require.NoError(t, err)

	unread, err := notifications.UnreadCount(db, enterprise.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread.Unread)
}

func TestJobOfferListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newJobOfferService()
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)

	_, err := svc.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{Title: "Backend Developer", Location: "Paris"})
	require.NoError(t, err)
	_, err = svc.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{Title: "Frontend Developer", Location: "Lyon"})
	require.NoError(t, err)

	res, err := svc.List(db, &dto.ListJobOffersRequest{Location: "Paris"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	res, err = svc.List(db, &dto.ListJobOffersRequest{Search: "developer"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
}
