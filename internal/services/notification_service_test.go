package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
)

func newNotificationService() services.NotificationService {
	return services.NewNotificationService(
		repositories.NewNotificationRepository(),
		repositories.NewUserRepository(),
	)
}

func TestBroadcastByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService()
	studentA := createUser(t, db, "Student A", "a@test.com", models.UserRoleStudent)
	studentB := createUser(t, db, "Student B", "b@test.com", models.UserRoleStudent)
	coach := createUser(t, db, "Coach", "coach@test.com", models.UserRoleCoach)

	broadcast, err := svc.Broadcast(db, &dto.BroadcastNotificationRequest{
		Title:   "Maintenance window",
		Message: "The platform goes down Saturday night.",
		Role:    models.UserRoleStudent,
	})
	require.NoError(t, err)
	assert.True(t, broadcast.IsBroadcast)

	for _, student := range []*models.User{studentA, studentB} {
		unread, err := svc.UnreadCount(db, student.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), unread.Unread)
	}

	unread, err := svc.UnreadCount(db, coach.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread.Unread)
}

func TestBroadcastReadStateIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService()
	studentA := createUser(t, db, "Student A", "a@test.com", models.UserRoleStudent)
	studentB := createUser(t, db, "Student B", "b@test.com", models.UserRoleStudent)

	broadcast, err := svc.Broadcast(db, &dto.BroadcastNotificationRequest{
		Title:   "Welcome aboard",
		Message: "New formations just landed.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(db, broadcast.ID, studentA.ID))

	unreadA, err := svc.UnreadCount(db, studentA.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unreadA.Unread)

	unreadB, err := svc.UnreadCount(db, studentB.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unreadB.Unread)
}

func TestListMixesDirectAndBroadcast(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	direct := &models.Notification{
		UserID:  &student.ID,
		Type:    "application_status",
		Title:   "Application accepted",
		Message: "Congratulations!",
	}
	require.NoError(t, db.Create(direct).Error)

	_, err := svc.Broadcast(db, &dto.BroadcastNotificationRequest{
		Title:   "Reminder",
		Message: "Workshops start Monday.",
	})
	require.NoError(t, err)

	res, err := svc.List(db, student.ID, &dto.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)

	require.NoError(t, svc.MarkAllRead(db, student.ID))

	onlyUnread, err := svc.List(db, student.ID, &dto.ListNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(0), onlyUnread.Total)

	unread, err := svc.UnreadCount(db, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread.Unread)
}
