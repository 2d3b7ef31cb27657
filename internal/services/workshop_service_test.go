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

func newWorkshopService() services.WorkshopService {
	return services.NewWorkshopService(repositories.NewWorkshopRepository())
}

func TestWorkshopUpcomingFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkshopService()
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)

	_, err := svc.Create(db, enterprise.ID, &dto.CreateWorkshopRequest{
		Title: "Last month's webinar",
		Type:  models.WorkshopTypeWebinar,
		Date:  time.Now().Add(-30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	future, err := svc.Create(db, enterprise.ID, &dto.CreateWorkshopRequest{
		Title: "Next month's conference",
		Type:  models.WorkshopTypeConference,
		Date:  time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	all, err := svc.List(db, &dto.ListWorkshopsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	upcoming, err := svc.List(db, &dto.ListWorkshopsRequest{Upcoming: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upcoming.Total)

	items := upcoming.Items.([]*dto.WorkshopResponse)
	require.Len(t, items, 1)
	assert.Equal(t, future.ID, items[0].ID)

	byType, err := svc.List(db, &dto.ListWorkshopsRequest{Type: models.WorkshopTypeWebinar})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byType.Total)
}

func TestWorkshopOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkshopService()
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)
	rival := createUser(t, db, "Rival", "rival@test.com", models.UserRoleEnterprise)

	workshop, err := svc.Create(db, enterprise.ID, &dto.CreateWorkshopRequest{
		Title: "Hiring pipeline workshop",
		Type:  models.WorkshopTypeWorkshop,
		Date:  time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)

	err = svc.Delete(db, workshop.ID, rival.ID, models.UserRoleEnterprise)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	require.NoError(t, svc.Delete(db, workshop.ID, enterprise.ID, models.UserRoleEnterprise))

	_, err = svc.Get(db, workshop.ID)
	assert.Error(t, err)
}
