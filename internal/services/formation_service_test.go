package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func newFormationService() services.FormationService {
	return services.NewFormationService(
		repositories.NewFormationRepository(),
		repositories.NewPaymentRepository(),
		repositories.NewUserRepository(),
	)
}

func createFormation(t *testing.T, db *gorm.DB, svc services.FormationService, title string) *dto.FormationResponse {
	t.Helper()

	formation, err := svc.Create(db, &dto.CreateFormationRequest{
		Title: title,
		Level: "beginner",
		Price: 99.90,
	})
	require.NoError(t, err)
	return formation
}

func TestPayGrantsFormationAccess(t *testing.T) {
	db := newTestDB(t)
	svc := newFormationService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	formation := createFormation(t, db, svc, "Go for Recruiters")

	before, err := svc.Get(db, formation.ID, student.ID)
	require.NoError(t, err)
	assert.False(t, before.HasAccess)

	_, err = svc.Pay(db, student.ID, &dto.PayFormationRequest{FormationID: formation.ID, Amount: 99.90})
	require.NoError(t, err)

	after, err := svc.Get(db, formation.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, after.HasAccess)

	// The standalone access check reports the same state.
	access, err := svc.Access(db, formation.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, formation.ID, access.FormationID)
	assert.True(t, access.HasAccess)
	assert.False(t, access.Completed)

	_, err = svc.Access(db, "00000000-0000-0000-0000-000000000000", student.ID)
	require.Error(t, err)
}

func TestGlobalPaymentUnlocksCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := newFormationService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	first := createFormation(t, db, svc, "First Formation")
	second := createFormation(t, db, svc, "Second Formation")

	payment, err := svc.Pay(db, student.ID, &dto.PayFormationRequest{Amount: 299})
	require.NoError(t, err)
	assert.True(t, payment.IsGlobal)

	for _, id := range []string{first.ID, second.ID} {
		res, err := svc.Get(db, id, student.ID)
		require.NoError(t, err)
		assert.True(t, res.HasAccess)
	}
}

func TestCompleteRequiresAccess(t *testing.T) {
	db := newTestDB(t)
	svc := newFormationService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	formation := createFormation(t, db, svc, "Locked Formation")

	_, err := svc.Complete(db, student.ID, formation.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoFormationAccess)
}

func TestCompleteAwardsPointsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newFormationService()
	student := createUser(t, db, "Student", "student@test.com", models.UserRoleStudent)

	formation := createFormation(t, db, svc, "Paid Formation")
	_, err := svc.Pay(db, student.ID, &dto.PayFormationRequest{FormationID: formation.ID, Amount: 50})
	require.NoError(t, err)

	first, err := svc.Complete(db, student.ID, formation.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, first.PointsAwarded)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", student.ID).Error)
	assert.Equal(t, 50, user.Points)

	// Repeating the formation refreshes the completion but not the points.
	second, err := svc.Complete(db, student.ID, formation.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, second.PointsAwarded)

	require.NoError(t, db.First(&user, "id = ?", student.ID).Error)
	assert.Equal(t, 50, user.Points)

	mine, err := svc.MyFormations(db, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, formation.ID, mine[0].FormationID)
}

func TestFormationListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newFormationService()

	createFormation(t, db, svc, "Intro to Sourcing")
	advanced, err := svc.Create(db, &dto.CreateFormationRequest{Title: "Advanced Interviewing", Level: "advanced"})
	require.NoError(t, err)

	req := &dto.ListFormationsRequest{Level: "advanced"}
	res, err := svc.List(db, req, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	items := res.Items.([]*dto.FormationResponse)
	require.Len(t, items, 1)
	assert.Equal(t, advanced.ID, items[0].ID)
}
