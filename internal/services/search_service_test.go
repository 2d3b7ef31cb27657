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

func newSearchService() services.SearchService {
	return services.NewSearchService(
		repositories.NewUserRepository(),
		repositories.NewFormationRepository(),
		repositories.NewCapsuleRepository(),
		repositories.NewJobOfferRepository(),
	)
}

func TestSearchAcrossDomains(t *testing.T) {
	db := newTestDB(t)
	svc := newSearchService()
	coach := createUser(t, db, "Golang Coach", "golang@test.com", models.UserRoleCoach)
	enterprise := createUser(t, db, "Acme", "acme@test.com", models.UserRoleEnterprise)

	formations := newFormationService()
	_, err := formations.Create(db, &dto.CreateFormationRequest{Title: "Golang Fundamentals"})
	require.NoError(t, err)

	capsules := newCapsuleService()
	_, err = capsules.Create(db, coach.ID, &dto.CreateCapsuleRequest{
		Title:    "Golang interview drills",
		VideoURL: "https://videos.test/golang.mp4",
	})
	require.NoError(t, err)

	offers := newJobOfferService()
	_, err = offers.Create(db, enterprise.ID, &dto.CreateJobOfferRequest{Title: "Golang Developer"})
	require.NoError(t, err)

	res, err := svc.Search(db, &dto.SearchRequest{Query: "golang"})
	require.NoError(t, err)
	assert.Len(t, res.Users, 1)
	assert.Len(t, res.Formations, 1)
	assert.Len(t, res.Capsules, 1)
	assert.Len(t, res.JobOffers, 1)
}

func TestSearchEmptyQueryReturnsEmptyLists(t *testing.T) {
	db := newTestDB(t)
	svc := newSearchService()
	createUser(t, db, "Someone", "someone@test.com", models.UserRoleStudent)

	res, err := svc.Search(db, &dto.SearchRequest{Query: "   "})
	require.NoError(t, err)
	assert.Empty(t, res.Users)
	assert.Empty(t, res.Formations)
}

func TestSearchNoMatchesReturnsEmptySlices(t *testing.T) {
	db := newTestDB(t)
	svc := newSearchService()

	res, err := svc.Search(db, &dto.SearchRequest{Query: "nothing here"})
	require.NoError(t, err)
	assert.NotNil(t, res.Users)
	assert.Empty(t, res.Users)
	assert.NotNil(t, res.Formations)
	assert.Empty(t, res.Formations)
	assert.NotNil(t, res.Capsules)
	assert.Empty(t, res.Capsules)
	assert.NotNil(t, res.JobOffers)
	assert.Empty(t, res.JobOffers)
}
