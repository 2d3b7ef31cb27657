package services

import (
	"strings"

	"talenthub_backend/internal/config"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultSearchLimit = 20

// SearchService runs one query across users, formations, capsules and job
// offers.
type SearchService interface {
	Search(db *gorm.DB, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type SearchServiceImpl struct {
	userRepo      repositories.UserRepository
	formationRepo repositories.FormationRepository
	capsuleRepo   repositories.CapsuleRepository
	jobOfferRepo  repositories.JobOfferRepository
}

func NewSearchService(
	userRepo repositories.UserRepository,
	formationRepo repositories.FormationRepository,
	capsuleRepo repositories.CapsuleRepository,
	jobOfferRepo repositories.JobOfferRepository,
) SearchService {
	return &SearchServiceImpl{
		userRepo:      userRepo,
		formationRepo: formationRepo,
		capsuleRepo:   capsuleRepo,
		jobOfferRepo:  jobOfferRepo,
	}
}

func (s *SearchServiceImpl) Search(db *gorm.DB, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	query := strings.ToLower(strings.TrimSpace(req.Query))
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	result := &dto.SearchResponse{
		Users:      []*dto.UserDTO{},
		Formations: []*dto.FormationResponse{},
		Capsules:   []*dto.CapsuleResponse{},
		JobOffers:  []*dto.JobOfferResponse{},
	}
	if query == "" {
		return result, nil
	}
	baseURL := config.GetConfig().Storage.BaseURL

	users, err := s.userRepo.Search(db, query, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range users {
		result.Users = append(result.Users, dto.NewUserDTO(&users[i], baseURL))
	}

	formations, _, err := s.formationRepo.FindWithFilter(db, repositories.FormationFilter{
		Search: query, Page: 1, PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range formations {
		result.Formations = append(result.Formations, dto.NewFormationResponse(&formations[i], baseURL, false, false))
	}

	capsules, err := s.capsuleRepo.Search(db, query, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range capsules {
		result.Capsules = append(result.Capsules, dto.NewCapsuleResponse(&capsules[i]))
	}

	offers, _, err := s.jobOfferRepo.FindWithFilter(db, repositories.JobOfferFilter{
		Search: query, Page: 1, PageSize: limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range offers {
		result.JobOffers = append(result.JobOffers, dto.NewJobOfferResponse(&offers[i]))
	}

	return result, nil
}
