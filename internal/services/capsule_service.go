package services

import (
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CapsuleService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateCapsuleRequest) (*dto.CapsuleResponse, error)
	Update(db *gorm.DB, capsuleID, actorID string, actorRole models.UserRole, req *dto.UpdateCapsuleRequest) (*dto.CapsuleResponse, error)
	Delete(db *gorm.DB, capsuleID, actorID string, actorRole models.UserRole) error
	Get(db *gorm.DB, capsuleID string) (*dto.CapsuleResponse, error)
	List(db *gorm.DB, req *dto.ListCapsulesRequest) (*dto.PaginatedResponse, error)
	ListMine(db *gorm.DB, userID string) ([]*dto.CapsuleResponse, error)
}

type CapsuleServiceImpl struct {
	capsuleRepo repositories.CapsuleRepository
	userRepo    repositories.UserRepository
}

func NewCapsuleService(
	capsuleRepo repositories.CapsuleRepository,
	userRepo repositories.UserRepository,
) CapsuleService {
	return &CapsuleServiceImpl{
		capsuleRepo: capsuleRepo,
		userRepo:    userRepo,
	}
}

func (s *CapsuleServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateCapsuleRequest) (*dto.CapsuleResponse, error) {
	capsule := &models.Capsule{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        req.VideoURL,
		DurationSeconds: req.DurationSeconds,
		Category:        req.Category,
	}
	if err := s.capsuleRepo.Create(db, capsule); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user, err := s.userRepo.FindByID(db, userID); err == nil {
		capsule.Author = user
	}
	return dto.NewCapsuleResponse(capsule), nil
}

func (s *CapsuleServiceImpl) Update(db *gorm.DB, capsuleID, actorID string, actorRole models.UserRole, req *dto.UpdateCapsuleRequest) (*dto.CapsuleResponse, error) {
	capsule, err := s.findOwned(db, capsuleID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		capsule.Title = *req.Title
	}
	if req.Description != nil {
		capsule.Description = *req.Description
	}
	if req.VideoURL != nil {
		capsule.VideoURL = *req.VideoURL
	}
	if req.DurationSeconds != nil {
		capsule.DurationSeconds = *req.DurationSeconds
	}
	if req.Category != nil {
		capsule.Category = *req.Category
	}

	if err := s.capsuleRepo.Update(db, capsule); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCapsuleResponse(capsule), nil
}

func (s *CapsuleServiceImpl) Delete(db *gorm.DB, capsuleID, actorID string, actorRole models.UserRole) error {
	if _, err := s.findOwned(db, capsuleID, actorID, actorRole); err != nil {
		return err
	}
	if err := s.capsuleRepo.Delete(db, capsuleID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CapsuleServiceImpl) Get(db *gorm.DB, capsuleID string) (*dto.CapsuleResponse, error) {
	capsule, err := s.capsuleRepo.FindByID(db, capsuleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCapsuleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCapsuleResponse(capsule), nil
}

func (s *CapsuleServiceImpl) List(db *gorm.DB, req *dto.ListCapsulesRequest) (*dto.PaginatedResponse, error) {
	req.Normalize()

	capsules, total, err := s.capsuleRepo.FindAll(db, req.Category, req.Page, req.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.CapsuleResponse, 0, len(capsules))
	for i := range capsules {
		items = append(items, dto.NewCapsuleResponse(&capsules[i]))
	}
	return dto.NewPaginatedResponse(items, total, req.Page, req.PageSize), nil
}

func (s *CapsuleServiceImpl) ListMine(db *gorm.DB, userID string) ([]*dto.CapsuleResponse, error) {
	capsules, err := s.capsuleRepo.FindByAuthor(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.CapsuleResponse, 0, len(capsules))
	for i := range capsules {
		items = append(items, dto.NewCapsuleResponse(&capsules[i]))
	}
	return items, nil
}

func (s *CapsuleServiceImpl) findOwned(db *gorm.DB, capsuleID, actorID string, actorRole models.UserRole) (*models.Capsule, error) {
	capsule, err := s.capsuleRepo.FindByID(db, capsuleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCapsuleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if capsule.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotOwner
	}
	return capsule, nil
}
