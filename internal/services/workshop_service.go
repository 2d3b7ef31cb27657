package services

import (
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WorkshopService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error)
	Update(db *gorm.DB, workshopID, actorID string, actorRole models.UserRole, req *dto.UpdateWorkshopRequest) (*dto.WorkshopResponse, error)
	Delete(db *gorm.DB, workshopID, actorID string, actorRole models.UserRole) error
	Get(db *gorm.DB, workshopID string) (*dto.WorkshopResponse, error)
	List(db *gorm.DB, req *dto.ListWorkshopsRequest) (*dto.PaginatedResponse, error)
}

type WorkshopServiceImpl struct {
	workshopRepo repositories.WorkshopRepository
}

func NewWorkshopService(workshopRepo repositories.WorkshopRepository) WorkshopService {
	return &WorkshopServiceImpl{workshopRepo: workshopRepo}
}

func (s *WorkshopServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error) {
	workshop := &models.DiffusionWorkshop{
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		Date:             req.Date,
		RegistrationLink: req.RegistrationLink,
	}
	if err := s.workshopRepo.Create(db, workshop); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewWorkshopResponse(workshop), nil
}

func (s *WorkshopServiceImpl) Update(db *gorm.DB, workshopID, actorID string, actorRole models.UserRole, req *dto.UpdateWorkshopRequest) (*dto.WorkshopResponse, error) {
	workshop, err := s.findOwned(db, workshopID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		workshop.Title = *req.Title
	}
	if req.Description != nil {
		workshop.Description = *req.Description
	}
	if req.Type != nil {
		workshop.Type = *req.Type
	}
	if req.Date != nil {
		workshop.Date = *req.Date
	}
	if req.RegistrationLink != nil {
		workshop.RegistrationLink = *req.RegistrationLink
	}

	if err := s.workshopRepo.Update(db, workshop); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewWorkshopResponse(workshop), nil
}

func (s *WorkshopServiceImpl) Delete(db *gorm.DB, workshopID, actorID string, actorRole models.UserRole) error {
	if _, err := s.findOwned(db, workshopID, actorID, actorRole); err != nil {
		return err
	}
	if err := s.workshopRepo.Delete(db, workshopID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *WorkshopServiceImpl) Get(db *gorm.DB, workshopID string) (*dto.WorkshopResponse, error) {
	workshop, err := s.findWorkshop(db, workshopID)
	if err != nil {
		return nil, err
	}
	return dto.NewWorkshopResponse(workshop), nil
}

func (s *WorkshopServiceImpl) List(db *gorm.DB, req *dto.ListWorkshopsRequest) (*dto.PaginatedResponse, error) {
	req.Normalize()

	workshops, total, err := s.workshopRepo.FindWithFilter(db, repositories.WorkshopFilter{
		Type:     req.Type,
		Upcoming: req.Upcoming,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.WorkshopResponse, 0, len(workshops))
	for i := range workshops {
		items = append(items, dto.NewWorkshopResponse(&workshops[i]))
	}
	return dto.NewPaginatedResponse(items, total, req.Page, req.PageSize), nil
}

func (s *WorkshopServiceImpl) findWorkshop(db *gorm.DB, workshopID string) (*models.DiffusionWorkshop, error) {
	workshop, err := s.workshopRepo.FindByID(db, workshopID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkshopNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return workshop, nil
}

func (s *WorkshopServiceImpl) findOwned(db *gorm.DB, workshopID, actorID string, actorRole models.UserRole) (*models.DiffusionWorkshop, error) {
	workshop, err := s.findWorkshop(db, workshopID)
	if err != nil {
		return nil, err
	}
	if workshop.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotOwner
	}
	return workshop, nil
}
