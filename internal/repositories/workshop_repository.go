package repositories

import (
	"errors"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkshopNotFound = errors.New("workshop not found")

// WorkshopFilter narrows workshop listings.
type WorkshopFilter struct {
	Type     models.WorkshopType
	Upcoming bool
	Page     int
	PageSize int
}

type WorkshopRepository interface {
	Create(db *gorm.DB, workshop *models.DiffusionWorkshop) error
	Update(db *gorm.DB, workshop *models.DiffusionWorkshop) error
	Delete(db *gorm.DB, workshopID string) error
	FindByID(db *gorm.DB, id string) (*models.DiffusionWorkshop, error)
	FindWithFilter(db *gorm.DB, criteria WorkshopFilter) ([]models.DiffusionWorkshop, int64, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.DiffusionWorkshop, error)
}

type WorkshopRepositoryImpl struct{}

func NewWorkshopRepository() WorkshopRepository {
	return &WorkshopRepositoryImpl{}
}

func (r *WorkshopRepositoryImpl) Create(db *gorm.DB, workshop *models.DiffusionWorkshop) error {
	return db.Create(workshop).Error
}

func (r *WorkshopRepositoryImpl) Update(db *gorm.DB, workshop *models.DiffusionWorkshop) error {
	result := db.Model(workshop).Updates(map[string]interface{}{
		"title":             workshop.Title,
		"description":       workshop.Description,
		"type":              workshop.Type,
		"date":              workshop.Date,
		"registration_link": workshop.RegistrationLink,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkshopNotFound
	}
	return nil
}

func (r *WorkshopRepositoryImpl) Delete(db *gorm.DB, workshopID string) error {
	result := db.Delete(&models.DiffusionWorkshop{}, "id = ?", workshopID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkshopNotFound
	}
	return nil
}

func (r *WorkshopRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.DiffusionWorkshop, error) {
	var workshop models.DiffusionWorkshop
	err := db.First(&workshop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	return &workshop, nil
}

func (r *WorkshopRepositoryImpl) FindWithFilter(db *gorm.DB, criteria WorkshopFilter) ([]models.DiffusionWorkshop, int64, error) {
	query := db.Model(&models.DiffusionWorkshop{})

	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.Upcoming {
		query = query.Where("date >= CURRENT_TIMESTAMP")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Offset((criteria.Page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	var workshops []models.DiffusionWorkshop
	if err := query.Order("date ASC").Find(&workshops).Error; err != nil {
		return nil, 0, err
	}
	return workshops, total, nil
}

func (r *WorkshopRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.DiffusionWorkshop, error) {
	var workshops []models.DiffusionWorkshop
	err := db.Where("user_id = ?", ownerID).Order("date ASC").Find(&workshops).Error
	if err != nil {
		return nil, err
	}
	return workshops, nil
}
