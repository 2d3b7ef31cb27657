package repositories

import (
	"errors"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobOfferNotFound    = errors.New("job offer not found")
	ErrApplicationExists   = errors.New("application already exists")
	ErrApplicationNotFound = errors.New("application not found")
)

// JobOfferFilter narrows offer listings.
type JobOfferFilter struct {
	Location string
	Contract string
	Search   string
	OwnerID  string
	Page     int
	PageSize int
}

type JobOfferRepository interface {
	Create(db *gorm.DB, offer *models.JobOffer) error
	Update(db *gorm.DB, offer *models.JobOffer) error
	Delete(db *gorm.DB, offerID string) error
	FindByID(db *gorm.DB, id string) (*models.JobOffer, error)
	FindWithFilter(db *gorm.DB, criteria JobOfferFilter) ([]models.JobOffer, int64, error)

	CreateApplication(db *gorm.DB, application *models.JobApplication) error
	FindApplicationByID(db *gorm.DB, id string) (*models.JobApplication, error)
	ListApplicationsByOffer(db *gorm.DB, offerID string) ([]models.JobApplication, error)
	ListApplicationsByUser(db *gorm.DB, userID string) ([]models.JobApplication, error)
	UpdateApplicationStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus) error
}

type JobOfferRepositoryImpl struct{}

func NewJobOfferRepository() JobOfferRepository {
	return &JobOfferRepositoryImpl{}
}

func (r *JobOfferRepositoryImpl) Create(db *gorm.DB, offer *models.JobOffer) error {
	return db.Create(offer).Error
}

func (r *JobOfferRepositoryImpl) Update(db *gorm.DB, offer *models.JobOffer) error {
	result := db.Model(offer).Updates(map[string]interface{}{
		"title":       offer.Title,
		"description": offer.Description,
		"location":    offer.Location,
		"contract":    offer.Contract,
		"salary":      offer.Salary,
		"status":      offer.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobOfferNotFound
	}
	return nil
}

func (r *JobOfferRepositoryImpl) Delete(db *gorm.DB, offerID string) error {
	if err := db.Delete(&models.JobApplication{}, "job_offer_id = ?", offerID).Error; err != nil {
		return err
	}
	result := db.Delete(&models.JobOffer{}, "id = ?", offerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobOfferNotFound
	}
	return nil
}

func (r *JobOfferRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobOffer, error) {
	var offer models.JobOffer
	err := db.Preload("Owner").First(&offer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *JobOfferRepositoryImpl) FindWithFilter(db *gorm.DB, criteria JobOfferFilter) ([]models.JobOffer, int64, error) {
	query := db.Model(&models.JobOffer{})

	if criteria.Location != "" {
		query = query.Where("location = ?", criteria.Location)
	}
	if criteria.Contract != "" {
		query = query.Where("contract = ?", criteria.Contract)
	}
	if criteria.OwnerID != "" {
		query = query.Where("user_id = ?", criteria.OwnerID)
	}
	if criteria.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+criteria.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Offset((criteria.Page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	var offers []models.JobOffer
	if err := query.Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

// CreateApplication inserts the pivot row; the composite unique index is the
// final arbiter of one application per (user, offer).
func (r *JobOfferRepositoryImpl) CreateApplication(db *gorm.DB, application *models.JobApplication) error {
	var existing models.JobApplication
	err := db.First(&existing, "user_id = ? AND job_offer_id = ?", application.UserID, application.JobOfferID).Error
	if err == nil {
		return ErrApplicationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = db.Create(application).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrApplicationExists
	}
	return err
}

func (r *JobOfferRepositoryImpl) FindApplicationByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.Preload("Applicant").Preload("JobOffer").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *JobOfferRepositoryImpl) ListApplicationsByOffer(db *gorm.DB, offerID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("Applicant").
		Where("job_offer_id = ?", offerID).
		Order("created_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *JobOfferRepositoryImpl) ListApplicationsByUser(db *gorm.DB, userID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("JobOffer").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *JobOfferRepositoryImpl) UpdateApplicationStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus) error {
	result := db.Model(&models.JobApplication{}).
		Where("id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
