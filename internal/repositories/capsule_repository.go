package repositories

import (
	"errors"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCapsuleNotFound = errors.New("capsule not found")

type CapsuleRepository interface {
	Create(db *gorm.DB, capsule *models.Capsule) error
	Update(db *gorm.DB, capsule *models.Capsule) error
	Delete(db *gorm.DB, capsuleID string) error
	FindByID(db *gorm.DB, id string) (*models.Capsule, error)
	FindAll(db *gorm.DB, category string, page, pageSize int) ([]models.Capsule, int64, error)
	FindByAuthor(db *gorm.DB, userID string) ([]models.Capsule, error)
	Search(db *gorm.DB, query string, limit int) ([]models.Capsule, error)
}

type CapsuleRepositoryImpl struct{}

func NewCapsuleRepository() CapsuleRepository {
	return &CapsuleRepositoryImpl{}
}

func (r *CapsuleRepositoryImpl) Create(db *gorm.DB, capsule *models.Capsule) error {
	return db.Create(capsule).Error
}

func (r *CapsuleRepositoryImpl) Update(db *gorm.DB, capsule *models.Capsule) error {
	result := db.Model(capsule).Updates(map[string]interface{}{
		"title":            capsule.Title,
		"description":      capsule.Description,
		"video_url":        capsule.VideoURL,
		"duration_seconds": capsule.DurationSeconds,
		"category":         capsule.Category,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCapsuleNotFound
	}
	return nil
}

func (r *CapsuleRepositoryImpl) Delete(db *gorm.DB, capsuleID string) error {
	result := db.Delete(&models.Capsule{}, "id = ?", capsuleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCapsuleNotFound
	}
	return nil
}

func (r *CapsuleRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Capsule, error) {
	var capsule models.Capsule
	err := db.Preload("Author").First(&capsule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCapsuleNotFound
		}
		return nil, err
	}
	return &capsule, nil
}

func (r *CapsuleRepositoryImpl) FindAll(db *gorm.DB, category string, page, pageSize int) ([]models.Capsule, int64, error) {
	query := db.Model(&models.Capsule{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var capsules []models.Capsule
	if err := query.Preload("Author").Order("created_at DESC").Find(&capsules).Error; err != nil {
		return nil, 0, err
	}
	return capsules, total, nil
}

func (r *CapsuleRepositoryImpl) FindByAuthor(db *gorm.DB, userID string) ([]models.Capsule, error) {
	var capsules []models.Capsule
	err := db.Preload("Author").Where("user_id = ?", userID).Order("created_at DESC").Find(&capsules).Error
	if err != nil {
		return nil, err
	}
	return capsules, nil
}

// Search matches the query against titles and categories, bounded by limit.
func (r *CapsuleRepositoryImpl) Search(db *gorm.DB, query string, limit int) ([]models.Capsule, error) {
	pattern := "%" + query + "%"
	var capsules []models.Capsule
	err := db.Preload("Author").
		Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&capsules).Error
	if err != nil {
		return nil, err
	}
	return capsules, nil
}
