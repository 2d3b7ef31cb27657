package repositories

import (
	"errors"
	"time"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrFormationNotFound  = errors.New("formation not found")
	ErrCompletionNotFound = errors.New("completion not found")
)

// FormationFilter narrows catalog listings.
type FormationFilter struct {
	Level    string
	Search   string
	Page     int
	PageSize int
}

type FormationRepository interface {
	Create(db *gorm.DB, formation *models.Formation) error
	Update(db *gorm.DB, formation *models.Formation) error
	Delete(db *gorm.DB, formationID string) error
	FindByID(db *gorm.DB, id string) (*models.Formation, error)
	FindWithFilter(db *gorm.DB, criteria FormationFilter) ([]models.Formation, int64, error)

	UpsertCompletion(db *gorm.DB, userID, formationID string, completedAt time.Time) error
	FindCompletion(db *gorm.DB, userID, formationID string) (*models.FormationCompletion, error)
	ListCompletionsByUser(db *gorm.DB, userID string) ([]models.FormationCompletion, error)
}

type FormationRepositoryImpl struct{}

func NewFormationRepository() FormationRepository {
	return &FormationRepositoryImpl{}
}

func (r *FormationRepositoryImpl) Create(db *gorm.DB, formation *models.Formation) error {
	return db.Create(formation).Error
}

func (r *FormationRepositoryImpl) Update(db *gorm.DB, formation *models.Formation) error {
	result := db.Model(formation).Updates(map[string]interface{}{
		"title":          formation.Title,
		"description":    formation.Description,
		"duration_hours": formation.DurationHours,
		"level":          formation.Level,
		"rating":         formation.Rating,
		"price":          formation.Price,
		"image_path":     formation.ImagePath,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormationNotFound
	}
	return nil
}

func (r *FormationRepositoryImpl) Delete(db *gorm.DB, formationID string) error {
	result := db.Delete(&models.Formation{}, "id = ?", formationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormationNotFound
	}
	return nil
}

func (r *FormationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Formation, error) {
	var formation models.Formation
	err := db.First(&formation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}
	return &formation, nil
}

func (r *FormationRepositoryImpl) FindWithFilter(db *gorm.DB, criteria FormationFilter) ([]models.Formation, int64, error) {
	query := db.Model(&models.Formation{})

	if criteria.Level != "" {
		query = query.Where("level = ?", criteria.Level)
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

	var formations []models.Formation
	if err := query.Order("created_at DESC").Find(&formations).Error; err != nil {
		return nil, 0, err
	}
	return formations, total, nil
}

// UpsertCompletion records the completion timestamp; replaying the completion
// only refreshes the timestamp.
func (r *FormationRepositoryImpl) UpsertCompletion(db *gorm.DB, userID, formationID string, completedAt time.Time) error {
	completion := models.FormationCompletion{
		UserID:      userID,
		FormationID: formationID,
		CompletedAt: completedAt,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "formation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_at"}),
	}).Create(&completion).Error
}

func (r *FormationRepositoryImpl) FindCompletion(db *gorm.DB, userID, formationID string) (*models.FormationCompletion, error) {
	var completion models.FormationCompletion
	err := db.First(&completion, "user_id = ? AND formation_id = ?", userID, formationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompletionNotFound
		}
		return nil, err
	}
	return &completion, nil
}

func (r *FormationRepositoryImpl) ListCompletionsByUser(db *gorm.DB, userID string) ([]models.FormationCompletion, error) {
	var completions []models.FormationCompletion
	err := db.Preload("Formation").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}
