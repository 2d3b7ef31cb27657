package repositories

import (
	"errors"
	"time"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrCandidateExists   = errors.New("candidate already applied")
)

type InterviewRepository interface {
	Create(db *gorm.DB, interview *models.Interview) error
	Update(db *gorm.DB, interview *models.Interview) error
	UpdateStatus(db *gorm.DB, interviewID string, status models.InterviewStatus) error
	Delete(db *gorm.DB, interviewID string) error
	FindByID(db *gorm.DB, id string) (*models.Interview, error)
	FindAll(db *gorm.DB, page, pageSize int) ([]models.Interview, int64, error)
	FindByCreator(db *gorm.DB, creatorID string) ([]models.Interview, error)

	AddCandidate(db *gorm.DB, interviewID, userID string, appliedAt time.Time) error
	ListCandidates(db *gorm.DB, interviewID string) ([]models.InterviewCandidate, error)
	ListByCandidate(db *gorm.DB, userID string) ([]models.InterviewCandidate, error)
}

type InterviewRepositoryImpl struct{}

func NewInterviewRepository() InterviewRepository {
	return &InterviewRepositoryImpl{}
}

func (r *InterviewRepositoryImpl) Create(db *gorm.DB, interview *models.Interview) error {
	return db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) Update(db *gorm.DB, interview *models.Interview) error {
	result := db.Model(interview).Updates(map[string]interface{}{
		"title":        interview.Title,
		"description":  interview.Description,
		"scheduled_at": interview.ScheduledAt,
		"location":     interview.Location,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) UpdateStatus(db *gorm.DB, interviewID string, status models.InterviewStatus) error {
	result := db.Model(&models.Interview{}).
		Where("id = ?", interviewID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) Delete(db *gorm.DB, interviewID string) error {
	if err := db.Delete(&models.InterviewCandidate{}, "interview_id = ?", interviewID).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Interview{}, "id = ?", interviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Interview, error) {
	var interview models.Interview
	err := db.Preload("Creator").First(&interview, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) FindAll(db *gorm.DB, page, pageSize int) ([]models.Interview, int64, error) {
	query := db.Model(&models.Interview{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var interviews []models.Interview
	if err := query.Order("created_at DESC").Find(&interviews).Error; err != nil {
		return nil, 0, err
	}
	return interviews, total, nil
}

func (r *InterviewRepositoryImpl) FindByCreator(db *gorm.DB, creatorID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&interviews).Error
	if err != nil {
		return nil, err
	}
	return interviews, nil
}

// AddCandidate inserts the pivot row; the composite primary key rejects a
// second application from the same user.
func (r *InterviewRepositoryImpl) AddCandidate(db *gorm.DB, interviewID, userID string, appliedAt time.Time) error {
	var existing models.InterviewCandidate
	err := db.First(&existing, "interview_id = ? AND user_id = ?", interviewID, userID).Error
	if err == nil {
		return ErrCandidateExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	candidate := models.InterviewCandidate{
		InterviewID: interviewID,
		UserID:      userID,
		AppliedAt:   appliedAt,
	}
	err = db.Create(&candidate).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCandidateExists
	}
	return err
}

func (r *InterviewRepositoryImpl) ListCandidates(db *gorm.DB, interviewID string) ([]models.InterviewCandidate, error) {
	var candidates []models.InterviewCandidate
	err := db.Preload("User").
		Where("interview_id = ?", interviewID).
		Order("applied_at ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *InterviewRepositoryImpl) ListByCandidate(db *gorm.DB, userID string) ([]models.InterviewCandidate, error) {
	var candidates []models.InterviewCandidate
	err := db.Preload("Interview").Where("user_id = ?", userID).Order("applied_at DESC").Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
