package repositories

import (
	"errors"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTestNotFound     = errors.New("test not found")
	ErrQuestionNotFound = errors.New("question not found")
)

type TestRepository interface {
	Create(db *gorm.DB, test *models.Test) error
	Update(db *gorm.DB, test *models.Test) error
	Delete(db *gorm.DB, testID string) error
	FindByID(db *gorm.DB, id string) (*models.Test, error)
	FindAll(db *gorm.DB, withDeleted bool) ([]models.Test, error)

	CreateQuestion(db *gorm.DB, question *models.Question) error
	UpdateQuestion(db *gorm.DB, question *models.Question) error
	DeleteQuestion(db *gorm.DB, questionID string) error
	FindQuestionByID(db *gorm.DB, id string) (*models.Question, error)
	FindQuestionsByTest(db *gorm.DB, testID string) ([]models.Question, error)

	CreateAttempt(db *gorm.DB, attempt *models.TestAttempt) error
	BestScore(db *gorm.DB, userID, testID string) (int, error)
	ListAttemptsByUser(db *gorm.DB, userID string) ([]models.TestAttempt, error)
}

type TestRepositoryImpl struct{}

func NewTestRepository() TestRepository {
	return &TestRepositoryImpl{}
}

func (r *TestRepositoryImpl) Create(db *gorm.DB, test *models.Test) error {
	return db.Create(test).Error
}

func (r *TestRepositoryImpl) Update(db *gorm.DB, test *models.Test) error {
	result := db.Model(test).Updates(map[string]interface{}{
		"title":            test.Title,
		"description":      test.Description,
		"category":         test.Category,
		"duration_minutes": test.DurationMinutes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestNotFound
	}
	return nil
}

// Delete soft-deletes the test and its questions together.
func (r *TestRepositoryImpl) Delete(db *gorm.DB, testID string) error {
	result := db.Delete(&models.Test{}, "id = ?", testID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestNotFound
	}
	return db.Delete(&models.Question{}, "test_id = ?", testID).Error
}

func (r *TestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Test, error) {
	var test models.Test
	err := db.First(&test, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, err
	}
	return &test, nil
}

// FindAll lists tests; withDeleted includes soft-deleted rows for admin audit.
func (r *TestRepositoryImpl) FindAll(db *gorm.DB, withDeleted bool) ([]models.Test, error) {
	query := db.Model(&models.Test{})
	if withDeleted {
		query = query.Unscoped()
	}

	var tests []models.Test
	if err := query.Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *TestRepositoryImpl) CreateQuestion(db *gorm.DB, question *models.Question) error {
	return db.Create(question).Error
}

func (r *TestRepositoryImpl) UpdateQuestion(db *gorm.DB, question *models.Question) error {
	result := db.Model(question).Updates(map[string]interface{}{
		"text":                 question.Text,
		"options":              question.Options,
		"correct_answer_index": question.CorrectAnswerIndex,
		"position":             question.Position,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *TestRepositoryImpl) DeleteQuestion(db *gorm.DB, questionID string) error {
	result := db.Delete(&models.Question{}, "id = ?", questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *TestRepositoryImpl) FindQuestionByID(db *gorm.DB, id string) (*models.Question, error) {
	var question models.Question
	err := db.First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *TestRepositoryImpl) FindQuestionsByTest(db *gorm.DB, testID string) ([]models.Question, error) {
	var questions []models.Question
	err := db.Where("test_id = ?", testID).
		Order("position ASC, created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *TestRepositoryImpl) CreateAttempt(db *gorm.DB, attempt *models.TestAttempt) error {
	return db.Create(attempt).Error
}

// BestScore returns the user's best prior score on the test, 0 when none.
func (r *TestRepositoryImpl) BestScore(db *gorm.DB, userID, testID string) (int, error) {
	var best *int
	err := db.Model(&models.TestAttempt{}).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Select("MAX(score)").
		Scan(&best).Error
	if err != nil {
		return 0, err
	}
	if best == nil {
		return 0, nil
	}
	return *best, nil
}

func (r *TestRepositoryImpl) ListAttemptsByUser(db *gorm.DB, userID string) ([]models.TestAttempt, error) {
	var attempts []models.TestAttempt
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
