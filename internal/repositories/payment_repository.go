package repositories

import (
	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.UserPayment) error
	ListByUser(db *gorm.DB, userID string) ([]models.UserPayment, error)
	HasAccess(db *gorm.DB, userID, formationID string) (bool, error)
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.UserPayment) error {
	return db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.UserPayment, error) {
	var payments []models.UserPayment
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// HasAccess is the entitlement exists-query: a paid row for the formation, or
// a paid global-subscription row for the user.
func (r *PaymentRepositoryImpl) HasAccess(db *gorm.DB, userID, formationID string) (bool, error) {
	var count int64
	err := db.Model(&models.UserPayment{}).
		Where("user_id = ? AND status = ?", userID, models.PaymentStatusPaid).
		Where("is_global = ? OR formation_id = ?", true, formationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
