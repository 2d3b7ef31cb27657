package repositories

import (
	"errors"
	"time"

	"talenthub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	CreateBroadcast(db *gorm.DB, notification *models.Notification, recipientIDs []string) error
	FindByID(db *gorm.DB, id string) (*models.Notification, error)
	ListByUser(db *gorm.DB, userID string, unreadOnly bool, page, pageSize int) ([]models.Notification, int64, error)
	MarkRead(db *gorm.DB, notificationID, userID string) error
	MarkAllRead(db *gorm.DB, userID string) error
	CountUnread(db *gorm.DB, userID string) (int64, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

// CreateBroadcast stores the notification once and fans it out through the
// recipients pivot in a single transaction.
func (r *NotificationRepositoryImpl) CreateBroadcast(db *gorm.DB, notification *models.Notification, recipientIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		notification.IsBroadcast = true
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		if len(recipientIDs) == 0 {
			return nil
		}
		recipients := make([]models.NotificationRecipient, 0, len(recipientIDs))
		for _, userID := range recipientIDs {
			recipients = append(recipients, models.NotificationRecipient{
				NotificationID: notification.ID,
				UserID:         userID,
			})
		}
		return tx.CreateInBatches(recipients, 500).Error
	})
}

func (r *NotificationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Notification, error) {
	var notification models.Notification
	err := db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// ListByUser returns direct notifications plus broadcasts addressed to the
// user via the recipients pivot, newest first. Broadcast read state comes from
// the pivot row.
func (r *NotificationRepositoryImpl) ListByUser(db *gorm.DB, userID string, unreadOnly bool, page, pageSize int) ([]models.Notification, int64, error) {
	query := db.Model(&models.Notification{}).
		Joins("LEFT JOIN notification_recipients nr ON nr.notification_id = notifications.id AND nr.user_id = ?", userID).
		Where("notifications.user_id = ? OR nr.user_id IS NOT NULL", userID)

	if unreadOnly {
		query = query.Where("(notifications.is_broadcast = ? AND notifications.is_read = ?) OR (notifications.is_broadcast = ? AND nr.read_at IS NULL)",
			false, false, true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var notifications []models.Notification
	err := query.
		Select("notifications.*, CASE WHEN notifications.is_broadcast THEN nr.read_at IS NOT NULL ELSE notifications.is_read END AS is_read").
		Order("notifications.created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) MarkRead(db *gorm.DB, notificationID, userID string) error {
	notification, err := r.FindByID(db, notificationID)
	if err != nil {
		return err
	}

	now := time.Now()
	if notification.IsBroadcast {
		result := db.Model(&models.NotificationRecipient{}).
			Where("notification_id = ? AND user_id = ?", notificationID, userID).
			Update("read_at", &now)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotificationNotFound
		}
		return nil
	}

	if notification.UserID == nil || *notification.UserID != userID {
		return ErrNotificationNotFound
	}
	return db.Model(notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": &now,
	}).Error
}

func (r *NotificationRepositoryImpl) MarkAllRead(db *gorm.DB, userID string) error {
	now := time.Now()
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
	if err != nil {
		return err
	}
	return db.Model(&models.NotificationRecipient{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", &now).Error
}

func (r *NotificationRepositoryImpl) CountUnread(db *gorm.DB, userID string) (int64, error) {
	var direct int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&direct).Error
	if err != nil {
		return 0, err
	}

	var broadcast int64
	err = db.Model(&models.NotificationRecipient{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&broadcast).Error
	if err != nil {
		return 0, err
	}
	return direct + broadcast, nil
}
