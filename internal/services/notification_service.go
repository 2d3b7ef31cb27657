package services

import (
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NotificationService interface {
	List(db *gorm.DB, userID string, req *dto.ListNotificationsRequest) (*dto.PaginatedResponse, error)
	MarkRead(db *gorm.DB, notificationID, userID string) error
	MarkAllRead(db *gorm.DB, userID string) error
	UnreadCount(db *gorm.DB, userID string) (*dto.UnreadCountResponse, error)
	Broadcast(db *gorm.DB, req *dto.BroadcastNotificationRequest) (*dto.NotificationResponse, error)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *NotificationServiceImpl) List(db *gorm.DB, userID string, req *dto.ListNotificationsRequest) (*dto.PaginatedResponse, error) {
	req.Normalize()

	notifications, total, err := s.notificationRepo.ListByUser(db, userID, req.UnreadOnly, req.Page, req.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}
	return dto.NewPaginatedResponse(items, total, req.Page, req.PageSize), nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, notificationID, userID string) error {
	if err := s.notificationRepo.MarkRead(db, notificationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) UnreadCount(db *gorm.DB, userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Unread: count}, nil
}

// Broadcast fans a notification out to every user, or to every user with the
// given role.
func (s *NotificationServiceImpl) Broadcast(db *gorm.DB, req *dto.BroadcastNotificationRequest) (*dto.NotificationResponse, error) {
	users, _, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{Role: req.Role})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recipientIDs := make([]string, 0, len(users))
	for i := range users {
		recipientIDs = append(recipientIDs, users[i].ID)
	}

	notification := &models.Notification{
		Type:    "broadcast",
		Title:   req.Title,
		Message: req.Message,
	}
	if err := s.notificationRepo.CreateBroadcast(db, notification, recipientIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNotificationResponse(notification), nil
}
