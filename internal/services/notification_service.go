package services

import (
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type NotificationService interface {
	List(userID uint) (*dto.NotificationListResponse, error)
	MarkRead(userID, notificationID uint) error
	MarkAllRead(userID uint) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID uint) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, dto.ToNotificationResponse(&notifications[i]))
	}
	return resp, nil
}

// MarkRead is idempotent; marking an already read notification again is fine.
func (s *NotificationServiceImpl) MarkRead(userID, notificationID uint) error {
	found, err := s.notificationRepo.MarkRead(userID, notificationID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !found {
		return apperrors.ErrNotFound("notification", "Notification not found")
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(userID uint) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
