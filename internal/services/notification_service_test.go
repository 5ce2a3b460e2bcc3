package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/pkg/apperrors"
)

func seedNotification(t *testing.T, db *gorm.DB, userID uint, read bool) *models.Notification {
	t.Helper()

	n := &models.Notification{
		UserID:  userID,
		Title:   "t",
		Message: "m",
		Type:    models.NotificationTypeInfo,
		IsRead:  read,
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestNotificationListAndUnreadCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))
	user := createTestUser(t, db, "u@x.com", models.UserRoleJobSeeker)

	seedNotification(t, db, user.ID, false)
	seedNotification(t, db, user.ID, false)
	seedNotification(t, db, user.ID, true)

	resp, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 3)
	assert.Equal(t, int64(2), resp.UnreadCount)
}

func TestMarkReadIsIdempotentAndOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))
	owner := createTestUser(t, db, "owner@x.com", models.UserRoleJobSeeker)
	other := createTestUser(t, db, "other@x.com", models.UserRoleJobSeeker)

	n := seedNotification(t, db, owner.ID, false)

	require.NoError(t, svc.MarkRead(owner.ID, n.ID))
	require.NoError(t, svc.MarkRead(owner.ID, n.ID))

	var stored models.Notification
	require.NoError(t, db.First(&stored, n.ID).Error)
	assert.True(t, stored.IsRead)

	err := svc.MarkRead(other.ID, n.ID)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestMarkAllRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))
	user := createTestUser(t, db, "u@x.com", models.UserRoleJobSeeker)
	bystander := createTestUser(t, db, "b@x.com", models.UserRoleJobSeeker)

	seedNotification(t, db, user.ID, false)
	seedNotification(t, db, user.ID, false)
	seedNotification(t, db, bystander.ID, false)

	require.NoError(t, svc.MarkAllRead(user.ID))

	var unread int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)
	assert.Zero(t, unread)

	db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", bystander.ID, false).Count(&unread)
	assert.Equal(t, int64(1), unread)
}
