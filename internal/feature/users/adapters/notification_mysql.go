package adapters

import (
	"context"

	"gorm.io/gorm"

	"college_backend/internal/feature/users/domain/entity"
	"college_backend/internal/feature/users/usecase"
)

// notificationMySQL is a MySQL implementation of the NotificationRepository interface.
type notificationMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure notificationMySQL implements NotificationRepository.
var _ usecase.NotificationRepository = (*notificationMySQL)(nil)

// NewNotificationMySQL creates a new instance of notificationMySQL.
func NewNotificationMySQL(db *gorm.DB) *notificationMySQL {
	return &notificationMySQL{db: db}
}

// Create persists a single notification.
func (r *notificationMySQL) Create(ctx context.Context, n *entity.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// CreateBatch persists one notification per element in a single insert.
// An empty batch is a no-op.
func (r *notificationMySQL) CreateBatch(ctx context.Context, ns []entity.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ns).Error
}

// ListByRecipient returns all notifications addressed to userID, newest first.
func (r *notificationMySQL) ListByRecipient(ctx context.Context, userID uint) ([]entity.Notification, error) {
	var ns []entity.Notification
	if err := r.db.WithContext(ctx).
		Where("sent_to_id = ?", userID).
		Order("created_at DESC").
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}
