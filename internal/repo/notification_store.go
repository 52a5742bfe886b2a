package repo

import (
	"context"

	"gorm.io/gorm"

	"nadi/internal/models"
)

// NotificationPersistence — write-through бэкенд ленты уведомлений.
type NotificationPersistence struct{ db *gorm.DB }

func NewNotificationPersistence(db *gorm.DB) *NotificationPersistence {
	return &NotificationPersistence{db: db}
}

func (p *NotificationPersistence) LoadAll(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := p.db.WithContext(ctx).Order("created_at").Find(&out).Error
	return out, err
}

func (p *NotificationPersistence) Save(ctx context.Context, n *models.Notification) error {
	return p.db.WithContext(ctx).Create(n).Error
}

func (p *NotificationPersistence) SetRead(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
