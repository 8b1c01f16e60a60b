package repository

import (
	"context"

	"github.com/jeffleon2/ebanking/internal/notification/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	*posgrest.Repository[models.Notification]
}

func New(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{Repository: posgrest.New[models.Notification](db)}
}

// ListByUser returns the newest notifications of userID first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	var out []models.Notification
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
