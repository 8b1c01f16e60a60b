package repository

import (
	"context"

	"github.com/jeffleon2/ebanking/internal/assistant/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
)

type ConversationRepository struct {
	*posgrest.Repository[models.ConversationLog]
}

func New(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{Repository: posgrest.New[models.ConversationLog](db)}
}

// History returns the latest exchanges of userID, newest first.
func (r *ConversationRepository) History(ctx context.Context, userID string, limit int) ([]models.ConversationLog, error) {
	var out []models.ConversationLog
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
