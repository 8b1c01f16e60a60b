package repository

import (
	"context"
	"errors"

	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepository struct {
	*posgrest.Repository[models.VirtualCard]
	db *gorm.DB
}

func New(db *gorm.DB) *CardRepository {
	return &CardRepository{
		Repository: posgrest.New[models.VirtualCard](db),
		db:         db,
	}
}

// Create relies on the (user, currency) unique index to settle concurrent requests.
func (r *CardRepository) Create(ctx context.Context, card *models.VirtualCard) error {
	err := r.Repository.Create(ctx, card)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrDuplicateCurrency
	}
	return err
}

func (r *CardRepository) Get(ctx context.Context, id string) (*models.VirtualCard, error) {
	card, err := r.GetByID(ctx, id)
	return card, notFound(err)
}

func (r *CardRepository) GetByNumberHash(ctx context.Context, hash string) (*models.VirtualCard, error) {
	card, err := r.GetOneBy(ctx, map[string]interface{}{"number_hash": hash})
	return card, notFound(err)
}

func (r *CardRepository) ListByUser(ctx context.Context, userID string) ([]models.VirtualCard, error) {
	cards, err := r.GetBy(ctx, "user_id", userID)
	if err != nil {
		return nil, err
	}
	return *cards, nil
}

func (r *CardRepository) SetStatus(ctx context.Context, card *models.VirtualCard, status string) error {
	card.Status = status
	return notFound(r.Update(ctx, card, card.ID))
}

// Remove deletes the card together with its transactions.
func (r *CardRepository) Remove(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&models.CardTransaction{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.VirtualCard{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrCardNotFound
		}
		return nil
	})
}

func (r *CardRepository) Transactions(ctx context.Context, cardID string) ([]models.CardTransaction, error) {
	var txs []models.CardTransaction
	err := r.db.WithContext(ctx).Where("card_id = ?", cardID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

// Charge locks the card, runs guard on the locked row, lowers the limit by
// t.Amount and stores t.
func (r *CardRepository) Charge(ctx context.Context, cardID string, t *models.CardTransaction, guard func(c *models.VirtualCard) error) (*models.VirtualCard, error) {
	var card models.VirtualCard
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", cardID).First(&card).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrCardNotFound
		}
		if err != nil {
			return err
		}
		if err := guard(&card); err != nil {
			return err
		}
		card.Limit = card.Limit.Sub(t.Amount)
		if err := tx.Model(&card).Update("card_limit", card.Limit).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func notFound(err error) error {
	if errors.Is(err, posgrest.ErrNotFound) {
		return models.ErrCardNotFound
	}
	return err
}
