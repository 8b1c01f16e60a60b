package repository

import (
	"context"

	"github.com/jeffleon2/ebanking/internal/crypto/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CryptoRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *CryptoRepository {
	return &CryptoRepository{db: db}
}

func (r *CryptoRepository) ListWallets(ctx context.Context, userID string) ([]models.CryptoWallet, error) {
	var wallets []models.CryptoWallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("symbol").Find(&wallets).Error
	return wallets, err
}

func (r *CryptoRepository) ListTransactions(ctx context.Context, userID string) ([]models.CryptoTransaction, error) {
	var txs []models.CryptoTransaction
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

// ApplyTrade locks the caller's wallet for the traded symbol, creating it on
// first use, and applies t to it. A sell larger than the balance fails with
// models.ErrInsufficientCrypto before guard runs. guard settles the cash leg
// while the lock is held; its error aborts the trade.
func (r *CryptoRepository) ApplyTrade(ctx context.Context, t *models.CryptoTransaction, guard func(w *models.CryptoWallet) error) (*models.CryptoWallet, error) {
	var wallet models.CryptoWallet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := models.CryptoWallet{UserID: t.UserID, Symbol: t.Symbol, Balance: decimal.Zero}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "symbol"}},
			DoNothing: true,
		}).Create(&seed).Error
		if err != nil {
			return err
		}

		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND symbol = ?", t.UserID, t.Symbol).
			First(&wallet).Error
		if err != nil {
			return err
		}

		balance := wallet.Balance.Add(t.Delta())
		if balance.IsNegative() {
			return models.ErrInsufficientCrypto
		}
		if err := guard(&wallet); err != nil {
			return err
		}
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		wallet.Balance = balance
		return tx.Model(&wallet).Update("balance", balance).Error
	})
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
