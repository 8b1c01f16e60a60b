package repository

import (
	"context"
	"errors"

	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct {
	*posgrest.Repository[models.Wallet]
	db *gorm.DB
}

func New(db *gorm.DB) *WalletRepository {
	return &WalletRepository{
		Repository: posgrest.New[models.Wallet](db),
		db:         db,
	}
}

func (r *WalletRepository) GetByRef(ctx context.Context, ref string) (*models.Wallet, error) {
	w, err := r.GetOneBy(ctx, map[string]interface{}{"wallet_ref": ref})
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrWalletNotFound
	}
	return w, err
}

func (r *WalletRepository) ListByUser(ctx context.Context, userID string) ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&wallets).Error
	return wallets, err
}

func (r *WalletRepository) ListExpenses(ctx context.Context, walletID string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).Where("wallet_id = ?", walletID).Order("date DESC, created_at DESC").Find(&expenses).Error
	return expenses, err
}

// RecordExpense locks the wallet row, runs guard against the locked row and,
// when guard succeeds, stores the expense and adds it to the spent total.
// Concurrent expenses on one wallet are serialized by the lock.
func (r *WalletRepository) RecordExpense(ctx context.Context, walletID string, e *models.Expense, guard func(w *models.Wallet) error) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", walletID).First(&wallet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrWalletNotFound
		}
		if err != nil {
			return err
		}
		if err := guard(&wallet); err != nil {
			return err
		}
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		wallet.Spent = wallet.Spent.Add(e.Amount)
		return tx.Model(&wallet).Update("spent", wallet.Spent).Error
	})
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
