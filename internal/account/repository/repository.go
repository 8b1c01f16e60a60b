package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository struct {
	*posgrest.Repository[models.Account]
	db *gorm.DB
}

func New(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		Repository: posgrest.New[models.Account](db),
		db:         db,
	}
}

func (r *AccountRepository) GetByRef(ctx context.Context, ref string) (*models.Account, error) {
	acc, err := r.GetOneBy(ctx, map[string]interface{}{"external_ref": ref})
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrAccountNotFound
	}
	return acc, err
}

func (r *AccountRepository) ListByUser(ctx context.Context, userID string) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, models.KindCustomer).
		Order("created_at ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) ExistsForCurrency(ctx context.Context, userID, currency string) (bool, error) {
	n, err := r.Count(ctx, map[string]interface{}{"user_id": userID, "currency": currency})
	return n > 0, err
}

func (r *AccountRepository) UpdateStatus(ctx context.Context, ref string, status models.AccountStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("external_ref = ? AND kind = ?", ref, models.KindCustomer).
		Updates(map[string]interface{}{"status": status, "version": gorm.Expr("version + 1")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	return nil
}

// EnsureSystemAccounts creates the bank side account of every currency.
func (r *AccountRepository) EnsureSystemAccounts(ctx context.Context, currencies []string) error {
	for _, cur := range currencies {
		cur = strings.ToUpper(cur)
		acc := models.Account{
			ExternalRef: models.SystemRef(cur),
			UserID:      models.SystemUserID,
			Currency:    cur,
			Status:      models.StatusActive,
			Kind:        models.KindSystem,
		}
		err := r.db.WithContext(ctx).
			Where(models.Account{ExternalRef: acc.ExternalRef}).
			FirstOrCreate(&acc).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Move applies a movement atomically. Both rows are locked in ref order so
// concurrent movements on the same pair cannot deadlock. A movement whose
// reference was already recorded returns models.ErrDuplicateEntry.
func (r *AccountRepository) Move(ctx context.Context, m models.Movement) (*models.Account, error) {
	var debited models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.Reference != "" {
			var n int64
			if err := tx.Model(&models.LedgerEntry{}).Where("reference = ?", m.Reference).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return models.ErrDuplicateEntry
			}
		}

		refs := []string{m.FromRef, m.ToRef}
		sort.Strings(refs)

		var accounts []models.Account
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_ref IN ?", refs).
			Order("external_ref").
			Find(&accounts).Error
		if err != nil {
			return err
		}

		byRef := make(map[string]*models.Account, len(accounts))
		for i := range accounts {
			byRef[accounts[i].ExternalRef] = &accounts[i]
		}
		from, okFrom := byRef[m.FromRef]
		to, okTo := byRef[m.ToRef]
		if !okFrom || !okTo {
			return models.ErrAccountNotFound
		}
		if !from.IsActive() || !to.IsActive() {
			return models.ErrAccountInactive
		}
		if !from.IsSystem() && from.Balance.LessThan(m.DebitAmount) {
			return models.ErrInsufficientFunds
		}

		from.Balance = from.Balance.Sub(m.DebitAmount)
		to.Balance = to.Balance.Add(m.CreditAmount)

		for _, acc := range []*models.Account{from, to} {
			err := tx.Model(&models.Account{}).
				Where("id = ?", acc.ID).
				Updates(map[string]interface{}{"balance": acc.Balance, "version": gorm.Expr("version + 1")}).Error
			if err != nil {
				return err
			}
		}

		entry := models.LedgerEntry{
			FromAccountID:  from.ID,
			ToAccountID:    to.ID,
			Amount:         m.DebitAmount,
			CreditedAmount: m.CreditAmount,
			Type:           m.Type,
			Memo:           m.Memo,
		}
		if m.Reference != "" {
			ref := m.Reference
			entry.Reference = &ref
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		debited = *from
		if from.IsSystem() {
			debited = *to
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &debited, nil
}

func (r *AccountRepository) ListEntries(ctx context.Context, accountID string, from, to time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("(from_account_id = ? OR to_account_id = ?) AND created_at >= ? AND created_at < ?", accountID, accountID, from, to).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
