package repository

import (
	"context"
	"errors"

	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GatewayRepository stores the bank accounts of the interbank gateway and
// the fundings they make into portfolios.
type GatewayRepository struct {
	*posgrest.Repository[models.BankAccount]
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *GatewayRepository {
	return &GatewayRepository{
		Repository: posgrest.New[models.BankAccount](db),
		db:         db,
	}
}

func (r *GatewayRepository) Open(ctx context.Context, a *models.BankAccount) error {
	err := r.Create(ctx, a)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrDuplicateAccount
	}
	return err
}

func (r *GatewayRepository) GetByNumber(ctx context.Context, number string) (*models.BankAccount, error) {
	a, err := r.GetOneBy(ctx, map[string]interface{}{"account_number": number})
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrBankAccountNotFound
	}
	return a, err
}

// ForUser returns the oldest bank account assigned to userID.
func (r *GatewayRepository) ForUser(ctx context.Context, userID string) (*models.BankAccount, error) {
	var a models.BankAccount
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrBankAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GatewayRepository) Assign(ctx context.Context, a *models.BankAccount, userID string) error {
	a.UserID = userID
	err := r.Update(ctx, a, a.ID)
	if errors.Is(err, posgrest.ErrNotFound) {
		return models.ErrBankAccountNotFound
	}
	return err
}

// Fund debits f.Amount from the bank account and credits f.ConvertedAmount
// to the portfolio in one transaction. When p has no ID it is created with
// the converted amount as its opening balance.
func (r *GatewayRepository) Fund(ctx context.Context, f *models.Funding, p *models.Portfolio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.BankAccount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", f.BankAccountID).First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrBankAccountNotFound
		}
		if err != nil {
			return err
		}
		if account.Balance.LessThan(f.Amount) {
			return models.ErrInsufficientFunds
		}
		if err := tx.Model(&account).Update("balance", account.Balance.Sub(f.Amount)).Error; err != nil {
			return err
		}

		if p.ID == "" {
			p.Balance = f.ConvertedAmount
			if err := tx.Create(p).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return models.ErrDuplicatePortfolio
				}
				return err
			}
		} else {
			if err := lock(tx, p.ID, p); err != nil {
				return err
			}
			p.Balance = p.Balance.Add(f.ConvertedAmount)
			if err := tx.Model(p).Update("balance", p.Balance).Error; err != nil {
				return err
			}
		}

		f.PortfolioID = p.ID
		return tx.Create(f).Error
	})
}
