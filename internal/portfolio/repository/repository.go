package repository

import (
	"context"
	"errors"

	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PortfolioRepository struct {
	*posgrest.Repository[models.Portfolio]
	db *gorm.DB
}

func New(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{
		Repository: posgrest.New[models.Portfolio](db),
		db:         db,
	}
}

func (r *PortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	err := r.Repository.Create(ctx, p)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrDuplicatePortfolio
	}
	return err
}

func (r *PortfolioRepository) Get(ctx context.Context, id string) (*models.Portfolio, error) {
	p, err := r.GetByID(ctx, id)
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrPortfolioNotFound
	}
	return p, err
}

func (r *PortfolioRepository) ListByUser(ctx context.Context, userID string) ([]models.Portfolio, error) {
	var out []models.Portfolio
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("currency ASC").Find(&out).Error
	return out, err
}

// Exists reports whether userID already holds a portfolio in currency.
func (r *PortfolioRepository) Exists(ctx context.Context, userID, currency string) (bool, error) {
	n, err := r.Count(ctx, map[string]interface{}{"user_id": userID, "currency": currency})
	return n > 0, err
}

// Move adds delta to the balance of a locked portfolio. A negative delta
// larger than the balance fails with ErrInsufficientFunds.
func (r *PortfolioRepository) Move(ctx context.Context, id string, delta decimal.Decimal) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lock(tx, id, &p); err != nil {
			return err
		}
		next := p.Balance.Add(delta)
		if next.IsNegative() {
			return models.ErrInsufficientFunds
		}
		p.Balance = next
		return tx.Model(&p).Update("balance", p.Balance).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Transfer moves t.Amount out of t.FromID and t.ConvertedAmount into t.ToID
// and stores t. Rows are locked in id order so opposite transfers cannot
// deadlock.
func (r *PortfolioRepository) Transfer(ctx context.Context, t *models.PortfolioTransfer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from, to models.Portfolio
		first, second := &from, &to
		firstID, secondID := t.FromID, t.ToID
		if secondID < firstID {
			first, second = second, first
			firstID, secondID = secondID, firstID
		}
		if err := lock(tx, firstID, first); err != nil {
			return err
		}
		if err := lock(tx, secondID, second); err != nil {
			return err
		}

		if from.Balance.LessThan(t.Amount) {
			return models.ErrInsufficientFunds
		}
		if err := tx.Model(&from).Update("balance", from.Balance.Sub(t.Amount)).Error; err != nil {
			return err
		}
		if err := tx.Model(&to).Update("balance", to.Balance.Add(t.ConvertedAmount)).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

func (r *PortfolioRepository) Transfers(ctx context.Context, portfolioID string) ([]models.PortfolioTransfer, error) {
	var out []models.PortfolioTransfer
	err := r.db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", portfolioID, portfolioID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func lock(tx *gorm.DB, id string, p *models.Portfolio) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrPortfolioNotFound
	}
	return err
}
