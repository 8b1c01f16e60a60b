package repository

import (
	"context"

	"github.com/jeffleon2/ebanking/internal/analytics/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepository struct {
	*posgrest.Repository[models.Expense]
}

func New(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{Repository: posgrest.New[models.Expense](db)}
}

// Save stores e unless an expense with the same id is already there. It
// reports whether a row was inserted.
func (r *ExpenseRepository) Save(ctx context.Context, e *models.Expense) (bool, error) {
	res := r.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(e)
	return res.RowsAffected > 0, res.Error
}

// Total sums the expenses matching every non-empty key of where.
func (r *ExpenseRepository) Total(ctx context.Context, where map[string]interface{}) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.DB(ctx).
		Model(&models.Expense{}).
		Where(where).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
