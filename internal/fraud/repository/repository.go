package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FraudRepository struct {
	checks *posgrest.Repository[models.Check]
	db     *gorm.DB
}

func New(db *gorm.DB) *FraudRepository {
	return &FraudRepository{checks: posgrest.New[models.Check](db), db: db}
}

func (r *FraudRepository) SaveCheck(ctx context.Context, c *models.Check) error {
	return r.checks.Create(ctx, c)
}

func (r *FraudRepository) GetCheck(ctx context.Context, paymentID string) (*models.Check, error) {
	c, err := r.checks.GetOneBy(ctx, map[string]interface{}{"payment_id": paymentID})
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrCheckNotFound
	}
	return c, err
}

// SetOutcome records how the payment ended so rejected payments stop
// counting against the limits.
func (r *FraudRepository) SetOutcome(ctx context.Context, paymentID, outcome string) error {
	return r.db.WithContext(ctx).Model(&models.Check{}).
		Where("payment_id = ?", paymentID).
		Update("outcome", outcome).Error
}

func (r *FraudRepository) IsBlacklisted(ctx context.Context, iban string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.BlacklistedIBAN{}).
		Where("iban = ? AND active", iban).
		Count(&n).Error
	return n > 0, err
}

func (r *FraudRepository) ListBlacklist(ctx context.Context) ([]models.BlacklistedIBAN, error) {
	var rows []models.BlacklistedIBAN
	err := r.db.WithContext(ctx).Where("active").Order("created_at desc").Find(&rows).Error
	return rows, err
}

// AddBlacklist inserts or reactivates an IBAN.
func (r *FraudRepository) AddBlacklist(ctx context.Context, b *models.BlacklistedIBAN) error {
	b.Active = true
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "iban"}},
		DoUpdates: clause.AssignmentColumns([]string{"reason", "active", "updated_at"}),
	}).Create(b).Error
}

func (r *FraudRepository) RemoveBlacklist(ctx context.Context, iban string) error {
	res := r.db.WithContext(ctx).Model(&models.BlacklistedIBAN{}).
		Where("iban = ? AND active", iban).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotBlacklisted
	}
	return nil
}

// GetLimit returns nil without error when the account has no explicit limit.
func (r *FraudRepository) GetLimit(ctx context.Context, accountRef, currency string) (*models.AccountLimit, error) {
	var l models.AccountLimit
	err := r.db.WithContext(ctx).
		Where("account_ref = ? AND currency = ?", accountRef, currency).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *FraudRepository) UpsertLimit(ctx context.Context, l *models.AccountLimit) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_ref"}, {Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"daily_limit", "monthly_limit", "updated_at"}),
	}).Create(l).Error
}

// ApprovedTotal sums approved checks since the given time that did not end
// rejected.
func (r *FraudRepository) ApprovedTotal(ctx context.Context, accountRef, currency string, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.Check{}).
		Select("SUM(amount)").
		Where("source_account_ref = ? AND currency = ? AND decision = ? AND outcome <> ? AND created_at >= ?",
			accountRef, currency, events.StatusApproved, models.OutcomeRejected, since).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// KnownBeneficiary reports whether the account already paid iban in a
// payment other than excludePaymentID.
func (r *FraudRepository) KnownBeneficiary(ctx context.Context, accountRef, iban, excludePaymentID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Check{}).
		Where("source_account_ref = ? AND destination_iban = ? AND payment_id <> ? AND outcome <> ?",
			accountRef, iban, excludePaymentID, models.OutcomeRejected).
		Count(&n).Error
	return n > 0, err
}
