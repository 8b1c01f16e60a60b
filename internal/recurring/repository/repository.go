package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/ebanking/internal/recurring/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
)

type RecurringRepository struct {
	*posgrest.Repository[models.RecurringPayment]
	db *gorm.DB
}

func New(db *gorm.DB) *RecurringRepository {
	return &RecurringRepository{
		Repository: posgrest.New[models.RecurringPayment](db),
		db:         db,
	}
}

func (r *RecurringRepository) Get(ctx context.Context, id string) (*models.RecurringPayment, error) {
	p, err := r.GetByID(ctx, id)
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrRecurringNotFound
	}
	return p, err
}

func (r *RecurringRepository) ListByUser(ctx context.Context, userID string) ([]models.RecurringPayment, error) {
	var out []models.RecurringPayment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("next_execution_date ASC").Find(&out).Error
	return out, err
}

// Due lists active payments whose next execution date is on or before today.
func (r *RecurringRepository) Due(ctx context.Context, today time.Time) ([]models.RecurringPayment, error) {
	var out []models.RecurringPayment
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_execution_date <= ?", models.StatusActive, today).
		Order("next_execution_date ASC").
		Find(&out).Error
	return out, err
}

// Claim moves the next execution date from due to next, only if no other
// run moved it first. It reports whether this caller won the claim.
func (r *RecurringRepository) Claim(ctx context.Context, id string, due, next time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.RecurringPayment{}).
		Where("id = ? AND status = ? AND next_execution_date = ?", id, models.StatusActive, due).
		Update("next_execution_date", next)
	return res.RowsAffected == 1, res.Error
}

// RecordRun stores the outcome of an execution. Only the run fields are
// written, and only while the payment is still ACTIVE, so a cancel that lands
// during the charge is kept. It reports whether the row was updated.
func (r *RecurringRepository) RecordRun(ctx context.Context, p *models.RecurringPayment) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.RecurringPayment{}).
		Where("id = ? AND status = ?", p.ID, models.StatusActive).
		Updates(map[string]interface{}{
			"next_execution_date": p.NextExecutionDate,
			"failure_count":       p.FailureCount,
			"last_error":          p.LastError,
			"last_executed_at":    p.LastExecutedAt,
			"status":              p.Status,
			"updated_at":          time.Now().UTC(),
		})
	return res.RowsAffected == 1, res.Error
}

func (r *RecurringRepository) Cancel(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.RecurringPayment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": models.StatusCanceled, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrRecurringNotFound
	}
	return nil
}

// Resume reactivates a SUSPENDED payment and clears its failures. It reports
// false when the payment is no longer suspended.
func (r *RecurringRepository) Resume(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.RecurringPayment{}).
		Where("id = ? AND status = ?", id, models.StatusSuspended).
		Updates(map[string]interface{}{
			"status":        models.StatusActive,
			"failure_count": 0,
			"last_error":    "",
			"updated_at":    time.Now().UTC(),
		})
	return res.RowsAffected == 1, res.Error
}
