package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	*posgrest.Repository[models.Payment]
	db *gorm.DB
}

func New(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		Repository: posgrest.New[models.Payment](db),
		db:         db,
	}
}

func (r *PaymentRepository) Get(ctx context.Context, id string) (*models.Payment, error) {
	p, err := r.GetByID(ctx, id)
	if errors.Is(err, posgrest.ErrNotFound) {
		return nil, models.ErrPaymentNotFound
	}
	return p, err
}

// List returns the payments of userID, newest first. Empty userID lists all.
func (r *PaymentRepository) List(ctx context.Context, userID string, status models.PaymentStatus) ([]models.Payment, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var payments []models.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// CreateWithOutbox inserts the payment and its outbox rows atomically.
func (r *PaymentRepository) CreateWithOutbox(ctx context.Context, p *models.Payment, outbox []models.OutboxEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return insertOutbox(tx, outbox)
	})
}

// Save persists p only if its stored status is still expected, together with
// the outbox rows. A concurrent change returns models.ErrStaleStatus.
func (r *PaymentRepository) Save(ctx context.Context, p *models.Payment, expected models.PaymentStatus, outbox []models.OutboxEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.UpdatedAt = time.Now().UTC()
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", p.ID, expected).
			Select("status", "funds_verified", "fraud_cleared", "risk_score", "failed_reason",
				"legacy_reference", "completed_at", "updated_at").
			Updates(p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrStaleStatus
		}
		return insertOutbox(tx, outbox)
	})
}

func insertOutbox(tx *gorm.DB, outbox []models.OutboxEvent) error {
	if len(outbox) == 0 {
		return nil
	}
	return tx.Create(&outbox).Error
}

type OutboxRepository struct {
	db *gorm.DB
}

func NewOutbox(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

// Pending returns up to limit unpublished rows, oldest first.
func (r *OutboxRepository) Pending(ctx context.Context, limit int) ([]models.OutboxEvent, error) {
	var rows []models.OutboxEvent
	err := r.db.WithContext(ctx).
		Where("status = ?", models.OutboxPending).
		Order("created_at asc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&models.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": models.OutboxPublished, "published_at": &now, "last_error": ""}).Error
}

// MarkFailed records a failed attempt. The row stays PENDING until it has
// failed maxRetries times.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id, reason string, maxRetries int) error {
	return r.db.WithContext(ctx).Model(&models.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"retry_count": gorm.Expr("retry_count + 1"),
			"last_error":  reason,
			"status": gorm.Expr("CASE WHEN retry_count + 1 >= ? THEN ? ELSE status END",
				maxRetries, models.OutboxFailed),
		}).Error
}
