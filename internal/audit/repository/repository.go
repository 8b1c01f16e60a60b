package repository

import (
	"context"
	"fmt"

	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/repository/posgrest"
	"gorm.io/gorm"
)

type AuditRepository struct {
	*posgrest.Repository[models.AuditLog]
	db *gorm.DB
}

func New(db *gorm.DB) *AuditRepository {
	return &AuditRepository{
		Repository: posgrest.New[models.AuditLog](db),
		db:         db,
	}
}

func (r *AuditRepository) scope(ctx context.Context, f models.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.ActionType != "" {
		q = q.Where("action_type = ?", f.ActionType)
	}
	if f.ServiceName != "" {
		q = q.Where("service_name = ?", f.ServiceName)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.From != nil {
		q = q.Where("timestamp >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("timestamp <= ?", *f.To)
	}
	return q
}

// Search returns one page of matching logs, newest first, and the total match count.
func (r *AuditRepository) Search(ctx context.Context, f models.Filter) ([]models.AuditLog, int64, error) {
	var total int64
	if err := r.scope(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var logs []models.AuditLog
	err := r.scope(ctx, f).
		Order("timestamp DESC").
		Offset(f.Page * f.Size).
		Limit(f.Size).
		Find(&logs).Error
	return logs, total, err
}

type group struct {
	Key string
	N   int64
}

var groupable = map[string]bool{"status": true, "service_name": true, "action_type": true}

// CountBy counts matching logs grouped by column.
func (r *AuditRepository) CountBy(ctx context.Context, f models.Filter, column string) (map[string]int64, error) {
	if !groupable[column] {
		return nil, fmt.Errorf("audit: cannot group by %q", column)
	}
	var rows []group
	err := r.scope(ctx, f).
		Select(column + " AS key, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, g := range rows {
		out[g.Key] = g.N
	}
	return out, nil
}
