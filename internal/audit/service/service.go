package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/ebanking/internal/audit/dto"
	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

const (
	ServiceName = "audit-service"

	defaultPageSize = 20
	maxPageSize     = 200
)

type AuditRepo interface {
	Create(ctx context.Context, log *models.AuditLog) error
	Search(ctx context.Context, f models.Filter) ([]models.AuditLog, int64, error)
	CountBy(ctx context.Context, f models.Filter, column string) (map[string]int64, error)
}

// AuditService stores the audit trail of every service and serves it back.
type AuditService struct {
	Repo AuditRepo
}

func NewAuditService(repo AuditRepo) *AuditService {
	return &AuditService{Repo: repo}
}

// Consume stores an audit event read from the bus. The message key carries
// the correlation id when the payload has none.
func (s *AuditService) Consume(ctx context.Context, key, value []byte) error {
	var event events.AuditEvent
	if err := json.Unmarshal(value, &event); err != nil {
		logrus.Errorf("Error unmarshalling AuditEvent: %s", err.Error())
		return fmt.Errorf("error parsing audit event %w", err)
	}
	entry := dto.FromEvent(event)
	if entry.CorrelationID == "" {
		entry.CorrelationID = string(key)
	}
	return s.Repo.Create(ctx, entry)
}

// Record stores an event posted by a client. Clients always log under their
// own user id.
func (s *AuditService) Record(ctx context.Context, caller identity.Principal, req *dto.Event, ip, userAgent string) (*models.AuditLog, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	entry := req.ToEntity()
	if entry.UserID == "" || !caller.IsAdmin() {
		entry.UserID = caller.UserID
	}
	if entry.CorrelationID == "" {
		entry.CorrelationID = identity.CorrelationIDFromContext(ctx)
	}
	entry.IPAddress = ip
	entry.UserAgent = userAgent
	if err := s.Repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordExternal stores an event pushed by another service over HTTP.
func (s *AuditService) RecordExternal(ctx context.Context, req *dto.Event) (*models.AuditLog, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.ServiceName == "" {
		return nil, models.ErrServiceNameRequired
	}
	entry := req.ToEntity()
	if entry.CorrelationID == "" {
		entry.CorrelationID = identity.CorrelationIDFromContext(ctx)
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UserHistory pages through the logs of userID. Clients only see their own.
func (s *AuditService) UserHistory(ctx context.Context, caller identity.Principal, userID string, f models.Filter) (*dto.Page, error) {
	if !caller.CanAccess(userID) {
		return nil, models.ErrNotOwnHistory
	}
	f.UserID = userID
	f.ServiceName = ""
	page, err := s.search(ctx, f)
	if err != nil {
		return nil, err
	}
	page.UserID = userID
	return page, nil
}

// History pages through every log. Restricted to admins by the router.
func (s *AuditService) History(ctx context.Context, f models.Filter) (*dto.Page, error) {
	return s.search(ctx, f)
}

// Errors pages through FAILURE and ERROR logs.
func (s *AuditService) Errors(ctx context.Context, f models.Filter) (*dto.Page, error) {
	f.Status = ""
	f.Statuses = models.ErrorStatuses
	return s.search(ctx, f)
}

func (s *AuditService) UserStats(ctx context.Context, caller identity.Principal, userID string) (*dto.UserStats, error) {
	if !caller.CanAccess(userID) {
		return nil, models.ErrNotOwnHistory
	}
	byStatus, err := s.Repo.CountBy(ctx, models.Filter{UserID: userID}, "status")
	if err != nil {
		return nil, err
	}
	stats := &dto.UserStats{UserID: userID, ByStatus: byStatus}
	for _, n := range byStatus {
		stats.TotalActions += n
	}
	return stats, nil
}

func (s *AuditService) ErrorStats(ctx context.Context) (*dto.ErrorStats, error) {
	byService, err := s.Repo.CountBy(ctx, models.Filter{Statuses: models.ErrorStatuses}, "service_name")
	if err != nil {
		return nil, err
	}
	stats := &dto.ErrorStats{ByService: byService}
	for _, n := range byService {
		stats.TotalErrors += n
	}
	return stats, nil
}

func (s *AuditService) search(ctx context.Context, f models.Filter) (*dto.Page, error) {
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return nil, models.ErrInvalidStatus
	}
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Size <= 0 {
		f.Size = defaultPageSize
	}
	if f.Size > maxPageSize {
		f.Size = maxPageSize
	}

	logs, total, err := s.Repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(f.Size) - 1) / int64(f.Size))
	return &dto.Page{
		TotalElements: total,
		TotalPages:    pages,
		CurrentPage:   f.Page,
		AuditLogs:     logs,
	}, nil
}
