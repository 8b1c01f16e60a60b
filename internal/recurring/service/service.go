package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/recurring/dto"
	"github.com/jeffleon2/ebanking/internal/recurring/models"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "recurring-service"

type RecurringRepo interface {
	Create(ctx context.Context, p *models.RecurringPayment) error
	Get(ctx context.Context, id string) (*models.RecurringPayment, error)
	ListByUser(ctx context.Context, userID string) ([]models.RecurringPayment, error)
	Due(ctx context.Context, today time.Time) ([]models.RecurringPayment, error)
	Claim(ctx context.Context, id string, due time.Time, next time.Time) (bool, error)
	RecordRun(ctx context.Context, p *models.RecurringPayment) (bool, error)
	Cancel(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) (bool, error)
}

// Charger debits a card or a portfolio in a sibling service. Debit amounts
// are in the source's own currency.
type Charger interface {
	Currency(ctx context.Context, id string) (string, error)
	Debit(ctx context.Context, id string, amount decimal.Decimal) error
}

// Signer issues a token for calls made on behalf of a user.
type Signer interface {
	Sign(p identity.Principal) (string, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

type RecurringService struct {
	Repo       RecurringRepo
	Cards      Charger
	Portfolios Charger
	Signer     Signer
	Publisher  Publisher
	Now        func() time.Time
}

func NewRecurringService(repo RecurringRepo, cards, portfolios Charger, p Publisher) *RecurringService {
	return &RecurringService{
		Repo:       repo,
		Cards:      cards,
		Portfolios: portfolios,
		Publisher:  p,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create schedules a payment. The first execution is one period after the
// start date, which defaults to today.
func (s *RecurringService) Create(ctx context.Context, caller identity.Principal, req *dto.CreateRecurring) (*models.RecurringPayment, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !models.Providers[req.Provider] {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidProvider, req.Provider)
	}
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	freq, err := models.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}
	if err := s.checkSource(ctx, req.Method, req.SourceID, req.Currency); err != nil {
		return nil, err
	}

	start := models.Date(s.Now())
	if req.StartDate != nil {
		start = models.Date(*req.StartDate)
	}
	p := &models.RecurringPayment{
		UserID:            caller.UserID,
		Provider:          req.Provider,
		Method:            req.Method,
		SourceID:          req.SourceID,
		Currency:          req.Currency,
		Amount:            req.Amount,
		Frequency:         freq,
		StartDate:         start,
		NextExecutionDate: freq.After(start),
		Status:            models.StatusActive,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.UserID, "RECURRING_CREATED", fmt.Sprintf("%s %s %s to %s by %s", p.Frequency, p.Amount, p.Currency, p.Provider, p.Method), nil)
	return p, nil
}

func (s *RecurringService) ListByUser(ctx context.Context, caller identity.Principal) ([]models.RecurringPayment, error) {
	return s.Repo.ListByUser(ctx, caller.UserID)
}

func (s *RecurringService) Cancel(ctx context.Context, caller identity.Principal, id string) (*models.RecurringPayment, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(p.UserID) {
		return nil, models.ErrNotOwner
	}
	if p.Status == models.StatusCanceled {
		return p, nil
	}
	if err := s.Repo.Cancel(ctx, p.ID); err != nil {
		return nil, err
	}
	p.Status = models.StatusCanceled
	s.audit(ctx, caller.UserID, "RECURRING_CANCELED", fmt.Sprintf("recurring payment %s to %s canceled", p.ID, p.Provider), nil)
	return p, nil
}

// Resume reactivates a suspended payment and clears its failures.
func (s *RecurringService) Resume(ctx context.Context, caller identity.Principal, id string) (*models.RecurringPayment, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(p.UserID) {
		return nil, models.ErrNotOwner
	}
	if p.Status != models.StatusSuspended {
		return nil, models.ErrNotActive
	}
	resumed, err := s.Repo.Resume(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !resumed {
		return nil, models.ErrNotActive
	}
	p.Status = models.StatusActive
	p.FailureCount = 0
	p.LastError = ""
	s.audit(ctx, caller.UserID, "RECURRING_RESUMED", fmt.Sprintf("recurring payment %s to %s resumed", p.ID, p.Provider), nil)
	return p, nil
}

// RunDue charges every active payment due today or earlier. Each payment is
// claimed first so concurrent runs never charge it twice.
func (s *RecurringService) RunDue(ctx context.Context) dto.RunReport {
	var report dto.RunReport
	now := s.Now()
	today := models.Date(now)

	due, err := s.Repo.Due(ctx, today)
	if err != nil {
		logrus.Errorf("recurring: listing due payments: %v", err)
		return report
	}
	report.Due = len(due)

	for i := range due {
		p := &due[i]
		dueDate := p.NextExecutionDate
		claimed, err := s.Repo.Claim(ctx, p.ID, dueDate, p.NextAfter(today))
		if err != nil {
			logrus.WithField("recurring_id", p.ID).Errorf("recurring: claim failed: %v", err)
		}
		if !claimed {
			report.Skipped++
			continue
		}

		if err := s.execute(ctx, p); err != nil {
			p.Failed(now, err)
			report.Failed++
		} else {
			p.Succeeded(now, today)
			report.Succeeded++
		}
		recorded, err := s.Repo.RecordRun(ctx, p)
		if err != nil {
			logrus.WithField("recurring_id", p.ID).Errorf("recurring: saving outcome: %v", err)
		} else if !recorded {
			logrus.WithField("recurring_id", p.ID).Warn("recurring: payment changed during execution, outcome not stored")
		}
		s.publish(ctx, p, now)
	}

	if report.Due > 0 {
		logrus.WithFields(logrus.Fields{
			"due":       report.Due,
			"succeeded": report.Succeeded,
			"failed":    report.Failed,
			"skipped":   report.Skipped,
		}).Info("recurring payments processed")
	}
	return report
}

// Run is the scheduler entry point.
func (s *RecurringService) Run(ctx context.Context) {
	s.RunDue(ctx)
}

func (s *RecurringService) execute(ctx context.Context, p *models.RecurringPayment) error {
	ctx, err := s.actAs(ctx, p.UserID)
	if err != nil {
		return err
	}
	if err := s.checkSource(ctx, p.Method, p.SourceID, p.Currency); err != nil {
		return err
	}
	charger, err := s.charger(p.Method)
	if err != nil {
		return err
	}
	return charger.Debit(ctx, p.SourceID, p.Amount)
}

func (s *RecurringService) charger(method string) (Charger, error) {
	switch method {
	case models.MethodCard:
		return s.Cards, nil
	case models.MethodPortfolio:
		return s.Portfolios, nil
	default:
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}
}

// checkSource verifies that the card or portfolio is held in the payment
// currency.
func (s *RecurringService) checkSource(ctx context.Context, method, sourceID, currency string) error {
	charger, err := s.charger(method)
	if err != nil {
		return err
	}
	got, err := charger.Currency(ctx, sourceID)
	if err != nil {
		return err
	}
	if got != currency {
		return fmt.Errorf("%w: %s %s is in %s, payment is in %s", models.ErrCurrencyMismatch, strings.ToLower(method), sourceID, got, currency)
	}
	return nil
}

func (s *RecurringService) actAs(ctx context.Context, userID string) (context.Context, error) {
	principal := identity.Principal{UserID: userID, Roles: []string{identity.RoleClient}}
	ctx = identity.WithPrincipal(ctx, principal)
	if s.Signer == nil {
		return ctx, nil
	}
	token, err := s.Signer.Sign(principal)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return identity.WithToken(ctx, token), nil
}

func (s *RecurringService) publish(ctx context.Context, p *models.RecurringPayment, now time.Time) {
	evt := events.RecurringExecutedEvent{
		RecurringID: p.ID,
		UserID:      p.UserID,
		Provider:    p.Provider,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Success:     p.FailureCount == 0,
		Error:       p.LastError,
		NextRun:     p.NextExecutionDate,
		ExecutedAt:  now,
	}
	if err := s.Publisher.PublishWithKey(ctx, events.TopicRecurringExecuted, p.ID, evt); err != nil {
		logrus.WithField("recurring_id", p.ID).Warnf("recurring event not published: %v", err)
	}

	var cause error
	if !evt.Success {
		cause = errors.New(p.LastError)
	}
	s.audit(ctx, p.UserID, "RECURRING_EXECUTED", fmt.Sprintf("%s %s to %s", p.Amount, p.Currency, p.Provider), cause)
}

func (s *RecurringService) audit(ctx context.Context, userID, action, description string, cause error) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, cause)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}
