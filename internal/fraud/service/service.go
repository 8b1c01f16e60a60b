package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/dto"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/jeffleon2/ebanking/internal/fraud/strategy"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

const ServiceName = "fraud-service"

type FraudRepo interface {
	GetCheck(ctx context.Context, paymentID string) (*models.Check, error)
	SaveCheck(ctx context.Context, c *models.Check) error
	SetOutcome(ctx context.Context, paymentID string, outcome string) error
	ListBlacklist(ctx context.Context) ([]models.BlacklistedIBAN, error)
	AddBlacklist(ctx context.Context, b *models.BlacklistedIBAN) error
	RemoveBlacklist(ctx context.Context, iban string) error
	UpsertLimit(ctx context.Context, l *models.AccountLimit) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// FraudService scores payments with every strategy and publishes the
// decision on payments.checked.
type FraudService struct {
	Repo       FraudRepo
	Publisher  Publisher
	Strategies []strategy.Strategy
}

func NewFraudService(repo FraudRepo, p Publisher, strategies ...strategy.Strategy) *FraudService {
	return &FraudService{
		Repo:       repo,
		Publisher:  p,
		Strategies: strategies,
	}
}

// EvaluatePayment scores a new payment. A payment that was already evaluated
// gets its stored decision republished.
func (s *FraudService) EvaluatePayment(ctx context.Context, event events.PaymentCreatedEvent) error {
	log := logrus.WithFields(logrus.Fields{"payment_id": event.ID, "trace_id": event.TraceID})

	existing, err := s.Repo.GetCheck(ctx, event.ID)
	switch {
	case err == nil:
		log.Info("payment already evaluated, republishing decision")
		return s.publish(ctx, existing)
	case !errors.Is(err, models.ErrCheckNotFound):
		return err
	}

	score := 0
	var rules []string
	for _, st := range s.Strategies {
		risk, err := st.Evaluate(ctx, event)
		if err != nil {
			return fmt.Errorf("%s: %w", st.Name(), err)
		}
		if risk.Score > score {
			score = risk.Score
		}
		if risk.Rule != "" {
			rules = append(rules, risk.Rule)
		}
		log.WithFields(logrus.Fields{"strategy": st.Name(), "score": risk.Score}).Debug("strategy evaluated")
	}

	check := &models.Check{
		PaymentID:        event.ID,
		UserID:           event.UserID,
		SourceAccountRef: event.SourceAccountRef,
		DestinationIBAN:  event.DestinationIBAN,
		Amount:           event.Amount,
		Currency:         event.Currency,
		Score:            score,
		Decision:         models.Decide(score),
		Rules:            strings.Join(rules, ","),
		TraceID:          event.TraceID,
	}
	if err := s.Repo.SaveCheck(ctx, check); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"score": score, "decision": check.Decision, "rules": check.Rules}).Info("fraud evaluation completed")
	s.audit(ctx, check)
	return s.publish(ctx, check)
}

// RecordOutcome keeps final payment statuses so limits only count money
// that actually left the account.
func (s *FraudService) RecordOutcome(ctx context.Context, event events.PaymentStatusChangedEvent) error {
	var outcome string
	switch event.To {
	case "COMPLETED":
		outcome = models.OutcomeSettled
	case "REJECTED", "FRAUD_SUSPECTED":
		outcome = models.OutcomeRejected
	default:
		return nil
	}
	return s.Repo.SetOutcome(ctx, event.PaymentID, outcome)
}

func (s *FraudService) GetCheck(ctx context.Context, paymentID string) (*models.Check, error) {
	return s.Repo.GetCheck(ctx, paymentID)
}

func (s *FraudService) ListBlacklist(ctx context.Context) ([]models.BlacklistedIBAN, error) {
	return s.Repo.ListBlacklist(ctx)
}

func (s *FraudService) AddBlacklist(ctx context.Context, caller identity.Principal, req *dto.Blacklist) (*models.BlacklistedIBAN, error) {
	req.IBAN = validation.NormalizeIBAN(req.IBAN)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	entry := &models.BlacklistedIBAN{IBAN: req.IBAN, Reason: req.Reason}
	if err := s.Repo.AddBlacklist(ctx, entry); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"iban": entry.IBAN, "by": caller.UserID}).Warn("iban blacklisted")
	return entry, nil
}

func (s *FraudService) RemoveBlacklist(ctx context.Context, iban string) error {
	return s.Repo.RemoveBlacklist(ctx, validation.NormalizeIBAN(iban))
}

func (s *FraudService) SetLimit(ctx context.Context, accountRef string, req *dto.Limit) (*models.AccountLimit, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.DailyLimit.IsPositive() || req.MonthlyLimit.IsNegative() {
		return nil, models.ErrInvalidLimit
	}
	limit := &models.AccountLimit{
		AccountRef:   accountRef,
		Currency:     req.Currency,
		DailyLimit:   req.DailyLimit,
		MonthlyLimit: req.MonthlyLimit,
	}
	if err := s.Repo.UpsertLimit(ctx, limit); err != nil {
		return nil, err
	}
	return limit, nil
}

func (s *FraudService) publish(ctx context.Context, c *models.Check) error {
	var rules []string
	if c.Rules != "" {
		rules = strings.Split(c.Rules, ",")
	}
	event := events.FraudCheckEvent{
		ID:        c.PaymentID,
		TraceID:   c.TraceID,
		Status:    c.Decision,
		Score:     c.Score,
		Rules:     rules,
		Reason:    strings.Join(rules, ", "),
		CheckedAt: time.Now().UTC(),
	}
	return s.Publisher.PublishWithKey(ctx, events.TopicPaymentsChecked, c.PaymentID, event)
}

func (s *FraudService) audit(ctx context.Context, c *models.Check) {
	if identity.CorrelationIDFromContext(ctx) == "" {
		ctx = identity.WithCorrelationID(ctx, c.TraceID)
	}
	var cause error
	if c.Decision != events.StatusApproved {
		cause = fmt.Errorf("%s score %d: %s", c.Decision, c.Score, c.Rules)
	}
	evt := events.NewAuditEvent(ctx, ServiceName, c.UserID, "FRAUD_CHECK", "payment "+c.PaymentID+" scored", cause)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("payment_id", c.PaymentID).Warnf("failed to publish audit event: %v", err)
	}
}
