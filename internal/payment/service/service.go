package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/payment/dto"
	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

const ServiceName = "payment-service"

// PaymentRepo defines the persistence operations of the payment service.
type PaymentRepo interface {
	CreateWithOutbox(ctx context.Context, p *models.Payment, outbox []models.OutboxEvent) error
	Get(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, userID string, status models.PaymentStatus) ([]models.Payment, error)
	Save(ctx context.Context, p *models.Payment, expected models.PaymentStatus, outbox []models.OutboxEvent) error
}

// Publisher publishes relayed outbox rows to Kafka.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// Settler hands a debited payment to the legacy core banking system.
type Settler interface {
	Settle(ctx context.Context, p client.LegacyPayment) (*client.LegacyResult, error)
}

// PaymentService orchestrates the payment saga. A payment is created PENDING,
// checked in parallel by the fraud engine and the account service, validated
// once both agree, debited, and finally settled through the legacy adapter.
// A failed settlement is compensated by crediting the source account back.
//
// Every saga message is written to the outbox in the transaction that makes
// the state change, and OutboxRelay delivers it.
type PaymentService struct {
	Repo    PaymentRepo
	Settler Settler

	locks keyedMutex
}

func NewPaymentService(repo PaymentRepo, settler Settler) *PaymentService {
	return &PaymentService{
		Repo:    repo,
		Settler: settler,
	}
}

// CreatePayment persists a PENDING payment together with its payments.created
// and audit outbox rows.
func (s *PaymentService) CreatePayment(ctx context.Context, caller identity.Principal, req *dto.CreatePayment) (*models.Payment, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	traceID := identity.CorrelationIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.New().String()
	}
	payment := req.ToEntity(caller.UserID, traceID)
	payment.ID = uuid.New().String()
	payment.CreatedAt = time.Now().UTC()
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	created, err := outboxRow(payment.ID, events.TopicPaymentsCreated, payment.ID, events.PaymentCreatedEvent{
		ID:               payment.ID,
		UserID:           payment.UserID,
		SourceAccountRef: payment.SourceAccountRef,
		DestinationIBAN:  payment.DestinationIBAN,
		Amount:           payment.Amount,
		Currency:         payment.Currency,
		Type:             string(payment.Type),
		Status:           string(payment.Status),
		TraceID:          payment.TraceID,
		CreatedAt:        payment.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	audit, err := s.auditRow(ctx, payment, "PAYMENT_CREATED", "payment created", nil)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateWithOutbox(ctx, payment, []models.OutboxEvent{created, audit}); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"payment_id": payment.ID, "trace_id": payment.TraceID}).Info("payment created")
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, caller identity.Principal, id string) (*models.Payment, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(p.UserID) {
		return nil, models.ErrNotOwner
	}
	return p, nil
}

// ListPayments returns the caller's payments. Administrators may pass all to
// list every user's payments.
func (s *PaymentService) ListPayments(ctx context.Context, caller identity.Principal, status string, all bool) ([]models.Payment, error) {
	st := models.PaymentStatus(status)
	if st != "" && !st.IsValid() {
		return nil, fmt.Errorf("%w %q", models.ErrInvalidStatus, status)
	}
	userID := caller.UserID
	if all && caller.IsAdmin() {
		userID = ""
	}
	return s.Repo.List(ctx, userID, st)
}

// HandleFraudResult applies the fraud engine's decision.
func (s *PaymentService) HandleFraudResult(ctx context.Context, event events.FraudCheckEvent) error {
	unlock := s.locks.Lock(event.ID)
	defer unlock()

	p, ok, err := s.active(ctx, event.ID)
	if err != nil || !ok {
		return err
	}
	p.RiskScore = event.Score

	switch event.Status {
	case events.StatusApproved:
		p.FraudCleared = true
		return s.advance(ctx, p)
	case events.StatusReview:
		if p.Status == models.StatusPendingManualReview {
			return nil
		}
		return s.transition(ctx, p, models.StatusPendingManualReview, event.Reason)
	case events.StatusDeclined:
		return s.transition(ctx, p, models.StatusFraudSuspected, event.Reason)
	default:
		return fmt.Errorf("unknown fraud decision %q for payment %s", event.Status, event.ID)
	}
}

// HandleFundsResult applies the account service's funds check.
func (s *PaymentService) HandleFundsResult(ctx context.Context, event events.AccountResponseEvent) error {
	unlock := s.locks.Lock(event.PaymentID)
	defer unlock()

	p, ok, err := s.active(ctx, event.PaymentID)
	if err != nil || !ok {
		return err
	}

	if event.Status != events.StatusApproved {
		return s.transition(ctx, p, models.StatusRejected, event.Reason)
	}
	p.FundsVerified = true
	return s.advance(ctx, p)
}

// Review records an administrator's decision on a payment held for review.
func (s *PaymentService) Review(ctx context.Context, caller identity.Principal, id string, req *dto.Review) (*models.Payment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(id)
	defer unlock()

	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != models.StatusPendingManualReview {
		return nil, fmt.Errorf("payment %s is %s: %w", id, p.Status, models.ErrInvalidTransition)
	}

	log := logrus.WithFields(logrus.Fields{"payment_id": id, "reviewer": caller.UserID, "approve": req.Approve})
	switch {
	case req.Approve:
		p.FraudCleared = true
		err = s.advance(ctx, p)
	case req.Fraud:
		err = s.transition(ctx, p, models.StatusFraudSuspected, reviewReason(req.Reason))
	default:
		err = s.transition(ctx, p, models.StatusRejected, reviewReason(req.Reason))
	}
	if err != nil {
		return nil, err
	}
	log.Info("payment reviewed")
	return p, nil
}

// HandleDebitResult settles a debited payment, or rejects it when the debit
// was refused. A failed settlement is compensated.
func (s *PaymentService) HandleDebitResult(ctx context.Context, event events.AccountResponseEvent) error {
	unlock := s.locks.Lock(event.PaymentID)
	defer unlock()

	p, ok, err := s.active(ctx, event.PaymentID)
	if err != nil || !ok {
		return err
	}
	if p.Status != models.StatusValidated {
		logrus.WithFields(logrus.Fields{"payment_id": p.ID, "status": p.Status}).Warn("debit result for payment not validated, ignoring")
		return nil
	}

	if event.Status != events.StatusApproved {
		return s.transition(ctx, p, models.StatusRejected, event.Reason)
	}

	res, err := s.Settler.Settle(ctx, client.LegacyPayment{
		TransactionID:    p.ID,
		SourceAccountRef: p.SourceAccountRef,
		DestinationIBAN:  p.DestinationIBAN,
		Amount:           p.Amount,
		Currency:         p.Currency,
	})
	if err == nil && res.Success {
		now := time.Now().UTC()
		p.CompletedAt = &now
		p.LegacyReference = res.LegacyReference
		return s.transition(ctx, p, models.StatusCompleted, "")
	}

	reason := "legacy settlement failed"
	if err != nil {
		reason = fmt.Sprintf("%s: %v", reason, err)
	} else if res.Message != "" {
		reason = fmt.Sprintf("%s: %s", reason, res.Message)
	}
	credit, err := movementRow(p, events.TopicAccountCreditRequest, "PAYMENT_COMPENSATION")
	if err != nil {
		return err
	}
	logrus.WithField("payment_id", p.ID).Warn("compensating failed settlement")
	return s.transition(ctx, p, models.StatusRejected, reason, credit)
}

// advance persists the verification flags of p. Once both checks passed the
// payment is validated and the debit request is queued in the same write.
func (s *PaymentService) advance(ctx context.Context, p *models.Payment) error {
	if !p.ReadyToValidate() {
		return s.Repo.Save(ctx, p, p.Status, nil)
	}
	p.FailedReason = ""
	debit, err := movementRow(p, events.TopicAccountDebitRequested, "PAYMENT_SETTLEMENT")
	if err != nil {
		return err
	}
	return s.transition(ctx, p, models.StatusValidated, "", debit)
}

// transition moves p to the given status, persisting the status change
// notification, the audit record and any extra saga rows in one transaction.
func (s *PaymentService) transition(ctx context.Context, p *models.Payment, to models.PaymentStatus, reason string, extra ...models.OutboxEvent) error {
	from := p.Status
	if !models.CanTransition(from, to) {
		return fmt.Errorf("%s -> %s: %w", from, to, models.ErrInvalidTransition)
	}
	p.Status = to
	if reason != "" {
		p.FailedReason = reason
	}

	changed, err := outboxRow(p.ID, events.TopicPaymentStatusChanged, p.ID, events.PaymentStatusChangedEvent{
		PaymentID: p.ID,
		UserID:    p.UserID,
		From:      string(from),
		To:        string(to),
		Amount:    p.Amount,
		Currency:  p.Currency,
		Reason:    reason,
		TraceID:   p.TraceID,
		ChangedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	var cause error
	if to == models.StatusRejected || to == models.StatusFraudSuspected {
		cause = errors.New(reason)
	}
	audit, err := s.auditRow(ctx, p, "PAYMENT_"+string(to), fmt.Sprintf("payment %s -> %s", from, to), cause)
	if err != nil {
		return err
	}

	rows := append([]models.OutboxEvent{changed, audit}, extra...)
	if err := s.Repo.Save(ctx, p, from, rows); err != nil {
		p.Status = from
		return err
	}
	logrus.WithFields(logrus.Fields{"payment_id": p.ID, "from": from, "to": to, "reason": reason}).Info("payment status changed")
	return nil
}

// active loads a payment. ok is false when it already reached a terminal
// status, in which case late events are ignored.
func (s *PaymentService) active(ctx context.Context, id string) (*models.Payment, bool, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if p.Status.IsTerminal() {
		logrus.WithFields(logrus.Fields{"payment_id": id, "status": p.Status}).Info("payment already final, ignoring event")
		return p, false, nil
	}
	return p, true, nil
}

func (s *PaymentService) auditRow(ctx context.Context, p *models.Payment, action, description string, cause error) (models.OutboxEvent, error) {
	if identity.CorrelationIDFromContext(ctx) == "" {
		ctx = identity.WithCorrelationID(ctx, p.TraceID)
	}
	evt := events.NewAuditEvent(ctx, ServiceName, p.UserID, action, description, cause)
	evt.Details = fmt.Sprintf("payment_id=%s amount=%s %s", p.ID, p.Amount.StringFixed(2), p.Currency)
	return outboxRow(p.ID, events.TopicAuditEvents, evt.CorrelationID, evt)
}

func movementRow(p *models.Payment, topic, reason string) (models.OutboxEvent, error) {
	return outboxRow(p.ID, topic, p.ID, events.AccountMovementRequestedEvent{
		PaymentID:  p.ID,
		AccountRef: p.SourceAccountRef,
		UserID:     p.UserID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Reason:     reason,
		TraceID:    p.TraceID,
	})
}

func outboxRow(aggregateID, topic, key string, payload interface{}) (models.OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return models.OutboxEvent{}, fmt.Errorf("marshal outbox payload: %w", err)
	}
	return models.OutboxEvent{
		AggregateID: aggregateID,
		Topic:       topic,
		Key:         key,
		Payload:     data,
		Status:      models.OutboxPending,
	}, nil
}

func reviewReason(reason string) string {
	if reason == "" {
		return "rejected by reviewer"
	}
	return "rejected by reviewer: " + reason
}

// keyedMutex serializes work per payment id. Entries are dropped once no
// goroutine holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refLock)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
