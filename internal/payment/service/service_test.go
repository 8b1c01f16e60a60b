package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/payment/dto"
	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/jeffleon2/ebanking/internal/payment/service"
	"github.com/jeffleon2/ebanking/internal/payment/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validIBAN = "DE89370400440532013000"

var (
	alice = identity.Principal{UserID: "alice", Roles: []string{identity.RoleClient}}
	bob   = identity.Principal{UserID: "bob", Roles: []string{identity.RoleClient}}
	admin = identity.Principal{UserID: "ops", Roles: []string{identity.RoleAdmin}}
)

type fixture struct {
	repo    *mocks.MockPaymentRepo
	settler *mocks.MockSettler
	service *service.PaymentService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:    mocks.NewMockPaymentRepo(t),
		settler: mocks.NewMockSettler(t),
	}
	f.service = service.NewPaymentService(f.repo, f.settler)
	return f
}

func payment(status models.PaymentStatus) *models.Payment {
	return &models.Payment{
		ID:               "pay-1",
		UserID:           "alice",
		SourceAccountRef: "ref-1",
		DestinationIBAN:  validIBAN,
		Amount:           decimal.NewFromInt(250),
		Currency:         "EUR",
		Type:             models.TypeStandard,
		Status:           status,
		TraceID:          "trace-1",
	}
}

// statusRows reports whether rows start with the status change and audit
// rows of pay-1, followed by exactly the given saga topics.
func statusRows(rows []models.OutboxEvent, saga ...string) bool {
	if len(rows) != 2+len(saga) ||
		rows[0].Topic != events.TopicPaymentStatusChanged || rows[0].Key != "pay-1" ||
		rows[1].Topic != events.TopicAuditEvents || rows[1].Key != "trace-1" {
		return false
	}
	for i, topic := range saga {
		if rows[2+i].Topic != topic || rows[2+i].Key != "pay-1" {
			return false
		}
	}
	return true
}

// movement decodes the account movement carried by a saga outbox row.
func movement(t *testing.T, row models.OutboxEvent) events.AccountMovementRequestedEvent {
	t.Helper()
	var e events.AccountMovementRequestedEvent
	require.NoError(t, json.Unmarshal(row.Payload, &e))
	return e
}

// expectTransition expects a guarded save moving a payment from one status to
// another with its status change, audit and saga rows. The saved rows are
// returned through the pointer.
func (f *fixture) expectTransition(from, to models.PaymentStatus, saga ...string) *[]models.OutboxEvent {
	var saved []models.OutboxEvent
	f.repo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(p *models.Payment) bool { return p.Status == to }), from,
			mock.MatchedBy(func(rows []models.OutboxEvent) bool { return statusRows(rows, saga...) })).
		Run(func(_ context.Context, _ *models.Payment, _ models.PaymentStatus, rows []models.OutboxEvent) {
			saved = rows
		}).
		Return(nil).
		Once()
	return &saved
}

func TestCreatePayment_PersistsWithCreatedEvent(t *testing.T) {
	f := newFixture(t)
	ctx := identity.WithCorrelationID(context.Background(), "corr-1")

	f.repo.EXPECT().
		CreateWithOutbox(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.UserID == "alice" && p.Status == models.StatusPending &&
				p.Type == models.TypeStandard && p.TraceID == "corr-1" && p.ID != ""
		}), mock.MatchedBy(func(rows []models.OutboxEvent) bool {
			if len(rows) != 2 || rows[0].Topic != events.TopicPaymentsCreated || rows[1].Topic != events.TopicAuditEvents || rows[1].Key != "corr-1" {
				return false
			}
			var created events.PaymentCreatedEvent
			if json.Unmarshal(rows[0].Payload, &created) != nil || rows[0].Key != created.ID {
				return false
			}
			var evt events.AuditEvent
			return json.Unmarshal(rows[1].Payload, &evt) == nil && evt.ActionType == "PAYMENT_CREATED" &&
				created.SourceAccountRef == "ref-1" && created.DestinationIBAN == validIBAN &&
				created.Amount.Equal(decimal.NewFromInt(100))
		})).
		Return(nil).
		Once()

	p, err := f.service.CreatePayment(ctx, alice, &dto.CreatePayment{
		SourceAccountRef: " ref-1 ",
		DestinationIBAN:  "de89 3704 0044 0532 0130 00",
		Amount:           decimal.NewFromInt(100),
		Currency:         "eur",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, p.Status)
	assert.Equal(t, "EUR", p.Currency)
}

func TestCreatePayment_StoreFailureReturnsError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().CreateWithOutbox(ctx, mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := f.service.CreatePayment(ctx, alice, &dto.CreatePayment{
		SourceAccountRef: "ref-1",
		DestinationIBAN:  validIBAN,
		Amount:           decimal.NewFromInt(100),
		Currency:         "EUR",
	})
	assert.EqualError(t, err, "db down")
}

func TestCreatePayment_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreatePayment
		want error
	}{
		{"bad iban", dto.CreatePayment{SourceAccountRef: "ref-1", DestinationIBAN: "DE00370400440532013000", Amount: decimal.NewFromInt(1), Currency: "EUR"}, httperr.ErrValidation},
		{"unsupported currency", dto.CreatePayment{SourceAccountRef: "ref-1", DestinationIBAN: validIBAN, Amount: decimal.NewFromInt(1), Currency: "XYZ"}, httperr.ErrValidation},
		{"zero amount", dto.CreatePayment{SourceAccountRef: "ref-1", DestinationIBAN: validIBAN, Amount: decimal.Zero, Currency: "EUR"}, models.ErrInvalidAmount},
		{"unknown type", dto.CreatePayment{SourceAccountRef: "ref-1", DestinationIBAN: validIBAN, Amount: decimal.NewFromInt(1), Currency: "EUR", Type: "wire"}, models.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.service.CreatePayment(context.Background(), alice, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetPayment_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().Get(ctx, "pay-1").Return(payment(models.StatusPending), nil).Times(2)

	_, err := f.service.GetPayment(ctx, bob, "pay-1")
	assert.ErrorIs(t, err, models.ErrNotOwner)

	p, err := f.service.GetPayment(ctx, admin, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "pay-1", p.ID)
}

func TestListPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().List(ctx, "alice", models.StatusCompleted).Return([]models.Payment{}, nil).Once()
	f.repo.EXPECT().List(ctx, "", models.PaymentStatus("")).Return([]models.Payment{*payment(models.StatusPending)}, nil).Once()

	_, err := f.service.ListPayments(ctx, alice, "COMPLETED", true)
	require.NoError(t, err)

	all, err := f.service.ListPayments(ctx, admin, "", true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = f.service.ListPayments(ctx, alice, "LOST", false)
	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestHandleFraudResult_ApprovedAfterFundsValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := payment(models.StatusPending)
	p.FundsVerified = true

	f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
	rows := f.expectTransition(models.StatusPending, models.StatusValidated, events.TopicAccountDebitRequested)

	err := f.service.HandleFraudResult(ctx, events.FraudCheckEvent{ID: "pay-1", Status: events.StatusApproved, Score: 15})
	require.NoError(t, err)
	assert.Equal(t, models.StatusValidated, p.Status)
	assert.True(t, p.FraudCleared)
	assert.Equal(t, 15, p.RiskScore)

	debit := movement(t, (*rows)[2])
	assert.Equal(t, "ref-1", debit.AccountRef)
	assert.True(t, debit.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "PAYMENT_SETTLEMENT", debit.Reason)
}

func TestHandleFraudResult_FailedValidationIsRetried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := payment(models.StatusPending)
	stored.FundsVerified = true

	f.repo.EXPECT().Get(ctx, "pay-1").RunAndReturn(func(context.Context, string) (*models.Payment, error) {
		p := *stored
		return &p, nil
	}).Times(2)
	f.repo.EXPECT().
		Save(ctx, mock.Anything, models.StatusPending, mock.Anything).
		Return(errors.New("db down")).
		Once()
	f.expectTransition(models.StatusPending, models.StatusValidated, events.TopicAccountDebitRequested)

	event := events.FraudCheckEvent{ID: "pay-1", Status: events.StatusApproved}
	assert.Error(t, f.service.HandleFraudResult(ctx, event))
	require.NoError(t, f.service.HandleFraudResult(ctx, event))
}

func TestHandleFraudResult_ApprovedWaitsForFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := payment(models.StatusPending)

	f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
	f.repo.EXPECT().Save(ctx, p, models.StatusPending, []models.OutboxEvent(nil)).Return(nil).Once()

	require.NoError(t, f.service.HandleFraudResult(ctx, events.FraudCheckEvent{ID: "pay-1", Status: events.StatusApproved}))
	assert.Equal(t, models.StatusPending, p.Status)
	assert.True(t, p.FraudCleared)
}

func TestHandleFraudResult_RepeatedReviewIsIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().Get(ctx, "pay-1").Return(payment(models.StatusPendingManualReview), nil).Once()

	require.NoError(t, f.service.HandleFraudResult(ctx, events.FraudCheckEvent{ID: "pay-1", Status: events.StatusReview, Score: 60}))
}

func TestHandleFraudResult_ReviewAndDeclined(t *testing.T) {
	tests := []struct {
		decision string
		want     models.PaymentStatus
	}{
		{events.StatusReview, models.StatusPendingManualReview},
		{events.StatusDeclined, models.StatusFraudSuspected},
	}

	for _, tt := range tests {
		t.Run(tt.decision, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			p := payment(models.StatusPending)

			f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
			f.expectTransition(models.StatusPending, tt.want)

			err := f.service.HandleFraudResult(ctx, events.FraudCheckEvent{ID: "pay-1", Status: tt.decision, Score: 60, Reason: "VELOCITY_THRESHOLD_EXCEEDED"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Status)
			assert.Equal(t, "VELOCITY_THRESHOLD_EXCEEDED", p.FailedReason)
		})
	}
}

func TestHandleFraudResult_IgnoresFinalPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().Get(ctx, "pay-1").Return(payment(models.StatusRejected), nil).Once()

	assert.NoError(t, f.service.HandleFraudResult(ctx, events.FraudCheckEvent{ID: "pay-1", Status: events.StatusApproved}))
}

func TestHandleFraudResult_UnknownDecision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().Get(ctx, "pay-1").Return(payment(models.StatusPending), nil).Once()

	assert.Error(t, f.service.HandleFraudResult(ctx, events.FraudCheckEvent{ID: "pay-1", Status: "MAYBE"}))
}

func TestHandleFundsResult_DeclinedRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := payment(models.StatusPendingManualReview)

	f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
	f.expectTransition(models.StatusPendingManualReview, models.StatusRejected)

	err := f.service.HandleFundsResult(ctx, events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusDeclined, Reason: "Insufficient funds"})
	require.NoError(t, err)
	assert.Equal(t, "Insufficient funds", p.FailedReason)
}

func TestHandleFundsResult_StaleStatusRestoresPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := payment(models.StatusPending)

	f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
	f.repo.EXPECT().Save(ctx, p, models.StatusPending, mock.Anything).Return(models.ErrStaleStatus).Once()

	err := f.service.HandleFundsResult(ctx, events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusDeclined})
	assert.ErrorIs(t, err, models.ErrStaleStatus)
	assert.Equal(t, models.StatusPending, p.Status)
}

func TestHandleDebitResult_SettlesAndCompletes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := payment(models.StatusValidated)

	f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
	f.settler.EXPECT().
		Settle(ctx, client.LegacyPayment{
			TransactionID:    "pay-1",
			SourceAccountRef: "ref-1",
			DestinationIBAN:  validIBAN,
			Amount:           decimal.NewFromInt(250),
			Currency:         "EUR",
		}).
		Return(&client.LegacyResult{TransactionID: "pay-1", Success: true, LegacyReference: "LEG-ABCD1234"}, nil).
		Once()
	f.expectTransition(models.StatusValidated, models.StatusCompleted)

	require.NoError(t, f.service.HandleDebitResult(ctx, events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusApproved}))
	assert.Equal(t, models.StatusCompleted, p.Status)
	assert.Equal(t, "LEG-ABCD1234", p.LegacyReference)
	assert.NotNil(t, p.CompletedAt)
}

func TestHandleDebitResult_SettlementFailureCompensates(t *testing.T) {
	tests := []struct {
		name   string
		result *client.LegacyResult
		err    error
	}{
		{"refused", &client.LegacyResult{Success: false, Message: "closed account"}, nil},
		{"unreachable", nil, httperr.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			p := payment(models.StatusValidated)

			f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
			f.settler.EXPECT().Settle(ctx, mock.Anything).Return(tt.result, tt.err).Once()
			rows := f.expectTransition(models.StatusValidated, models.StatusRejected, events.TopicAccountCreditRequest)

			require.NoError(t, f.service.HandleDebitResult(ctx, events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusApproved}))
			assert.Equal(t, models.StatusRejected, p.Status)
			assert.Contains(t, p.FailedReason, "legacy settlement failed")

			credit := movement(t, (*rows)[2])
			assert.Equal(t, "PAYMENT_COMPENSATION", credit.Reason)
			assert.Equal(t, "ref-1", credit.AccountRef)
		})
	}
}

func TestHandleDebitResult_CompensationSurvivesFailedSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Get(ctx, "pay-1").RunAndReturn(func(context.Context, string) (*models.Payment, error) {
		return payment(models.StatusValidated), nil
	}).Times(2)
	f.settler.EXPECT().Settle(ctx, mock.Anything).Return(&client.LegacyResult{Success: false}, nil).Times(2)
	f.repo.EXPECT().Save(ctx, mock.Anything, models.StatusValidated, mock.Anything).Return(errors.New("db down")).Once()
	f.expectTransition(models.StatusValidated, models.StatusRejected, events.TopicAccountCreditRequest)

	event := events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusApproved}
	assert.Error(t, f.service.HandleDebitResult(ctx, event))
	require.NoError(t, f.service.HandleDebitResult(ctx, event))
}

func TestHandleDebitResult_DeclinedRejectsWithoutCompensation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := payment(models.StatusValidated)

	f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
	f.expectTransition(models.StatusValidated, models.StatusRejected)

	require.NoError(t, f.service.HandleDebitResult(ctx, events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusDeclined, Reason: "account is not active"}))
}

func TestHandleDebitResult_IgnoresPaymentsNotValidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().Get(ctx, "pay-1").Return(payment(models.StatusPending), nil).Once()

	assert.NoError(t, f.service.HandleDebitResult(ctx, events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusApproved}))
}

func TestReview(t *testing.T) {
	t.Run("approve with funds verified validates", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		p := payment(models.StatusPendingManualReview)
		p.FundsVerified = true

		f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
		f.expectTransition(models.StatusPendingManualReview, models.StatusValidated, events.TopicAccountDebitRequested)

		got, err := f.service.Review(ctx, admin, "pay-1", &dto.Review{Approve: true})
		require.NoError(t, err)
		assert.Equal(t, models.StatusValidated, got.Status)
	})

	t.Run("reject as fraud", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		p := payment(models.StatusPendingManualReview)

		f.repo.EXPECT().Get(ctx, "pay-1").Return(p, nil).Once()
		f.expectTransition(models.StatusPendingManualReview, models.StatusFraudSuspected)

		got, err := f.service.Review(ctx, admin, "pay-1", &dto.Review{Fraud: true, Reason: "mule account"})
		require.NoError(t, err)
		assert.Equal(t, "rejected by reviewer: mule account", got.FailedReason)
	})

	t.Run("only held payments", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().Get(ctx, "pay-1").Return(payment(models.StatusPending), nil).Once()

		_, err := f.service.Review(ctx, admin, "pay-1", &dto.Review{Approve: true})
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().Get(ctx, "missing").Return(nil, models.ErrPaymentNotFound).Once()

		_, err := f.service.Review(ctx, admin, "missing", &dto.Review{})
		assert.True(t, errors.Is(err, httperr.ErrNotFound))
	})
}
