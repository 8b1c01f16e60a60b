package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/dto"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/jeffleon2/ebanking/internal/fraud/service"
	"github.com/jeffleon2/ebanking/internal/fraud/service/mocks"
	"github.com/jeffleon2/ebanking/internal/fraud/strategy"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubStrategy struct {
	risk models.Risk
	err  error
}

func (s stubStrategy) Name() string { return "STUB" }

func (s stubStrategy) Evaluate(context.Context, events.PaymentCreatedEvent) (models.Risk, error) {
	return s.risk, s.err
}

func newEvent(amount int64) events.PaymentCreatedEvent {
	return events.PaymentCreatedEvent{
		ID:               "payment-123",
		UserID:           "customer-456",
		SourceAccountRef: "ref-1",
		DestinationIBAN:  "DE89370400440532013000",
		Amount:           decimal.NewFromInt(amount),
		Currency:         "EUR",
		TraceID:          "trace-789",
	}
}

func allowAudit(p *mocks.MockPublisher) {
	p.EXPECT().
		PublishWithKey(mock.Anything, events.TopicAuditEvents, "trace-789", mock.AnythingOfType("events.AuditEvent")).
		Return(nil).
		Maybe()
}

func TestEvaluatePayment_Decisions(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		extra      models.Risk
		wantStatus string
		wantScore  int
		wantRules  []string
	}{
		{"low value approved", 5000, models.Risk{}, events.StatusApproved, 0, nil},
		{"exact threshold approved", 10000, models.Risk{Score: 25}, events.StatusApproved, 25, nil},
		{"high value declined", 15000, models.Risk{}, events.StatusDeclined, 100, []string{models.RuleAmountThreshold}},
		{"new beneficiary held for review", 2500, models.Risk{Score: 60, Rule: models.RuleNewBeneficiaryHigh}, events.StatusReview, 60, []string{models.RuleNewBeneficiaryHigh}},
		{"every violated rule reported", 12000, models.Risk{Score: 90, Rule: models.RuleVelocity}, events.StatusDeclined, 100, []string{models.RuleAmountThreshold, models.RuleVelocity}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockFraudRepo(t)
			pub := mocks.NewMockPublisher(t)
			svc := service.NewFraudService(repo, pub, strategy.Amount{}, stubStrategy{risk: tt.extra})
			ctx := context.Background()
			allowAudit(pub)

			repo.EXPECT().GetCheck(ctx, "payment-123").Return(nil, models.ErrCheckNotFound).Once()
			repo.EXPECT().
				SaveCheck(ctx, mock.MatchedBy(func(c *models.Check) bool {
					return c.PaymentID == "payment-123" && c.Decision == tt.wantStatus && c.Score == tt.wantScore
				})).
				Return(nil).
				Once()
			pub.EXPECT().
				PublishWithKey(ctx, events.TopicPaymentsChecked, "payment-123", mock.MatchedBy(func(e events.FraudCheckEvent) bool {
					return e.ID == "payment-123" && e.TraceID == "trace-789" &&
						e.Status == tt.wantStatus && e.Score == tt.wantScore &&
						assert.ObjectsAreEqual(tt.wantRules, e.Rules)
				})).
				Return(nil).
				Once()

			require.NoError(t, svc.EvaluatePayment(ctx, newEvent(tt.amount)))
		})
	}
}

func TestEvaluatePayment_StrategyErrorRetries(t *testing.T) {
	repo := mocks.NewMockFraudRepo(t)
	pub := mocks.NewMockPublisher(t)
	svc := service.NewFraudService(repo, pub, stubStrategy{err: errors.New("redis down")})
	ctx := context.Background()

	repo.EXPECT().GetCheck(ctx, "payment-123").Return(nil, models.ErrCheckNotFound).Once()

	err := svc.EvaluatePayment(ctx, newEvent(10))
	assert.ErrorContains(t, err, "STUB: redis down")
}

func TestEvaluatePayment_RedeliveryRepublishesStoredDecision(t *testing.T) {
	repo := mocks.NewMockFraudRepo(t)
	pub := mocks.NewMockPublisher(t)
	svc := service.NewFraudService(repo, pub, stubStrategy{err: errors.New("must not run")})
	ctx := context.Background()

	repo.EXPECT().GetCheck(ctx, "payment-123").Return(&models.Check{
		PaymentID: "payment-123",
		TraceID:   "trace-789",
		Score:     90,
		Decision:  events.StatusDeclined,
		Rules:     models.RuleVelocity,
	}, nil).Once()
	pub.EXPECT().
		PublishWithKey(ctx, events.TopicPaymentsChecked, "payment-123", mock.MatchedBy(func(e events.FraudCheckEvent) bool {
			return e.Status == events.StatusDeclined && e.Reason == models.RuleVelocity
		})).
		Return(nil).
		Once()

	require.NoError(t, svc.EvaluatePayment(ctx, newEvent(10)))
}

func TestEvaluatePayment_LookupError(t *testing.T) {
	repo := mocks.NewMockFraudRepo(t)
	svc := service.NewFraudService(repo, mocks.NewMockPublisher(t))
	ctx := context.Background()

	repo.EXPECT().GetCheck(ctx, "payment-123").Return(nil, errors.New("db down")).Once()

	assert.EqualError(t, svc.EvaluatePayment(ctx, newEvent(10)), "db down")
}

func TestRecordOutcome(t *testing.T) {
	repo := mocks.NewMockFraudRepo(t)
	svc := service.NewFraudService(repo, mocks.NewMockPublisher(t))
	ctx := context.Background()

	repo.EXPECT().SetOutcome(ctx, "p1", models.OutcomeSettled).Return(nil).Once()
	repo.EXPECT().SetOutcome(ctx, "p2", models.OutcomeRejected).Return(nil).Once()
	repo.EXPECT().SetOutcome(ctx, "p3", models.OutcomeRejected).Return(nil).Once()

	require.NoError(t, svc.RecordOutcome(ctx, events.PaymentStatusChangedEvent{PaymentID: "p1", To: "COMPLETED"}))
	require.NoError(t, svc.RecordOutcome(ctx, events.PaymentStatusChangedEvent{PaymentID: "p2", To: "REJECTED"}))
	require.NoError(t, svc.RecordOutcome(ctx, events.PaymentStatusChangedEvent{PaymentID: "p3", To: "FRAUD_SUSPECTED"}))
	require.NoError(t, svc.RecordOutcome(ctx, events.PaymentStatusChangedEvent{PaymentID: "p4", To: "VALIDATED"}))
}

func TestAddBlacklist_NormalizesIBAN(t *testing.T) {
	repo := mocks.NewMockFraudRepo(t)
	svc := service.NewFraudService(repo, mocks.NewMockPublisher(t))
	ctx := context.Background()

	repo.EXPECT().
		AddBlacklist(ctx, &models.BlacklistedIBAN{IBAN: "DE89370400440532013000", Reason: "mule"}).
		Return(nil).
		Once()

	entry, err := svc.AddBlacklist(ctx, identity.Principal{UserID: "ops"}, &dto.Blacklist{IBAN: "de89 3704 0044 0532 0130 00", Reason: "mule"})
	require.NoError(t, err)
	assert.Equal(t, "DE89370400440532013000", entry.IBAN)

	_, err = svc.AddBlacklist(ctx, identity.Principal{UserID: "ops"}, &dto.Blacklist{IBAN: "DE00000000000000000000"})
	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestSetLimit(t *testing.T) {
	repo := mocks.NewMockFraudRepo(t)
	svc := service.NewFraudService(repo, mocks.NewMockPublisher(t))
	ctx := context.Background()

	_, err := svc.SetLimit(ctx, "ref-1", &dto.Limit{Currency: "EUR", DailyLimit: decimal.Zero})
	assert.ErrorIs(t, err, models.ErrInvalidLimit)

	repo.EXPECT().
		UpsertLimit(ctx, mock.MatchedBy(func(l *models.AccountLimit) bool {
			return l.AccountRef == "ref-1" && l.Currency == "USD" && l.DailyLimit.Equal(decimal.NewFromInt(500))
		})).
		Return(nil).
		Once()

	limit, err := svc.SetLimit(ctx, "ref-1", &dto.Limit{Currency: " usd", DailyLimit: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.True(t, limit.MonthlyLimit.IsZero())
}
