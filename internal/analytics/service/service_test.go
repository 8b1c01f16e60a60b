package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/analytics/metrics"
	"github.com/jeffleon2/ebanking/internal/analytics/models"
	"github.com/jeffleon2/ebanking/internal/analytics/service"
	"github.com/jeffleon2/ebanking/internal/analytics/service/mocks"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	client = identity.Principal{UserID: "user-1", Roles: []string{identity.RoleClient}}
	admin  = identity.Principal{UserID: "root", Roles: []string{identity.RoleAdmin}}
)

type fixture struct {
	svc  *service.AnalyticsService
	repo *mocks.MockExpenseRepo
	reg  *prometheus.Registry
}

func newFixture(t *testing.T) *fixture {
	reg := prometheus.NewRegistry()
	repo := mocks.NewMockExpenseRepo(t)
	svc := service.NewAnalyticsService(repo, metrics.New(reg))
	svc.Now = func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC) }
	return &fixture{svc: svc, repo: repo, reg: reg}
}

// samples sums the counter values, or histogram sample counts, of a family.
func (f *fixture) samples(t *testing.T, name string) float64 {
	families, err := f.reg.Gather()
	require.NoError(t, err)
	var n float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				n += m.GetCounter().GetValue()
			}
			if m.GetHistogram() != nil {
				n += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return n
}

func TestConsume_PaymentAndFraudMetrics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Consume(ctx, events.TopicPaymentsCreated, []byte(`{"id":"p-1","amount":"120","currency":"EUR","type":"TRANSFER"}`)))
	require.NoError(t, f.svc.Consume(ctx, events.TopicPaymentsChecked, []byte(`{"id":"p-1","status":"APPROVED","score":20}`)))
	require.NoError(t, f.svc.Consume(ctx, events.TopicPaymentStatusChanged, []byte(`{"payment_id":"p-1","from":"VALIDATED","to":"COMPLETED"}`)))
	require.NoError(t, f.svc.Consume(ctx, events.TopicAccountFundsVerified, []byte(`{"payment_id":"p-1","status":"SUFFICIENT"}`)))

	assert.Equal(t, 1.0, f.samples(t, "payments_total"))
	assert.Equal(t, 1.0, f.samples(t, "payment_amounts"))
	assert.Equal(t, 1.0, f.samples(t, "fraud_checks_total"))
	assert.Equal(t, 1.0, f.samples(t, "fraud_scores"))
	assert.Equal(t, 1.0, f.samples(t, "payment_status_transitions_total"))
	assert.Equal(t, 1.0, f.samples(t, "account_funds_checks_total"))
}

func TestConsume_ProjectsExpense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(e *models.Expense) bool {
			return e.ID == "exp-1" && e.Category == "FOOD" && e.Amount.Equal(decimal.NewFromInt(40))
		})).
		Return(true, nil).
		Once()

	err := f.svc.Consume(ctx, events.TopicWalletExpenseCreated,
		[]byte(`{"expense_id":"exp-1","wallet_ref":"WLT-1","user_id":"user-1","amount":"40","category":"food"}`))

	require.NoError(t, err)
	assert.Equal(t, 1.0, f.samples(t, "wallet_expenses_total"))
}

func TestConsume_RedeliveredExpenseCountedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	msg := []byte(`{"expense_id":"exp-1","wallet_ref":"WLT-1","user_id":"user-1","amount":"40","category":"food"}`)

	f.repo.EXPECT().Save(ctx, mock.Anything).Return(true, nil).Once()
	f.repo.EXPECT().Save(ctx, mock.Anything).Return(false, nil).Once()

	require.NoError(t, f.svc.Consume(ctx, events.TopicWalletExpenseCreated, msg))
	require.NoError(t, f.svc.Consume(ctx, events.TopicWalletExpenseCreated, msg))

	assert.Equal(t, 1.0, f.samples(t, "wallet_expenses_total"))
	assert.Equal(t, 1.0, f.samples(t, "wallet_expense_amounts"))
}

func TestConsume_ExpenseStoreFailureIsRetried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Save(ctx, mock.Anything).Return(false, errors.New("db down")).Once()

	err := f.svc.Consume(ctx, events.TopicWalletExpenseCreated, []byte(`{"expense_id":"exp-1","amount":"40","category":"food"}`))

	assert.Error(t, err)
	assert.Equal(t, 0.0, f.samples(t, "wallet_expenses_total"))
}

func TestConsume_BadPayload(t *testing.T) {
	f := newFixture(t)

	assert.Error(t, f.svc.Consume(context.Background(), events.TopicPaymentsCreated, []byte(`{"amount":`)))
}

func TestTotalExpenses_ClientScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().
		Total(ctx, map[string]interface{}{"category": "FOOD", "user_id": "user-1"}).
		Return(decimal.NewFromInt(75), nil).
		Once()

	total, err := f.svc.TotalExpenses(ctx, client, " food ")

	require.NoError(t, err)
	assert.Equal(t, "FOOD", total.Category)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(75)))
}

func TestTotalExpenses_AdminSeesAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Total(ctx, map[string]interface{}{"category": "RENT"}).Return(decimal.Zero, nil).Once()

	_, err := f.svc.TotalExpenses(ctx, admin, "rent")

	assert.NoError(t, err)
}

func TestTotalExpenses_CategoryRequired(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TotalExpenses(context.Background(), client, "")

	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestCheckBudget(t *testing.T) {
	tests := []struct {
		name    string
		spent   int64
		success bool
		message string
	}{
		{"within budget", 300, true, "Budget respected: 300.00 spent for a limit of 500.00"},
		{"at the limit", 500, true, "Budget respected: 500.00 spent for a limit of 500.00"},
		{"over budget", 650, false, "Budget exceeded: 650.00 spent for a limit of 500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.repo.EXPECT().
				Total(ctx, map[string]interface{}{"wallet_ref": "WLT-1", "user_id": "user-1"}).
				Return(decimal.NewFromInt(tt.spent), nil).
				Once()

			alert, err := f.svc.CheckBudget(ctx, client, "WLT-1", decimal.NewFromInt(500))

			require.NoError(t, err)
			assert.Equal(t, tt.success, alert.Success)
			assert.Equal(t, tt.message, alert.Message)
			assert.Equal(t, "2026-05-06", alert.Date)
		})
	}
}

func TestCheckBudget_InvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckBudget(ctx, client, "", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, httperr.ErrValidation)

	_, err = f.svc.CheckBudget(ctx, client, "WLT-1", decimal.Zero)
	assert.ErrorIs(t, err, httperr.ErrValidation)
}
