package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/recurring/dto"
	"github.com/jeffleon2/ebanking/internal/recurring/models"
	"github.com/jeffleon2/ebanking/internal/recurring/service"
	"github.com/jeffleon2/ebanking/internal/recurring/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	erin  = identity.Principal{UserID: "user-5", Roles: []string{identity.RoleClient}}
	now   = time.Date(2026, 6, 15, 7, 30, 0, 0, time.UTC)
	today = models.Date(now)
)

type fixture struct {
	repo       *mocks.MockRecurringRepo
	cards      *mocks.MockCharger
	portfolios *mocks.MockCharger
	pub        *mocks.MockPublisher
	svc        *service.RecurringService
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		repo:       mocks.NewMockRecurringRepo(t),
		cards:      mocks.NewMockCharger(t),
		portfolios: mocks.NewMockCharger(t),
		pub:        mocks.NewMockPublisher(t),
	}
	f.svc = service.NewRecurringService(f.repo, f.cards, f.portfolios, f.pub)
	f.svc.Now = func() time.Time { return now }
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicAuditEvents, mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func due(id, method string, failures int) models.RecurringPayment {
	return models.RecurringPayment{
		ID:                id,
		UserID:            erin.UserID,
		Provider:          "INWI",
		Method:            method,
		SourceID:          "src-" + id,
		Currency:          "MAD",
		Amount:            decimal.NewFromInt(99),
		Frequency:         models.Monthly,
		NextExecutionDate: today.AddDate(0, 0, -1),
		Status:            models.StatusActive,
		FailureCount:      failures,
	}
}

func TestCreate_FrenchFrequency(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	f.cards.EXPECT().Currency(mock.Anything, "card-1").Return("EUR", nil).Once()
	f.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.RecurringPayment")).Return(nil).Once()

	p, err := f.svc.Create(context.Background(), erin, &dto.CreateRecurring{
		Provider:  "abonnement_netflix",
		Method:    "card",
		SourceID:  "card-1",
		Currency:  "EUR",
		Amount:    decimal.NewFromFloat(13.99),
		Frequency: "hebdomadaire",
		StartDate: &start,
	})

	require.NoError(t, err)
	assert.Equal(t, models.Weekly, p.Frequency)
	assert.Equal(t, "ABONNEMENT_NETFLIX", p.Provider)
	assert.Equal(t, time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC), p.NextExecutionDate)
	assert.Equal(t, models.StatusActive, p.Status)
}

func TestCreate_Invalid(t *testing.T) {
	f := newFixture(t)
	base := func() *dto.CreateRecurring {
		return &dto.CreateRecurring{Provider: "LYDEC", Method: "PORTFOLIO", SourceID: "p-1", Currency: "MAD", Amount: decimal.NewFromInt(1), Frequency: "MONTHLY"}
	}

	req := base()
	req.Provider = "ACME"
	_, err := f.svc.Create(context.Background(), erin, req)
	assert.ErrorIs(t, err, models.ErrInvalidProvider)

	req = base()
	req.Frequency = "FORTNIGHTLY"
	_, err = f.svc.Create(context.Background(), erin, req)
	assert.ErrorIs(t, err, models.ErrInvalidFrequency)

	req = base()
	req.Method = "CASH"
	_, err = f.svc.Create(context.Background(), erin, req)
	assert.ErrorIs(t, err, httperr.ErrValidation)

	req = base()
	req.Amount = decimal.Zero
	_, err = f.svc.Create(context.Background(), erin, req)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestCreate_SourceCurrencyMustMatch(t *testing.T) {
	f := newFixture(t)
	f.portfolios.EXPECT().Currency(mock.Anything, "p-1").Return("EUR", nil).Once()

	_, err := f.svc.Create(context.Background(), erin, &dto.CreateRecurring{
		Provider: "LYDEC", Method: "PORTFOLIO", SourceID: "p-1", Currency: "MAD", Amount: decimal.NewFromInt(99), Frequency: "MONTHLY",
	})

	assert.ErrorIs(t, err, models.ErrCurrencyMismatch)
	assert.ErrorIs(t, err, httperr.ErrUnprocessable)
}

func TestRunDue(t *testing.T) {
	f := newFixture(t)
	card := due("r-card", models.MethodCard, 1)
	portfolio := due("r-pf", models.MethodPortfolio, 2)
	taken := due("r-taken", models.MethodCard, 0)
	nextMonth := card.NextExecutionDate.AddDate(0, 1, 0)

	f.repo.EXPECT().Due(mock.Anything, today).Return([]models.RecurringPayment{card, portfolio, taken}, nil).Once()
	f.repo.EXPECT().Claim(mock.Anything, "r-card", card.NextExecutionDate, nextMonth).Return(true, nil).Once()
	f.repo.EXPECT().Claim(mock.Anything, "r-pf", portfolio.NextExecutionDate, nextMonth).Return(true, nil).Once()
	f.repo.EXPECT().Claim(mock.Anything, "r-taken", taken.NextExecutionDate, nextMonth).Return(false, nil).Once()

	f.cards.EXPECT().Currency(mock.Anything, "src-r-card").Return("MAD", nil).Once()
	f.portfolios.EXPECT().Currency(mock.Anything, "src-r-pf").Return("MAD", nil).Once()
	f.cards.EXPECT().Debit(mock.MatchedBy(func(ctx context.Context) bool {
		p, ok := identity.PrincipalFromContext(ctx)
		return ok && p.UserID == erin.UserID
	}), "src-r-card", amount(99)).Return(nil).Once()
	f.portfolios.EXPECT().Debit(mock.Anything, "src-r-pf", amount(99)).Return(errors.New("portfolio-service: insufficient funds")).Once()

	f.repo.EXPECT().RecordRun(mock.Anything, mock.MatchedBy(func(p *models.RecurringPayment) bool {
		return p.ID == "r-card" && p.FailureCount == 0 && p.NextExecutionDate.Equal(nextMonth)
	})).Return(true, nil).Once()
	f.repo.EXPECT().RecordRun(mock.Anything, mock.MatchedBy(func(p *models.RecurringPayment) bool {
		return p.ID == "r-pf" && p.Status == models.StatusSuspended && p.NextExecutionDate.Equal(portfolio.NextExecutionDate)
	})).Return(true, nil).Once()

	var published []events.RecurringExecutedEvent
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicRecurringExecuted, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, _ string, msg interface{}) {
			published = append(published, msg.(events.RecurringExecutedEvent))
		}).
		Return(nil).Twice()

	report := f.svc.RunDue(context.Background())

	assert.Equal(t, dto.RunReport{Due: 3, Succeeded: 1, Failed: 1, Skipped: 1}, report)
	require.Len(t, published, 2)
	assert.True(t, published[0].Success)
	assert.False(t, published[1].Success)
	assert.Contains(t, published[1].Error, "insufficient funds")
}

func TestRunDue_SignsTokenForSiblingCalls(t *testing.T) {
	f := newFixture(t)
	signer := mocks.NewMockSigner(t)
	f.svc.Signer = signer
	p := due("r-1", models.MethodCard, 0)

	f.repo.EXPECT().Due(mock.Anything, today).Return([]models.RecurringPayment{p}, nil).Once()
	f.repo.EXPECT().Claim(mock.Anything, "r-1", mock.Anything, mock.Anything).Return(true, nil).Once()
	signer.EXPECT().Sign(mock.MatchedBy(func(p identity.Principal) bool { return p.UserID == erin.UserID })).Return("signed", nil).Once()
	signed := mock.MatchedBy(func(ctx context.Context) bool {
		return identity.TokenFromContext(ctx) == "signed"
	})
	f.cards.EXPECT().Currency(signed, "src-r-1").Return("MAD", nil).Once()
	f.cards.EXPECT().Debit(signed, "src-r-1", mock.Anything).Return(nil).Once()
	f.repo.EXPECT().RecordRun(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicRecurringExecuted, "r-1", mock.Anything).Return(nil).Once()

	report := f.svc.RunDue(context.Background())
	assert.Equal(t, 1, report.Succeeded)
}

func TestRunDue_SourceCurrencyMismatchFails(t *testing.T) {
	f := newFixture(t)
	p := due("r-1", models.MethodCard, 0)

	f.repo.EXPECT().Due(mock.Anything, today).Return([]models.RecurringPayment{p}, nil).Once()
	f.repo.EXPECT().Claim(mock.Anything, "r-1", mock.Anything, mock.Anything).Return(true, nil).Once()
	f.cards.EXPECT().Currency(mock.Anything, "src-r-1").Return("EUR", nil).Once()
	f.repo.EXPECT().RecordRun(mock.Anything, mock.MatchedBy(func(p *models.RecurringPayment) bool {
		return p.FailureCount == 1 && p.Status == models.StatusActive
	})).Return(true, nil).Once()
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicRecurringExecuted, "r-1",
		mock.MatchedBy(func(e events.RecurringExecutedEvent) bool { return !e.Success })).Return(nil).Once()

	report := f.svc.RunDue(context.Background())
	assert.Equal(t, 1, report.Failed)
}

func TestRunDue_CancelDuringChargeIsKept(t *testing.T) {
	f := newFixture(t)
	p := due("r-1", models.MethodCard, 0)
	stored := p

	f.repo.EXPECT().Due(mock.Anything, today).Return([]models.RecurringPayment{p}, nil).Once()
	f.repo.EXPECT().Claim(mock.Anything, "r-1", mock.Anything, mock.Anything).Return(true, nil).Once()
	f.cards.EXPECT().Currency(mock.Anything, "src-r-1").Return("MAD", nil).Once()
	f.repo.EXPECT().Get(mock.Anything, "r-1").Return(&stored, nil).Once()
	f.repo.EXPECT().Cancel(mock.Anything, "r-1").Run(func(context.Context, string) {
		stored.Status = models.StatusCanceled
	}).Return(nil).Once()
	f.cards.EXPECT().Debit(mock.Anything, "src-r-1", amount(99)).Run(func(context.Context, string, decimal.Decimal) {
		_, err := f.svc.Cancel(context.Background(), erin, "r-1")
		require.NoError(t, err)
	}).Return(nil).Once()
	f.repo.EXPECT().RecordRun(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, run *models.RecurringPayment) (bool, error) {
		if stored.Status != models.StatusActive {
			return false, nil
		}
		stored = *run
		return true, nil
	}).Once()
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicRecurringExecuted, "r-1", mock.Anything).Return(nil).Once()

	report := f.svc.RunDue(context.Background())

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, models.StatusCanceled, stored.Status)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	p := due("r-1", models.MethodCard, 0)
	f.repo.EXPECT().Get(mock.Anything, "r-1").Return(&p, nil).Once()
	f.repo.EXPECT().Cancel(mock.Anything, "r-1").Return(nil).Once()

	got, err := f.svc.Cancel(context.Background(), erin, "r-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, got.Status)
}

func TestResume(t *testing.T) {
	f := newFixture(t)
	p := due("r-1", models.MethodCard, 3)
	p.Status = models.StatusSuspended
	p.LastError = "card blocked"
	f.repo.EXPECT().Get(mock.Anything, "r-1").Return(&p, nil).Once()
	f.repo.EXPECT().Resume(mock.Anything, "r-1").Return(true, nil).Once()

	got, err := f.svc.Resume(context.Background(), erin, "r-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Zero(t, got.FailureCount)
	assert.Empty(t, got.LastError)
}

func TestResume_OnlySuspended(t *testing.T) {
	f := newFixture(t)
	p := due("r-1", models.MethodCard, 0)
	f.repo.EXPECT().Get(mock.Anything, "r-1").Return(&p, nil).Once()

	_, err := f.svc.Resume(context.Background(), erin, "r-1")
	assert.ErrorIs(t, err, models.ErrNotActive)
}

func TestResume_ChangedConcurrently(t *testing.T) {
	f := newFixture(t)
	p := due("r-1", models.MethodCard, 3)
	p.Status = models.StatusSuspended
	f.repo.EXPECT().Get(mock.Anything, "r-1").Return(&p, nil).Once()
	f.repo.EXPECT().Resume(mock.Anything, "r-1").Return(false, nil).Once()

	_, err := f.svc.Resume(context.Background(), erin, "r-1")
	assert.ErrorIs(t, err, models.ErrNotActive)
}
