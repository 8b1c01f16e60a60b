package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/portfolio/service"
	"github.com/jeffleon2/ebanking/internal/portfolio/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	carol = identity.Principal{UserID: "user-3", Roles: []string{identity.RoleClient}}
	dave  = identity.Principal{UserID: "user-4", Roles: []string{identity.RoleClient}}
	admin = identity.Principal{UserID: "ops", Roles: []string{identity.RoleAdmin}}
	today = time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
)

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func quietAudit(p *mocks.MockPublisher) {
	p.EXPECT().PublishWithKey(mock.Anything, events.TopicAuditEvents, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func portfolio(id, user, currency string, balance int64) *models.Portfolio {
	return &models.Portfolio{ID: id, UserID: user, Currency: currency, Balance: decimal.NewFromInt(balance)}
}

func newPortfolioService(t *testing.T) (*service.PortfolioService, *mocks.MockPortfolioRepo, *mocks.MockConverter) {
	repo := mocks.NewMockPortfolioRepo(t)
	fx := mocks.NewMockConverter(t)
	pub := mocks.NewMockPublisher(t)
	quietAudit(pub)
	svc := service.NewPortfolioService(repo, fx, pub)
	svc.Now = func() time.Time { return today }
	return svc, repo, fx
}

func TestCreatePortfolio(t *testing.T) {
	svc, repo, _ := newPortfolioService(t)

	repo.EXPECT().Exists(mock.Anything, carol.UserID, "USD").Return(false, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *models.Portfolio) bool {
		return p.UserID == carol.UserID && p.Currency == "USD" && p.Balance.IsZero()
	})).Return(nil).Once()

	alert, err := svc.CreatePortfolio(context.Background(), carol, &dto.CreatePortfolio{Currency: "usd"})

	require.NoError(t, err)
	assert.True(t, alert.Success)
	assert.Equal(t, "2026-04-02", alert.Date)
}

func TestCreatePortfolio_DuplicateIsAlert(t *testing.T) {
	svc, repo, _ := newPortfolioService(t)
	repo.EXPECT().Exists(mock.Anything, carol.UserID, "EUR").Return(true, nil).Once()

	alert, err := svc.CreatePortfolio(context.Background(), carol, &dto.CreatePortfolio{Currency: "EUR"})

	require.NoError(t, err)
	assert.False(t, alert.Success)
	assert.Contains(t, alert.Message, "already exists")
}

func TestDebit_InsufficientFunds(t *testing.T) {
	svc, repo, _ := newPortfolioService(t)
	repo.EXPECT().Get(mock.Anything, "p-1").Return(portfolio("p-1", carol.UserID, "EUR", 10), nil).Once()
	repo.EXPECT().Move(mock.Anything, "p-1", amount(-50)).Return(nil, models.ErrInsufficientFunds).Once()

	_, err := svc.Debit(context.Background(), carol, "p-1", decimal.NewFromInt(50))
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
}

func TestCredit_NotOwner(t *testing.T) {
	svc, repo, _ := newPortfolioService(t)
	repo.EXPECT().Get(mock.Anything, "p-1").Return(portfolio("p-1", carol.UserID, "EUR", 10), nil).Twice()
	repo.EXPECT().Move(mock.Anything, "p-1", amount(5)).Return(portfolio("p-1", carol.UserID, "EUR", 15), nil).Once()

	_, err := svc.Credit(context.Background(), dave, "p-1", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, models.ErrNotOwner)

	p, err := svc.Credit(context.Background(), admin, "p-1", decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, p.Balance.Equal(decimal.NewFromInt(15)))
}

func TestTransfer_Converts(t *testing.T) {
	svc, repo, fx := newPortfolioService(t)
	repo.EXPECT().Get(mock.Anything, "p-eur").Return(portfolio("p-eur", carol.UserID, "EUR", 200), nil).Once()
	repo.EXPECT().Get(mock.Anything, "p-mad").Return(portfolio("p-mad", dave.UserID, "MAD", 0), nil).Once()
	fx.EXPECT().Convert(mock.Anything, amount(100), "EUR", "MAD").
		Return(decimal.NewFromInt(1090), decimal.NewFromFloat(10.9), nil).Once()
	repo.EXPECT().Transfer(mock.Anything, mock.MatchedBy(func(tr *models.PortfolioTransfer) bool {
		return tr.FromID == "p-eur" && tr.ToID == "p-mad" && tr.ConvertedAmount.Equal(decimal.NewFromInt(1090))
	})).Return(nil).Once()

	tr, err := svc.Transfer(context.Background(), carol, &dto.Transfer{FromID: "p-eur", ToID: "p-mad", Amount: decimal.NewFromInt(100)})

	require.NoError(t, err)
	assert.Equal(t, models.TransferCompleted, tr.Status)
	assert.True(t, tr.Rate.Equal(decimal.NewFromFloat(10.9)))
}

func TestTransfer_Rejections(t *testing.T) {
	svc, repo, _ := newPortfolioService(t)

	_, err := svc.Transfer(context.Background(), carol, &dto.Transfer{FromID: "p-1", ToID: "p-1", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, models.ErrSamePortfolio)

	_, err = svc.Transfer(context.Background(), carol, &dto.Transfer{FromID: "p-1", ToID: "p-2", Amount: decimal.Zero})
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	repo.EXPECT().Get(mock.Anything, "p-1").Return(portfolio("p-1", carol.UserID, "EUR", 5), nil).Once()
	repo.EXPECT().Get(mock.Anything, "p-2").Return(portfolio("p-2", dave.UserID, "EUR", 0), nil).Once()
	_, err = svc.Transfer(context.Background(), carol, &dto.Transfer{FromID: "p-1", ToID: "p-2", Amount: decimal.NewFromInt(6)})
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
}
