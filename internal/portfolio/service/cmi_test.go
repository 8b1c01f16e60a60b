package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/portfolio/service"
	"github.com/jeffleon2/ebanking/internal/portfolio/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gateway struct {
	accounts   *mocks.MockGatewayRepo
	portfolios *mocks.MockPortfolioRepo
	fx         *mocks.MockConverter
	svc        *service.GatewayService
}

func newGateway(t *testing.T) gateway {
	g := gateway{
		accounts:   mocks.NewMockGatewayRepo(t),
		portfolios: mocks.NewMockPortfolioRepo(t),
		fx:         mocks.NewMockConverter(t),
	}
	pub := mocks.NewMockPublisher(t)
	quietAudit(pub)
	g.svc = service.NewGatewayService(g.accounts, g.portfolios, g.fx, pub)
	g.svc.Now = func() time.Time { return today }
	return g
}

func bankAccount(balance int64) *models.BankAccount {
	return &models.BankAccount{ID: "ba-1", AccountNumber: "MA64011519000001", UserID: carol.UserID, Currency: "MAD", Balance: decimal.NewFromInt(balance)}
}

func TestFundNewPortfolio(t *testing.T) {
	g := newGateway(t)
	g.accounts.EXPECT().ForUser(mock.Anything, carol.UserID).Return(bankAccount(5000), nil).Once()
	g.portfolios.EXPECT().Exists(mock.Anything, carol.UserID, "EUR").Return(false, nil).Once()
	g.fx.EXPECT().Convert(mock.Anything, amount(1100), "MAD", "EUR").
		Return(decimal.NewFromInt(100), decimal.NewFromFloat(0.0909), nil).Once()
	g.accounts.EXPECT().Fund(mock.Anything, mock.MatchedBy(func(f *models.Funding) bool {
		return f.BankAccountID == "ba-1" && f.ConvertedAmount.Equal(decimal.NewFromInt(100))
	}), mock.MatchedBy(func(p *models.Portfolio) bool {
		return p.ID == "" && p.Currency == "EUR" && p.UserID == carol.UserID
	})).Return(nil).Once()

	alert, err := g.svc.FundNewPortfolio(context.Background(), carol, &dto.FundNew{Currency: "eur", Amount: decimal.NewFromInt(1100)})

	require.NoError(t, err)
	assert.True(t, alert.Success)
	assert.Equal(t, "portfolio created with 100 EUR", alert.Message)
}

func TestFundNewPortfolio_Refusals(t *testing.T) {
	t.Run("no bank account", func(t *testing.T) {
		g := newGateway(t)
		g.accounts.EXPECT().ForUser(mock.Anything, carol.UserID).Return(nil, models.ErrBankAccountNotFound).Once()

		alert, err := g.svc.FundNewPortfolio(context.Background(), carol, &dto.FundNew{Currency: "EUR", Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)
		assert.False(t, alert.Success)
	})

	t.Run("balance too low", func(t *testing.T) {
		g := newGateway(t)
		g.accounts.EXPECT().ForUser(mock.Anything, carol.UserID).Return(bankAccount(5), nil).Once()
		g.portfolios.EXPECT().Exists(mock.Anything, carol.UserID, "EUR").Return(false, nil).Once()

		alert, err := g.svc.FundNewPortfolio(context.Background(), carol, &dto.FundNew{Currency: "EUR", Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)
		assert.False(t, alert.Success)
		assert.Contains(t, alert.Message, "insufficient balance")
	})

	t.Run("lost the race to the lock", func(t *testing.T) {
		g := newGateway(t)
		g.accounts.EXPECT().ForUser(mock.Anything, carol.UserID).Return(bankAccount(50), nil).Once()
		g.portfolios.EXPECT().Exists(mock.Anything, carol.UserID, "MAD").Return(false, nil).Once()
		g.fx.EXPECT().Convert(mock.Anything, amount(40), "MAD", "MAD").Return(decimal.NewFromInt(40), decimal.NewFromInt(1), nil).Once()
		g.accounts.EXPECT().Fund(mock.Anything, mock.Anything, mock.Anything).Return(models.ErrInsufficientFunds).Once()

		alert, err := g.svc.FundNewPortfolio(context.Background(), carol, &dto.FundNew{Currency: "MAD", Amount: decimal.NewFromInt(40)})
		require.NoError(t, err)
		assert.False(t, alert.Success)
	})
}

func TestFundPortfolio_NotOwned(t *testing.T) {
	g := newGateway(t)
	g.accounts.EXPECT().ForUser(mock.Anything, carol.UserID).Return(bankAccount(500), nil).Once()
	g.portfolios.EXPECT().Get(mock.Anything, "p-9").Return(portfolio("p-9", dave.UserID, "EUR", 0), nil).Once()

	alert, err := g.svc.FundPortfolio(context.Background(), carol, &dto.FundExisting{PortfolioID: "p-9", Amount: decimal.NewFromInt(10)})

	require.NoError(t, err)
	assert.False(t, alert.Success)
	assert.Contains(t, alert.Message, "not owned")
}

func TestAssignUser(t *testing.T) {
	g := newGateway(t)
	account := bankAccount(0)
	g.accounts.EXPECT().GetByNumber(mock.Anything, "MA64011519000001").Return(account, nil).Once()
	g.accounts.EXPECT().Assign(mock.Anything, account, "user-7").Return(nil).Once()
	g.accounts.EXPECT().GetByNumber(mock.Anything, "UNKNOWN").Return(nil, models.ErrBankAccountNotFound).Once()

	ok, err := g.svc.AssignUser(context.Background(), admin, "MA64011519000001", "user-7")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.svc.AssignUser(context.Background(), admin, "UNKNOWN", "user-7")
	assert.ErrorIs(t, err, models.ErrBankAccountNotFound)
}
