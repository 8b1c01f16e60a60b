package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/card/dto"
	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/jeffleon2/ebanking/internal/card/service"
	"github.com/jeffleon2/ebanking/internal/card/service/mocks"
	"github.com/jeffleon2/ebanking/internal/card/vault"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	bob   = identity.Principal{UserID: "user-2", Roles: []string{identity.RoleClient}}
	merch = identity.Principal{UserID: "merchant-1", Roles: []string{identity.RoleClient}}
	now   = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo  *mocks.MockCardRepo
	fx    *mocks.MockConverter
	pub   *mocks.MockPublisher
	vault *vault.Vault
	svc   *service.CardService
}

func newFixture(t *testing.T) fixture {
	v, err := vault.New("unit-test-card-encryption-key")
	require.NoError(t, err)
	f := fixture{
		repo:  mocks.NewMockCardRepo(t),
		fx:    mocks.NewMockConverter(t),
		pub:   mocks.NewMockPublisher(t),
		vault: v.WithCost(bcrypt.MinCost),
	}
	f.svc = service.NewCardService(f.repo, f.vault, f.fx, f.pub)
	f.svc.Now = func() time.Time { return now }
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicAuditEvents, mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

// issued stores a card for number/cvv the way CreateCard would.
func (f fixture) issued(t *testing.T, number, cvv string, limit int64) *models.VirtualCard {
	sealed, err := f.vault.Seal(number)
	require.NoError(t, err)
	hash, err := f.vault.HashCVV(cvv)
	require.NoError(t, err)
	return &models.VirtualCard{
		ID:              "card-1",
		UserID:          bob.UserID,
		NumberEncrypted: sealed,
		NumberHash:      f.vault.Index(number),
		Last4:           number[12:],
		CVVHash:         hash,
		Currency:        "EUR",
		ExpiresOn:       now.AddDate(1, 0, 0),
		Limit:           decimal.NewFromInt(limit),
		Status:          models.StatusActive,
	}
}

func charging(card *models.VirtualCard) func(context.Context, string, *models.CardTransaction, func(*models.VirtualCard) error) (*models.VirtualCard, error) {
	return func(_ context.Context, _ string, tx *models.CardTransaction, guard func(*models.VirtualCard) error) (*models.VirtualCard, error) {
		if err := guard(card); err != nil {
			return nil, err
		}
		card.Limit = card.Limit.Sub(tx.Amount)
		tx.ID = "tx-1"
		return card, nil
	}
}

func TestCreateCard_Success(t *testing.T) {
	f := newFixture(t)

	var stored *models.VirtualCard
	f.repo.EXPECT().ListByUser(mock.Anything, bob.UserID).Return([]models.VirtualCard{{Currency: "USD"}}, nil).Once()
	f.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.VirtualCard")).
		Run(func(_ context.Context, c *models.VirtualCard) { stored = c }).
		Return(nil).Once()

	issued, err := f.svc.CreateCard(context.Background(), bob, &dto.CreateCard{Currency: "eur"})

	require.NoError(t, err)
	assert.Len(t, issued.Number, 16)
	assert.True(t, models.Luhn(issued.Number))
	assert.Len(t, issued.CVV, 3)
	assert.Equal(t, "EUR", issued.Currency)
	assert.True(t, service.DefaultLimit.Equal(issued.Limit))
	assert.Equal(t, "02/27", issued.ExpiresOn)
	assert.Equal(t, "**** **** **** "+issued.Number[12:], issued.MaskedNumber)

	assert.NotContains(t, stored.NumberEncrypted, issued.Number)
	assert.Equal(t, f.vault.Index(issued.Number), stored.NumberHash)
	assert.True(t, f.vault.CheckCVV(stored.CVVHash, issued.CVV))
	assert.Equal(t, models.StatusActive, stored.Status)
}

func TestCreateCard_Rules(t *testing.T) {
	t.Run("one card per currency", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ListByUser(mock.Anything, bob.UserID).Return([]models.VirtualCard{{Currency: "EUR"}}, nil).Once()

		_, err := f.svc.CreateCard(context.Background(), bob, &dto.CreateCard{Currency: "EUR"})
		assert.ErrorIs(t, err, models.ErrDuplicateCurrency)
		assert.ErrorIs(t, err, httperr.ErrConflict)
	})

	t.Run("three cards at most", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ListByUser(mock.Anything, bob.UserID).
			Return([]models.VirtualCard{{Currency: "USD"}, {Currency: "GBP"}, {Currency: "MAD"}}, nil).Once()

		_, err := f.svc.CreateCard(context.Background(), bob, &dto.CreateCard{Currency: "EUR"})
		assert.ErrorIs(t, err, models.ErrTooManyCards)
	})

	t.Run("negative limit", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateCard(context.Background(), bob, &dto.CreateCard{Currency: "EUR", Limit: decimal.NewFromInt(-5)})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	})

	t.Run("unknown currency", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateCard(context.Background(), bob, &dto.CreateCard{Currency: "XYZ"})
		assert.ErrorIs(t, err, httperr.ErrValidation)
	})
}

func TestPay_ConvertsAndCharges(t *testing.T) {
	f := newFixture(t)
	card := f.issued(t, "4111111111111111", "321", 500)

	f.repo.EXPECT().GetByNumberHash(mock.Anything, f.vault.Index("4111111111111111")).Return(card, nil).Once()
	f.fx.EXPECT().Convert(mock.Anything, amount(100), "EUR", "USD").
		Return(decimal.NewFromFloat(108.5), decimal.NewFromFloat(1.085), nil).Once()
	f.repo.EXPECT().Charge(mock.Anything, "card-1", mock.AnythingOfType("*models.CardTransaction"), mock.Anything).
		RunAndReturn(charging(card)).Once()

	receipt, err := f.svc.Pay(context.Background(), merch, &dto.Pay{
		Number:         "4111 1111 1111 1111",
		CVV:            "321",
		Amount:         decimal.NewFromInt(100),
		TargetCurrency: "usd",
	})

	require.NoError(t, err)
	assert.Equal(t, "tx-1", receipt.TransactionID)
	assert.True(t, receipt.ConvertedAmount.Equal(decimal.NewFromFloat(108.5)))
	assert.Equal(t, "USD", receipt.TargetCurrency)
	assert.True(t, receipt.RemainingLimit.Equal(decimal.NewFromInt(400)))
}

func TestPay_Rejections(t *testing.T) {
	pay := func(number, cvv string, amt int64) *dto.Pay {
		return &dto.Pay{Number: number, CVV: cvv, Amount: decimal.NewFromInt(amt), TargetCurrency: "EUR"}
	}

	t.Run("wrong cvv", func(t *testing.T) {
		f := newFixture(t)
		card := f.issued(t, "4111111111111111", "321", 500)
		f.repo.EXPECT().GetByNumberHash(mock.Anything, mock.Anything).Return(card, nil).Once()

		_, err := f.svc.Pay(context.Background(), merch, pay("4111111111111111", "999", 10))
		assert.ErrorIs(t, err, models.ErrInvalidCVV)
	})

	t.Run("unknown number looks like bad details", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByNumberHash(mock.Anything, mock.Anything).Return(nil, models.ErrCardNotFound).Once()

		_, err := f.svc.Pay(context.Background(), merch, pay("4111111111111111", "321", 10))
		assert.ErrorIs(t, err, models.ErrInvalidCVV)
	})

	t.Run("luhn failure", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Pay(context.Background(), merch, pay("4111111111111112", "321", 10))
		assert.ErrorIs(t, err, models.ErrInvalidCVV)
	})

	t.Run("limit exceeded", func(t *testing.T) {
		f := newFixture(t)
		card := f.issued(t, "4111111111111111", "321", 50)
		f.repo.EXPECT().GetByNumberHash(mock.Anything, mock.Anything).Return(card, nil).Once()

		_, err := f.svc.Pay(context.Background(), merch, pay("4111111111111111", "321", 60))
		assert.ErrorIs(t, err, models.ErrLimitExceeded)
		assert.ErrorIs(t, err, httperr.ErrInsufficientFunds)
	})

	t.Run("blocked card", func(t *testing.T) {
		f := newFixture(t)
		card := f.issued(t, "4111111111111111", "321", 500)
		card.Status = models.StatusBlocked
		f.repo.EXPECT().GetByNumberHash(mock.Anything, mock.Anything).Return(card, nil).Once()

		_, err := f.svc.Pay(context.Background(), merch, pay("4111111111111111", "321", 10))
		assert.ErrorIs(t, err, models.ErrCardBlocked)
	})
}

func TestDebit(t *testing.T) {
	f := newFixture(t)
	card := f.issued(t, "4111111111111111", "321", 100)

	f.repo.EXPECT().Get(mock.Anything, "card-1").Return(card, nil).Twice()
	f.repo.EXPECT().Charge(mock.Anything, "card-1", mock.MatchedBy(func(tx *models.CardTransaction) bool {
		return tx.TargetCurrency == "EUR" && tx.Amount.Equal(tx.ConvertedAmount)
	}), mock.Anything).RunAndReturn(charging(card)).Twice()

	receipt, err := f.svc.Debit(context.Background(), bob, "card-1", decimal.NewFromInt(70))
	require.NoError(t, err)
	assert.True(t, receipt.RemainingLimit.Equal(decimal.NewFromInt(30)))

	_, err = f.svc.Debit(context.Background(), bob, "card-1", decimal.NewFromInt(70))
	assert.ErrorIs(t, err, models.ErrLimitExceeded)
}

func TestDebit_NotOwner(t *testing.T) {
	f := newFixture(t)
	card := f.issued(t, "4111111111111111", "321", 100)
	f.repo.EXPECT().Get(mock.Anything, "card-1").Return(card, nil).Once()

	_, err := f.svc.Debit(context.Background(), merch, "card-1", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, models.ErrNotOwner)
}

func TestBlockCard(t *testing.T) {
	f := newFixture(t)
	card := f.issued(t, "4111111111111111", "321", 100)

	f.repo.EXPECT().Get(mock.Anything, "card-1").Return(card, nil).Twice()
	f.repo.EXPECT().SetStatus(mock.Anything, card, models.StatusBlocked).
		Run(func(_ context.Context, c *models.VirtualCard, status string) { c.Status = status }).
		Return(nil).Once()

	view, err := f.svc.BlockCard(context.Background(), bob, "card-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusBlocked, view.Status)

	// already blocked: no second write
	_, err = f.svc.BlockCard(context.Background(), bob, "card-1")
	require.NoError(t, err)
}

func TestDeleteCard_StoreError(t *testing.T) {
	f := newFixture(t)
	card := f.issued(t, "4111111111111111", "321", 100)
	f.repo.EXPECT().Get(mock.Anything, "card-1").Return(card, nil).Once()
	f.repo.EXPECT().Remove(mock.Anything, "card-1").Return(errors.New("db down")).Once()

	err := f.svc.DeleteCard(context.Background(), bob, "card-1")
	assert.EqualError(t, err, "db down")
}
