package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/wallet/dto"
	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"github.com/jeffleon2/ebanking/internal/wallet/service"
	"github.com/jeffleon2/ebanking/internal/wallet/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	alice = identity.Principal{UserID: "user-1", Roles: []string{identity.RoleClient}}
	now   = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo     *mocks.MockWalletRepo
	accounts *mocks.MockAccountClient
	pub      *mocks.MockPublisher
	svc      *service.WalletService
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		repo:     mocks.NewMockWalletRepo(t),
		accounts: mocks.NewMockAccountClient(t),
		pub:      mocks.NewMockPublisher(t),
	}
	f.svc = service.NewWalletService(f.repo, f.accounts, f.pub)
	f.svc.Now = func() time.Time { return now }
	return f
}

func (f fixture) expectAudit() {
	f.pub.EXPECT().PublishWithKey(mock.Anything, events.TopicAuditEvents, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func amount(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

func wallet(spent, budget int64) *models.Wallet {
	return &models.Wallet{
		ID:          "w-1",
		WalletRef:   "WLT-0000AAAA",
		UserID:      "user-1",
		AccountRef:  "acc-1",
		Currency:    "EUR",
		BudgetLimit: decimal.NewFromInt(budget),
		Spent:       decimal.NewFromInt(spent),
	}
}

// lockWallet makes RecordExpense behave like the repository: run the guard
// against w and add the expense when it passes.
func lockWallet(w *models.Wallet, storeErr error) func(context.Context, string, *models.Expense, func(*models.Wallet) error) (*models.Wallet, error) {
	return func(_ context.Context, _ string, e *models.Expense, guard func(*models.Wallet) error) (*models.Wallet, error) {
		if err := guard(w); err != nil {
			return nil, err
		}
		if storeErr != nil {
			return nil, storeErr
		}
		w.Spent = w.Spent.Add(e.Amount)
		return w, nil
	}
}

func TestCreateWallet_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit()

	f.accounts.EXPECT().GetAccount(ctx, "acc-1").Return(&client.Account{ExternalRef: "acc-1", UserID: "user-1", Currency: "MAD"}, nil).Once()
	f.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(w *models.Wallet) bool {
			return w.UserID == "user-1" && w.Currency == "MAD" && w.Name == "Groceries" && len(w.WalletRef) == 12
		})).
		Return(nil).
		Once()

	w, err := f.svc.CreateWallet(ctx, alice, &dto.CreateWallet{Name: " Groceries ", AccountRef: "acc-1", BudgetLimit: decimal.NewFromInt(500)})

	assert.NoError(t, err)
	assert.Equal(t, "MAD", w.Currency)
}

func TestCreateWallet_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateWallet(ctx, alice, &dto.CreateWallet{Name: "x", AccountRef: "acc-1"})
	assert.ErrorIs(t, err, models.ErrInvalidBudget)

	_, err = f.svc.CreateWallet(ctx, alice, &dto.CreateWallet{AccountRef: "acc-1", BudgetLimit: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, httperr.ErrValidation)

	f.accounts.EXPECT().GetAccount(ctx, "acc-2").Return(&client.Account{UserID: "user-2"}, nil).Once()
	_, err = f.svc.CreateWallet(ctx, alice, &dto.CreateWallet{Name: "x", AccountRef: "acc-2", BudgetLimit: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, models.ErrAccountNotOwned)

	f.accounts.EXPECT().GetAccount(ctx, "missing").Return(nil, httperr.ErrNotFound).Once()
	_, err = f.svc.CreateWallet(ctx, alice, &dto.CreateWallet{Name: "x", AccountRef: "missing", BudgetLimit: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestAddExpense_WithinBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit()
	w := wallet(60, 100)

	f.repo.EXPECT().GetByRef(ctx, "WLT-0000AAAA").Return(w, nil).Once()
	f.repo.EXPECT().RecordExpense(ctx, "w-1", mock.Anything, mock.Anything).RunAndReturn(lockWallet(w, nil)).Once()
	f.accounts.EXPECT().Debit(ctx, "acc-1", amount(40)).Return(&client.Account{}, nil).Once()
	f.pub.EXPECT().
		PublishWithKey(ctx, events.TopicWalletExpenseCreated, "WLT-0000AAAA", mock.MatchedBy(func(e events.ExpenseCreatedEvent) bool {
			return e.Category == "FOOD" && e.Spent.Equal(decimal.NewFromInt(100)) && e.CreatedAt.Equal(now)
		})).
		Return(nil).
		Once()

	e, err := f.svc.AddExpense(ctx, alice, "WLT-0000AAAA", &dto.AddExpense{Amount: decimal.NewFromInt(40), Category: "food"})

	assert.NoError(t, err)
	assert.Equal(t, "FOOD", e.Category)
	assert.True(t, w.Spent.Equal(decimal.NewFromInt(100)))
}

func TestAddExpense_OverBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit()
	w := wallet(90, 100)

	f.repo.EXPECT().GetByRef(ctx, "WLT-0000AAAA").Return(w, nil).Once()
	f.repo.EXPECT().RecordExpense(ctx, "w-1", mock.Anything, mock.Anything).RunAndReturn(lockWallet(w, nil)).Once()

	_, err := f.svc.AddExpense(ctx, alice, "WLT-0000AAAA", &dto.AddExpense{Amount: decimal.NewFromInt(11), Category: "food"})

	assert.ErrorIs(t, err, models.ErrBudgetExceeded)
	f.accounts.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddExpense_DebitDeclined(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit()
	w := wallet(0, 100)

	f.repo.EXPECT().GetByRef(ctx, "WLT-0000AAAA").Return(w, nil).Once()
	f.repo.EXPECT().RecordExpense(ctx, "w-1", mock.Anything, mock.Anything).RunAndReturn(lockWallet(w, nil)).Once()
	f.accounts.EXPECT().Debit(ctx, "acc-1", mock.Anything).Return(nil, httperr.ErrInsufficientFunds).Once()

	_, err := f.svc.AddExpense(ctx, alice, "WLT-0000AAAA", &dto.AddExpense{Amount: decimal.NewFromInt(10), Category: "food"})

	assert.ErrorIs(t, err, httperr.ErrInsufficientFunds)
	f.accounts.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddExpense_RefundWhenStoreFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit()
	w := wallet(0, 100)
	storeErr := errors.New("insert failed")

	f.repo.EXPECT().GetByRef(ctx, "WLT-0000AAAA").Return(w, nil).Once()
	f.repo.EXPECT().RecordExpense(ctx, "w-1", mock.Anything, mock.Anything).RunAndReturn(lockWallet(w, storeErr)).Once()
	f.accounts.EXPECT().Debit(ctx, "acc-1", amount(10)).Return(&client.Account{}, nil).Once()
	f.accounts.EXPECT().Credit(ctx, "acc-1", amount(10)).Return(&client.Account{}, nil).Once()

	_, err := f.svc.AddExpense(ctx, alice, "WLT-0000AAAA", &dto.AddExpense{Amount: decimal.NewFromInt(10), Category: "food"})

	assert.ErrorIs(t, err, storeErr)
}

func TestAddExpense_NotOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := wallet(0, 100)
	w.UserID = "user-2"

	f.repo.EXPECT().GetByRef(ctx, "WLT-0000AAAA").Return(w, nil).Once()

	_, err := f.svc.AddExpense(ctx, alice, "WLT-0000AAAA", &dto.AddExpense{Amount: decimal.NewFromInt(10), Category: "food"})

	assert.ErrorIs(t, err, models.ErrNotOwner)
}

func TestAddExpense_InvalidAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddExpense(context.Background(), alice, "WLT-0000AAAA", &dto.AddExpense{Amount: decimal.NewFromInt(-5), Category: "food"})

	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w := wallet(120, 100)
	expenses := []models.Expense{{ID: "e-1", Amount: decimal.NewFromInt(120), Category: "RENT"}}

	f.repo.EXPECT().GetByRef(ctx, "WLT-0000AAAA").Return(w, nil).Once()
	f.repo.EXPECT().ListExpenses(ctx, "w-1").Return(expenses, nil).Once()

	s, err := f.svc.Summary(ctx, alice, "WLT-0000AAAA")

	assert.NoError(t, err)
	assert.True(t, s.Remaining.Equal(decimal.NewFromInt(-20)))
	assert.True(t, s.OverBudget)
	assert.Len(t, s.Expenses, 1)
}
