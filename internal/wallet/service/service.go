package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/jeffleon2/ebanking/internal/wallet/dto"
	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "wallet-service"

// WalletRepo defines the persistence operations of budget wallets.
type WalletRepo interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByRef(ctx context.Context, ref string) (*models.Wallet, error)
	ListByUser(ctx context.Context, userID string) ([]models.Wallet, error)
	ListExpenses(ctx context.Context, walletID string) ([]models.Expense, error)
	RecordExpense(ctx context.Context, walletID string, e *models.Expense, guard func(w *models.Wallet) error) (*models.Wallet, error)
}

// AccountClient is the part of the account service a wallet relies on.
type AccountClient interface {
	GetAccount(ctx context.Context, ref string) (*client.Account, error)
	Debit(ctx context.Context, ref string, amount decimal.Decimal) (*client.Account, error)
	Credit(ctx context.Context, ref string, amount decimal.Decimal) (*client.Account, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// WalletService manages budget wallets. Every expense is paid from the bank
// account the wallet is attached to.
type WalletService struct {
	Repo      WalletRepo
	Accounts  AccountClient
	Publisher Publisher
	Now       func() time.Time
}

func NewWalletService(repo WalletRepo, accounts AccountClient, p Publisher) *WalletService {
	return &WalletService{
		Repo:      repo,
		Accounts:  accounts,
		Publisher: p,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateWallet attaches a new budget to one of the caller's bank accounts.
// The wallet takes the currency of the account.
func (s *WalletService) CreateWallet(ctx context.Context, caller identity.Principal, req *dto.CreateWallet) (*models.Wallet, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.BudgetLimit.IsPositive() {
		return nil, models.ErrInvalidBudget
	}

	account, err := s.Accounts.GetAccount(ctx, req.AccountRef)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(account.UserID) {
		return nil, models.ErrAccountNotOwned
	}

	wallet := req.ToEntity(caller.UserID, account.Currency)
	wallet.WalletRef = models.NewWalletRef()
	if err := s.Repo.Create(ctx, wallet); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.UserID, "WALLET_CREATED", fmt.Sprintf("wallet %s created with budget %s %s", wallet.WalletRef, wallet.BudgetLimit, wallet.Currency), nil)
	return wallet, nil
}

func (s *WalletService) ListWallets(ctx context.Context, caller identity.Principal) ([]models.Wallet, error) {
	return s.Repo.ListByUser(ctx, caller.UserID)
}

func (s *WalletService) Summary(ctx context.Context, caller identity.Principal, ref string) (*dto.Summary, error) {
	wallet, err := s.owned(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	expenses, err := s.Repo.ListExpenses(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}
	remaining := wallet.Remaining()
	return &dto.Summary{
		Wallet:     *wallet,
		Budget:     wallet.BudgetLimit,
		Spent:      wallet.Spent,
		Remaining:  remaining,
		OverBudget: remaining.IsNegative(),
		Expenses:   expenses,
	}, nil
}

// AddExpense debits the attached bank account and books the expense. The
// budget check and the debit run while the wallet row is locked. When the
// expense cannot be stored after the debit, the account is credited back.
func (s *WalletService) AddExpense(ctx context.Context, caller identity.Principal, ref string, req *dto.AddExpense) (*models.Expense, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	wallet, err := s.owned(ctx, caller, ref)
	if err != nil {
		return nil, err
	}

	expense := req.ToEntity(wallet.ID, s.Now())
	debited := false
	updated, err := s.Repo.RecordExpense(ctx, wallet.ID, expense, func(w *models.Wallet) error {
		if !w.CanSpend(expense.Amount) {
			return models.ErrBudgetExceeded
		}
		if _, err := s.Accounts.Debit(ctx, w.AccountRef, expense.Amount); err != nil {
			return err
		}
		debited = true
		return nil
	})
	if err != nil {
		if debited {
			s.refund(ctx, wallet, expense.Amount)
		}
		s.audit(ctx, caller.UserID, "WALLET_EXPENSE", fmt.Sprintf("expense of %s on wallet %s", expense.Amount, wallet.WalletRef), err)
		return nil, err
	}

	evt := events.ExpenseCreatedEvent{
		ExpenseID:   expense.ID,
		WalletRef:   updated.WalletRef,
		UserID:      updated.UserID,
		Amount:      expense.Amount,
		Category:    expense.Category,
		BudgetLimit: updated.BudgetLimit,
		Spent:       updated.Spent,
		CreatedAt:   expense.Date,
	}
	if err := s.Publisher.PublishWithKey(ctx, events.TopicWalletExpenseCreated, updated.WalletRef, evt); err != nil {
		logrus.WithField("wallet_ref", updated.WalletRef).Warnf("expense event not published: %v", err)
	}
	s.audit(ctx, caller.UserID, "WALLET_EXPENSE", fmt.Sprintf("expense of %s %s on wallet %s", expense.Amount, updated.Currency, updated.WalletRef), nil)
	return expense, nil
}

func (s *WalletService) owned(ctx context.Context, caller identity.Principal, ref string) (*models.Wallet, error) {
	wallet, err := s.Repo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(wallet.UserID) {
		return nil, models.ErrNotOwner
	}
	return wallet, nil
}

func (s *WalletService) refund(ctx context.Context, wallet *models.Wallet, amount decimal.Decimal) {
	if _, err := s.Accounts.Credit(ctx, wallet.AccountRef, amount); err != nil {
		logrus.WithFields(logrus.Fields{
			"wallet_ref":  wallet.WalletRef,
			"account_ref": wallet.AccountRef,
		}).Errorf("refund of %s failed: %v", amount, err)
	}
}

func (s *WalletService) audit(ctx context.Context, userID, action, description string, cause error) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, cause)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}
