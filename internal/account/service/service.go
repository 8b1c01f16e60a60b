package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/account/dto"
	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "account-service"

// AccountRepo defines the persistence operations of the account service.
type AccountRepo interface {
	Create(ctx context.Context, account *models.Account) error
	GetByRef(ctx context.Context, ref string) (*models.Account, error)
	ListByUser(ctx context.Context, userID string) ([]models.Account, error)
	ExistsForCurrency(ctx context.Context, userID string, currency string) (bool, error)
	UpdateStatus(ctx context.Context, ref string, status models.AccountStatus) error
	Move(ctx context.Context, m models.Movement) (*models.Account, error)
	ListEntries(ctx context.Context, accountID string, from time.Time, to time.Time) ([]models.LedgerEntry, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// Converter converts an amount between two currencies and returns the rate used.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from string, to string) (decimal.Decimal, decimal.Decimal, error)
}

// AccountService manages bank accounts and their ledger. It also takes part
// in the payment saga by verifying funds, debiting settled payments and
// crediting compensations.
type AccountService struct {
	Repo      AccountRepo
	Publisher Publisher
	Converter Converter
}

func NewAccountService(repo AccountRepo, publisher Publisher, converter Converter) *AccountService {
	return &AccountService{
		Repo:      repo,
		Publisher: publisher,
		Converter: converter,
	}
}

// CreateAccount opens an account for the caller in the requested currency.
// A user holds at most one account per currency. A positive initial balance
// is booked as a deposit so the ledger always explains the balance.
func (s *AccountService) CreateAccount(ctx context.Context, caller identity.Principal, req *dto.CreateAccount) (*models.Account, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.InitialBalance.IsNegative() {
		return nil, models.ErrInvalidAmount
	}

	exists, err := s.Repo.ExistsForCurrency(ctx, caller.UserID, req.Currency)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateAccount
	}

	account := req.ToEntity(caller.UserID)
	account.Balance = decimal.Zero
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}

	if req.InitialBalance.IsPositive() {
		updated, err := s.Repo.Move(ctx, models.Movement{
			FromRef:      models.SystemRef(account.Currency),
			ToRef:        account.ExternalRef,
			DebitAmount:  req.InitialBalance,
			CreditAmount: req.InitialBalance,
			Type:         models.EntryDeposit,
			Memo:         "initial deposit",
		})
		if err != nil {
			return nil, err
		}
		account = updated
	}

	s.audit(ctx, caller.UserID, "ACCOUNT_CREATED", fmt.Sprintf("account %s opened in %s", account.ExternalRef, account.Currency), nil)
	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, caller identity.Principal, ref string) (*models.Account, error) {
	account, err := s.Repo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if account.IsSystem() || !caller.CanAccess(account.UserID) {
		return nil, models.ErrNotOwner
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, caller identity.Principal) ([]models.Account, error) {
	return s.Repo.ListByUser(ctx, caller.UserID)
}

// GetBalance returns the balance of an active account owned by the caller.
func (s *AccountService) GetBalance(ctx context.Context, caller identity.Principal, ref string) (*dto.Balance, error) {
	account, err := s.GetAccount(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, models.ErrAccountInactive
	}
	return &dto.Balance{AccountRef: account.ExternalRef, Balance: account.Balance, Currency: account.Currency}, nil
}

// Credit deposits amount on the account from the bank side account.
func (s *AccountService) Credit(ctx context.Context, caller identity.Principal, ref string, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.checkMovement(ctx, caller, ref, amount)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.Move(ctx, models.Movement{
		FromRef:      models.SystemRef(account.Currency),
		ToRef:        account.ExternalRef,
		DebitAmount:  amount,
		CreditAmount: amount,
		Type:         models.EntryDeposit,
	})
	s.audit(ctx, account.UserID, "ACCOUNT_CREDIT", fmt.Sprintf("credit %s %s on %s", amount, account.Currency, ref), err)
	return updated, err
}

// Debit withdraws amount from the account. The balance must cover it.
func (s *AccountService) Debit(ctx context.Context, caller identity.Principal, ref string, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.checkMovement(ctx, caller, ref, amount)
	if err != nil {
		return nil, err
	}
	if account.Balance.LessThan(amount) {
		s.audit(ctx, account.UserID, "ACCOUNT_DEBIT", fmt.Sprintf("debit %s %s on %s", amount, account.Currency, ref), models.ErrInsufficientFunds)
		return nil, models.ErrInsufficientFunds
	}

	updated, err := s.Repo.Move(ctx, models.Movement{
		FromRef:      account.ExternalRef,
		ToRef:        models.SystemRef(account.Currency),
		DebitAmount:  amount,
		CreditAmount: amount,
		Type:         models.EntryWithdrawal,
	})
	s.audit(ctx, account.UserID, "ACCOUNT_DEBIT", fmt.Sprintf("debit %s %s on %s", amount, account.Currency, ref), err)
	return updated, err
}

// Transfer moves money from one of the caller's accounts to any other active
// account, converting when the currencies differ.
func (s *AccountService) Transfer(ctx context.Context, caller identity.Principal, req *dto.Transfer) (*dto.TransferResult, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.SenderRef == req.ReceiverRef {
		return nil, models.ErrSameAccount
	}

	sender, err := s.checkMovement(ctx, caller, req.SenderRef, req.Amount)
	if err != nil {
		return nil, err
	}
	if sender.Balance.LessThan(req.Amount) {
		return nil, models.ErrInsufficientFunds
	}

	receiver, err := s.Repo.GetByRef(ctx, req.ReceiverRef)
	if err != nil {
		return nil, err
	}
	if receiver.IsSystem() {
		return nil, models.ErrAccountNotFound
	}
	if !receiver.IsActive() {
		return nil, models.ErrAccountInactive
	}

	credited, rate, err := s.Converter.Convert(ctx, req.Amount, sender.Currency, receiver.Currency)
	if err != nil {
		return nil, err
	}

	_, err = s.Repo.Move(ctx, models.Movement{
		FromRef:      sender.ExternalRef,
		ToRef:        receiver.ExternalRef,
		DebitAmount:  req.Amount,
		CreditAmount: credited,
		Type:         models.EntryTransfer,
		Memo:         req.Memo,
	})
	s.audit(ctx, sender.UserID, "ACCOUNT_TRANSFER", fmt.Sprintf("transfer %s %s from %s to %s", req.Amount, sender.Currency, sender.ExternalRef, receiver.ExternalRef), err)
	if err != nil {
		return nil, err
	}

	return &dto.TransferResult{
		SenderRef:      sender.ExternalRef,
		ReceiverRef:    receiver.ExternalRef,
		DebitedAmount:  req.Amount,
		CreditedAmount: credited,
		Rate:           rate,
		Memo:           req.Memo,
	}, nil
}

// Statement lists the ledger lines of an account within [from, to).
func (s *AccountService) Statement(ctx context.Context, caller identity.Principal, ref string, from, to time.Time) (*dto.Statement, error) {
	if !to.After(from) {
		return nil, models.ErrInvalidPeriod
	}

	account, err := s.GetAccount(ctx, caller, ref)
	if err != nil {
		return nil, err
	}

	entries, err := s.Repo.ListEntries(ctx, account.ID, from, to)
	if err != nil {
		return nil, err
	}

	st := &dto.Statement{
		Number:       fmt.Sprintf("STMT-%d-%s", from.Year(), strings.ToUpper(uuid.NewString()[:8])),
		AccountRef:   account.ExternalRef,
		Currency:     account.Currency,
		From:         from,
		To:           to,
		Lines:        make([]dto.StatementLine, 0, len(entries)),
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
		Balance:      account.Balance,
	}
	for _, e := range entries {
		line := dto.StatementLine{Date: e.CreatedAt, Type: string(e.Type), Status: e.Status, Memo: e.Memo}
		if e.FromAccountID == account.ID {
			line.Direction = "DEBIT"
			line.Amount = e.Amount.Neg()
			st.TotalDebits = st.TotalDebits.Add(e.Amount)
		} else {
			line.Direction = "CREDIT"
			line.Amount = e.CreditedAmount
			st.TotalCredits = st.TotalCredits.Add(e.CreditedAmount)
		}
		st.Lines = append(st.Lines, line)
	}
	return st, nil
}

// StatementCSV renders Statement as DATE,TYPE,AMOUNT,STATUS,MEMO rows.
func (s *AccountService) StatementCSV(ctx context.Context, caller identity.Principal, ref string, from, to time.Time) ([]byte, error) {
	st, err := s.Statement(ctx, caller, ref, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"DATE", "TYPE", "AMOUNT", "STATUS", "MEMO"})
	for _, l := range st.Lines {
		_ = w.Write([]string{l.Date.Format(time.RFC3339), l.Type, l.Amount.StringFixed(2), l.Status, l.Memo})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// PrimaryAccount returns the active EUR account of the user, or the oldest
// active account when there is none.
func (s *AccountService) PrimaryAccount(ctx context.Context, caller identity.Principal, userID string) (*models.Account, error) {
	if !caller.CanAccess(userID) {
		return nil, models.ErrNotOwner
	}

	accounts, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var fallback *models.Account
	for i := range accounts {
		if !accounts[i].IsActive() {
			continue
		}
		if accounts[i].Currency == "EUR" {
			return &accounts[i], nil
		}
		if fallback == nil {
			fallback = &accounts[i]
		}
	}
	if fallback == nil {
		return nil, models.ErrAccountNotFound
	}
	return fallback, nil
}

func (s *AccountService) SetStatus(ctx context.Context, caller identity.Principal, ref string, status string) error {
	st := models.AccountStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !st.IsValid() {
		return models.ErrInvalidStatus
	}
	err := s.Repo.UpdateStatus(ctx, ref, st)
	s.audit(ctx, caller.UserID, "ACCOUNT_STATUS_CHANGED", fmt.Sprintf("account %s set to %s", ref, st), err)
	return err
}

// VerifyFunds answers a payments.created event on accounts.funds.verified.
// Nothing is debited here.
func (s *AccountService) VerifyFunds(ctx context.Context, event events.PaymentCreatedEvent) error {
	response := events.AccountResponseEvent{
		PaymentID:  event.ID,
		AccountRef: event.SourceAccountRef,
		UserID:     event.UserID,
		Status:     events.StatusApproved,
		Amount:     event.Amount,
		TraceID:    event.TraceID,
	}

	account, err := s.Repo.GetByRef(ctx, event.SourceAccountRef)
	switch {
	case errors.Is(err, models.ErrAccountNotFound):
		response.Status, response.Reason = events.StatusDeclined, "source account not found"
	case err != nil:
		return err
	case account.UserID != event.UserID:
		response.Status, response.Reason = events.StatusDeclined, "source account belongs to another user"
	case !account.IsActive():
		response.Status, response.Reason = events.StatusDeclined, "source account is not active"
	case account.Currency != event.Currency:
		response.Status, response.Reason = events.StatusDeclined, "currency mismatch"
	case account.Balance.LessThan(event.Amount):
		response.Status, response.Reason = events.StatusDeclined, "Insufficient funds"
	}

	logrus.WithFields(logrus.Fields{"payment_id": event.ID, "status": response.Status}).Info("funds verified")
	return s.Publisher.PublishWithKey(ctx, events.TopicAccountFundsVerified, event.ID, response)
}

// DebitForPayment settles a validated payment against the source account.
// A redelivered request is answered again without debiting twice.
func (s *AccountService) DebitForPayment(ctx context.Context, event events.AccountMovementRequestedEvent) error {
	response := events.AccountResponseEvent{
		PaymentID:  event.PaymentID,
		AccountRef: event.AccountRef,
		UserID:     event.UserID,
		Status:     events.StatusApproved,
		Amount:     event.Amount,
		TraceID:    event.TraceID,
	}

	_, err := s.Repo.Move(ctx, models.Movement{
		FromRef:      event.AccountRef,
		ToRef:        models.SystemRef(event.Currency),
		DebitAmount:  event.Amount,
		CreditAmount: event.Amount,
		Type:         models.EntryPayment,
		Reference:    event.PaymentID,
		Memo:         event.Reason,
	})
	switch {
	case err == nil, errors.Is(err, models.ErrDuplicateEntry):
	case errors.Is(err, models.ErrInsufficientFunds), errors.Is(err, models.ErrAccountInactive), errors.Is(err, models.ErrAccountNotFound):
		response.Status, response.Reason = events.StatusDeclined, err.Error()
	default:
		return err
	}

	s.audit(ctx, event.UserID, "PAYMENT_DEBIT", fmt.Sprintf("payment %s debit %s", event.PaymentID, response.Status), nil)
	return s.Publisher.PublishWithKey(ctx, events.TopicAccountDebitCompleted, event.PaymentID, response)
}

// RefundPayment credits back a payment whose settlement failed.
func (s *AccountService) RefundPayment(ctx context.Context, event events.AccountMovementRequestedEvent) error {
	_, err := s.Repo.Move(ctx, models.Movement{
		FromRef:      models.SystemRef(event.Currency),
		ToRef:        event.AccountRef,
		DebitAmount:  event.Amount,
		CreditAmount: event.Amount,
		Type:         models.EntryRefund,
		Reference:    "refund-" + event.PaymentID,
		Memo:         event.Reason,
	})
	if errors.Is(err, models.ErrDuplicateEntry) {
		return nil
	}
	s.audit(ctx, event.UserID, "PAYMENT_REFUND", fmt.Sprintf("payment %s refunded %s", event.PaymentID, event.Amount), err)
	return err
}

func (s *AccountService) checkMovement(ctx context.Context, caller identity.Principal, ref string, amount decimal.Decimal) (*models.Account, error) {
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	account, err := s.GetAccount(ctx, caller, ref)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, models.ErrAccountInactive
	}
	return account, nil
}

func (s *AccountService) audit(ctx context.Context, userID, action, description string, cause error) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, cause)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}
