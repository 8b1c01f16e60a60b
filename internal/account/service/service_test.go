package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/account/dto"
	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/jeffleon2/ebanking/internal/account/service"
	"github.com/jeffleon2/ebanking/internal/account/service/mocks"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice = identity.Principal{UserID: "alice", Roles: []string{identity.RoleClient}}
	bob   = identity.Principal{UserID: "bob", Roles: []string{identity.RoleClient}}
	admin = identity.Principal{UserID: "ops", Roles: []string{identity.RoleAdmin}}
)

type fixture struct {
	repo      *mocks.MockAccountRepo
	publisher *mocks.MockPublisher
	converter *mocks.MockConverter
	service   *service.AccountService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:      mocks.NewMockAccountRepo(t),
		publisher: mocks.NewMockPublisher(t),
		converter: mocks.NewMockConverter(t),
	}
	f.service = service.NewAccountService(f.repo, f.publisher, f.converter)
	return f
}

func (f *fixture) allowAudit() {
	f.publisher.EXPECT().
		PublishWithKey(mock.Anything, events.TopicAuditEvents, mock.Anything, mock.AnythingOfType("events.AuditEvent")).
		Return(nil).
		Maybe()
}

func eur(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func activeAccount(user, ref, currency, balance string) *models.Account {
	return &models.Account{
		ID:          "id-" + ref,
		ExternalRef: ref,
		UserID:      user,
		Currency:    currency,
		Balance:     eur(balance),
		Status:      models.StatusActive,
		Kind:        models.KindCustomer,
	}
}

func TestCreateAccount_WithInitialDeposit(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()

	f.repo.EXPECT().ExistsForCurrency(ctx, "alice", "EUR").Return(false, nil).Once()
	f.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *models.Account) bool {
			return a.UserID == "alice" && a.Currency == "EUR" && a.Balance.IsZero()
		})).
		Run(func(_ context.Context, a *models.Account) { a.ExternalRef = "ref-1" }).
		Return(nil).
		Once()
	f.repo.EXPECT().
		Move(ctx, mock.MatchedBy(func(m models.Movement) bool {
			return m.FromRef == models.SystemRef("EUR") && m.ToRef == "ref-1" &&
				m.CreditAmount.Equal(eur("250")) && m.Type == models.EntryDeposit
		})).
		Return(activeAccount("alice", "ref-1", "EUR", "250"), nil).
		Once()

	acc, err := f.service.CreateAccount(ctx, alice, &dto.CreateAccount{Currency: " eur ", InitialBalance: eur("250")})

	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(eur("250")))
}

func TestCreateAccount_DuplicateCurrency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().ExistsForCurrency(ctx, "alice", "USD").Return(true, nil).Once()

	_, err := f.service.CreateAccount(ctx, alice, &dto.CreateAccount{Currency: "USD"})

	assert.ErrorIs(t, err, models.ErrDuplicateAccount)
	assert.Equal(t, 409, httperr.Status(err))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAccount_InvalidCurrency(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateAccount(context.Background(), alice, &dto.CreateAccount{Currency: "ABC"})

	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestGetBalance_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(activeAccount("alice", "ref-1", "EUR", "100"), nil).Times(3)

	bal, err := f.service.GetBalance(ctx, alice, "ref-1")
	require.NoError(t, err)
	assert.True(t, bal.Balance.Equal(eur("100")))
	assert.Equal(t, "EUR", bal.Currency)

	_, err = f.service.GetBalance(ctx, bob, "ref-1")
	assert.ErrorIs(t, err, models.ErrNotOwner)

	_, err = f.service.GetBalance(ctx, admin, "ref-1")
	assert.NoError(t, err)
}

func TestGetBalance_FrozenAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acc := activeAccount("alice", "ref-1", "EUR", "100")
	acc.Status = models.StatusFrozen
	f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(acc, nil).Once()

	_, err := f.service.GetBalance(ctx, alice, "ref-1")

	assert.ErrorIs(t, err, models.ErrAccountInactive)
}

func TestDebit_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()
	f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(activeAccount("alice", "ref-1", "EUR", "10"), nil).Once()

	_, err := f.service.Debit(ctx, alice, "ref-1", eur("10.01"))

	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, 422, httperr.Status(err))
	f.repo.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
}

func TestDebit_Success(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()
	f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(activeAccount("alice", "ref-1", "EUR", "100"), nil).Once()
	f.repo.EXPECT().
		Move(ctx, models.Movement{
			FromRef:      "ref-1",
			ToRef:        models.SystemRef("EUR"),
			DebitAmount:  eur("40"),
			CreditAmount: eur("40"),
			Type:         models.EntryWithdrawal,
		}).
		Return(activeAccount("alice", "ref-1", "EUR", "60"), nil).
		Once()

	acc, err := f.service.Debit(ctx, alice, "ref-1", eur("40"))

	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(eur("60")))
}

func TestCredit_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Credit(context.Background(), alice, "ref-1", decimal.Zero)

	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestTransfer_ConvertsCurrency(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()

	f.repo.EXPECT().GetByRef(ctx, "alice-eur").Return(activeAccount("alice", "alice-eur", "EUR", "500"), nil).Once()
	f.repo.EXPECT().GetByRef(ctx, "bob-mad").Return(activeAccount("bob", "bob-mad", "MAD", "0"), nil).Once()
	f.converter.EXPECT().Convert(ctx, eur("100"), "EUR", "MAD").Return(eur("1085"), eur("10.85"), nil).Once()
	f.repo.EXPECT().
		Move(ctx, mock.MatchedBy(func(m models.Movement) bool {
			return m.FromRef == "alice-eur" && m.ToRef == "bob-mad" &&
				m.DebitAmount.Equal(eur("100")) && m.CreditAmount.Equal(eur("1085")) &&
				m.Type == models.EntryTransfer && m.Memo == "rent"
		})).
		Return(activeAccount("alice", "alice-eur", "EUR", "400"), nil).
		Once()

	res, err := f.service.Transfer(ctx, alice, &dto.Transfer{SenderRef: "alice-eur", ReceiverRef: "bob-mad", Amount: eur("100"), Memo: " rent "})

	require.NoError(t, err)
	assert.True(t, res.CreditedAmount.Equal(eur("1085")))
	assert.True(t, res.Rate.Equal(eur("10.85")))
}

func TestTransfer_SameAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Transfer(context.Background(), alice, &dto.Transfer{SenderRef: "a", ReceiverRef: "a", Amount: eur("1")})

	assert.ErrorIs(t, err, models.ErrSameAccount)
}

func TestTransfer_SenderNotOwned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().GetByRef(ctx, "bob-eur").Return(activeAccount("bob", "bob-eur", "EUR", "500"), nil).Once()

	_, err := f.service.Transfer(ctx, alice, &dto.Transfer{SenderRef: "bob-eur", ReceiverRef: "x", Amount: eur("1")})

	assert.ErrorIs(t, err, models.ErrNotOwner)
}

func TestStatement_SplitsDebitsAndCredits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acc := activeAccount("alice", "ref-1", "EUR", "70")
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(acc, nil).Twice()
	f.repo.EXPECT().ListEntries(ctx, acc.ID, from, to).Return([]models.LedgerEntry{
		{FromAccountID: "sys", ToAccountID: acc.ID, Amount: eur("100"), CreditedAmount: eur("100"), Type: models.EntryDeposit, Status: "COMPLETED", CreatedAt: from.Add(time.Hour)},
		{FromAccountID: acc.ID, ToAccountID: "sys", Amount: eur("30"), CreditedAmount: eur("30"), Type: models.EntryWithdrawal, Status: "COMPLETED", Memo: "atm, downtown", CreatedAt: from.Add(2 * time.Hour)},
	}, nil).Twice()

	st, err := f.service.Statement(ctx, alice, "ref-1", from, to)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(st.Number, "STMT-2026-"))
	require.Len(t, st.Lines, 2)
	assert.Equal(t, "CREDIT", st.Lines[0].Direction)
	assert.Equal(t, "DEBIT", st.Lines[1].Direction)
	assert.True(t, st.Lines[1].Amount.Equal(eur("-30")))
	assert.True(t, st.TotalCredits.Equal(eur("100")))
	assert.True(t, st.TotalDebits.Equal(eur("30")))

	csv, err := f.service.StatementCSV(ctx, alice, "ref-1", from, to)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DATE,TYPE,AMOUNT,STATUS,MEMO", lines[0])
	assert.Equal(t, `2026-01-01T02:00:00Z,WITHDRAWAL,-30.00,COMPLETED,"atm, downtown"`, lines[2])
}

func TestStatement_InvalidPeriod(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.service.Statement(context.Background(), alice, "ref-1", day, day)

	assert.ErrorIs(t, err, models.ErrInvalidPeriod)
}

func TestPrimaryAccount_PrefersEUR(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	closed := activeAccount("alice", "eur-old", "EUR", "0")
	closed.Status = models.StatusClosed
	f.repo.EXPECT().ListByUser(ctx, "alice").Return([]models.Account{
		*activeAccount("alice", "usd", "USD", "1"),
		*closed,
		*activeAccount("alice", "eur", "EUR", "2"),
	}, nil).Once()

	acc, err := f.service.PrimaryAccount(ctx, alice, "alice")

	require.NoError(t, err)
	assert.Equal(t, "eur", acc.ExternalRef)
}

func TestPrimaryAccount_FallsBackToFirstActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().ListByUser(ctx, "alice").Return([]models.Account{
		*activeAccount("alice", "usd", "USD", "1"),
		*activeAccount("alice", "mad", "MAD", "2"),
	}, nil).Once()

	acc, err := f.service.PrimaryAccount(ctx, alice, "alice")

	require.NoError(t, err)
	assert.Equal(t, "usd", acc.ExternalRef)
}

func TestPrimaryAccount_OtherUserForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PrimaryAccount(context.Background(), bob, "alice")

	assert.ErrorIs(t, err, models.ErrNotOwner)
}

func TestSetStatus_Invalid(t *testing.T) {
	f := newFixture(t)

	err := f.service.SetStatus(context.Background(), admin, "ref-1", "sleeping")

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestVerifyFunds(t *testing.T) {
	cases := []struct {
		name    string
		account *models.Account
		repoErr error
		status  string
		reason  string
	}{
		{name: "approved", account: activeAccount("alice", "ref-1", "EUR", "100"), status: events.StatusApproved},
		{name: "insufficient", account: activeAccount("alice", "ref-1", "EUR", "10"), status: events.StatusDeclined, reason: "Insufficient funds"},
		{name: "other owner", account: activeAccount("bob", "ref-1", "EUR", "100"), status: events.StatusDeclined, reason: "source account belongs to another user"},
		{name: "currency", account: activeAccount("alice", "ref-1", "USD", "100"), status: events.StatusDeclined, reason: "currency mismatch"},
		{name: "missing", repoErr: models.ErrAccountNotFound, status: events.StatusDeclined, reason: "source account not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			evt := events.PaymentCreatedEvent{ID: "pay-1", UserID: "alice", SourceAccountRef: "ref-1", Amount: eur("50"), Currency: "EUR", TraceID: "t-1"}

			f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(tc.account, tc.repoErr).Once()
			f.publisher.EXPECT().
				PublishWithKey(ctx, events.TopicAccountFundsVerified, "pay-1", mock.MatchedBy(func(r events.AccountResponseEvent) bool {
					return r.PaymentID == "pay-1" && r.Status == tc.status && r.Reason == tc.reason && r.TraceID == "t-1"
				})).
				Return(nil).
				Once()

			assert.NoError(t, f.service.VerifyFunds(ctx, evt))
		})
	}
}

func TestVerifyFunds_RepositoryErrorIsRetried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.EXPECT().GetByRef(ctx, "ref-1").Return(nil, errors.New("db down")).Once()

	err := f.service.VerifyFunds(ctx, events.PaymentCreatedEvent{ID: "pay-1", SourceAccountRef: "ref-1"})

	assert.EqualError(t, err, "db down")
}

func TestDebitForPayment_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()
	evt := events.AccountMovementRequestedEvent{PaymentID: "pay-1", AccountRef: "ref-1", UserID: "alice", Amount: eur("50"), Currency: "EUR"}

	f.repo.EXPECT().
		Move(ctx, mock.MatchedBy(func(m models.Movement) bool {
			return m.Reference == "pay-1" && m.FromRef == "ref-1" && m.ToRef == models.SystemRef("EUR") && m.Type == models.EntryPayment
		})).
		Return(nil, models.ErrDuplicateEntry).
		Once()
	f.publisher.EXPECT().
		PublishWithKey(ctx, events.TopicAccountDebitCompleted, "pay-1", mock.MatchedBy(func(r events.AccountResponseEvent) bool {
			return r.Status == events.StatusApproved
		})).
		Return(nil).
		Once()

	assert.NoError(t, f.service.DebitForPayment(ctx, evt))
}

func TestDebitForPayment_DeclinedOnInsufficientFunds(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()
	evt := events.AccountMovementRequestedEvent{PaymentID: "pay-1", AccountRef: "ref-1", UserID: "alice", Amount: eur("50"), Currency: "EUR"}

	f.repo.EXPECT().Move(ctx, mock.AnythingOfType("models.Movement")).Return(nil, models.ErrInsufficientFunds).Once()
	f.publisher.EXPECT().
		PublishWithKey(ctx, events.TopicAccountDebitCompleted, "pay-1", mock.MatchedBy(func(r events.AccountResponseEvent) bool {
			return r.Status == events.StatusDeclined && r.Reason != ""
		})).
		Return(nil).
		Once()

	assert.NoError(t, f.service.DebitForPayment(ctx, evt))
}

func TestRefundPayment(t *testing.T) {
	f := newFixture(t)
	f.allowAudit()
	ctx := context.Background()
	evt := events.AccountMovementRequestedEvent{PaymentID: "pay-1", AccountRef: "ref-1", UserID: "alice", Amount: eur("50"), Currency: "EUR"}

	f.repo.EXPECT().
		Move(ctx, mock.MatchedBy(func(m models.Movement) bool {
			return m.Reference == "refund-pay-1" && m.ToRef == "ref-1" && m.Type == models.EntryRefund
		})).
		Return(activeAccount("alice", "ref-1", "EUR", "50"), nil).
		Once()

	assert.NoError(t, f.service.RefundPayment(ctx, evt))
}
