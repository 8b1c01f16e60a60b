package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentCreatedEvent struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	SourceAccountRef string          `json:"source_account_ref"`
	DestinationIBAN  string          `json:"destination_iban"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	TraceID          string          `json:"trace_id"`
	CreatedAt        time.Time       `json:"created_at"`
}

type FraudCheckEvent struct {
	ID        string    `json:"id"`
	TraceID   string    `json:"trace_id"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	Rules     []string  `json:"rules,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// AccountResponseEvent answers a funds check or a debit request.
type AccountResponseEvent struct {
	PaymentID  string          `json:"payment_id"`
	AccountRef string          `json:"account_ref"`
	UserID     string          `json:"user_id"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	TraceID    string          `json:"trace_id"`
}

// AccountMovementRequestedEvent asks the account service to debit or credit
// an account on behalf of a payment.
type AccountMovementRequestedEvent struct {
	PaymentID  string          `json:"payment_id"`
	AccountRef string          `json:"account_ref"`
	UserID     string          `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Reason     string          `json:"reason"`
	TraceID    string          `json:"trace_id"`
}

type PaymentStatusChangedEvent struct {
	PaymentID string          `json:"payment_id"`
	UserID    string          `json:"user_id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Reason    string          `json:"reason,omitempty"`
	TraceID   string          `json:"trace_id"`
	ChangedAt time.Time       `json:"changed_at"`
}

type AuditEvent struct {
	UserID        string    `json:"user_id"`
	ActionType    string    `json:"action_type"`
	ServiceName   string    `json:"service_name"`
	Description   string    `json:"description"`
	Details       string    `json:"details,omitempty"`
	Status        string    `json:"status"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type KYCUpdatedEvent struct {
	CustomerID string    `json:"customer_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ExpenseCreatedEvent struct {
	ExpenseID   string          `json:"expense_id"`
	WalletRef   string          `json:"wallet_ref"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	BudgetLimit decimal.Decimal `json:"budget_limit"`
	Spent       decimal.Decimal `json:"spent"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RecurringExecutedEvent struct {
	RecurringID string          `json:"recurring_id"`
	UserID      string          `json:"user_id"`
	Provider    string          `json:"provider"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	NextRun     time.Time       `json:"next_run"`
	ExecutedAt  time.Time       `json:"executed_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
