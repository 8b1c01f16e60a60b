package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/analytics/dto"
	"github.com/jeffleon2/ebanking/internal/analytics/metrics"
	"github.com/jeffleon2/ebanking/internal/analytics/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "analytics-service"

type ExpenseRepo interface {
	Save(ctx context.Context, e *models.Expense) (bool, error)
	Total(ctx context.Context, where map[string]interface{}) (decimal.Decimal, error)
}

type AnalyticsService struct {
	Repo    ExpenseRepo
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func NewAnalyticsService(repo ExpenseRepo, m *metrics.Metrics) *AnalyticsService {
	return &AnalyticsService{
		Repo:    repo,
		Metrics: m,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

// Consume updates the collectors from one bus message. Wallet expenses are
// also projected into the expense table.
func (s *AnalyticsService) Consume(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case events.TopicPaymentsCreated:
		var evt events.PaymentCreatedEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			return fmt.Errorf("error parsing payment created event: %w", err)
		}
		s.Metrics.PaymentsTotal.WithLabelValues(label(evt.Type)).Inc()
		s.Metrics.PaymentAmounts.WithLabelValues(label(evt.Currency)).Observe(evt.Amount.InexactFloat64())

	case events.TopicPaymentsChecked:
		var evt events.FraudCheckEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			return fmt.Errorf("error parsing fraud check event: %w", err)
		}
		s.Metrics.FraudChecksTotal.WithLabelValues(label(evt.Status)).Inc()
		s.Metrics.FraudScores.Observe(float64(evt.Score))

	case events.TopicPaymentStatusChanged:
		var evt events.PaymentStatusChangedEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			return fmt.Errorf("error parsing payment status event: %w", err)
		}
		s.Metrics.PaymentTransitions.WithLabelValues(label(evt.From), label(evt.To)).Inc()

	case events.TopicAccountFundsVerified:
		var evt events.AccountResponseEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			return fmt.Errorf("error parsing account response event: %w", err)
		}
		s.Metrics.AccountResponses.WithLabelValues(label(evt.Status)).Inc()

	case events.TopicWalletExpenseCreated:
		var evt events.ExpenseCreatedEvent
		if err := json.Unmarshal(value, &evt); err != nil {
			return fmt.Errorf("error parsing expense event: %w", err)
		}
		return s.project(ctx, evt)

	default:
		logrus.WithField("topic", topic).Warn("analytics: unknown topic")
	}
	return nil
}

func (s *AnalyticsService) project(ctx context.Context, evt events.ExpenseCreatedEvent) error {
	if evt.ExpenseID == "" {
		logrus.WithField("wallet_ref", evt.WalletRef).Warn("analytics: expense event without id skipped")
		return nil
	}
	e := &models.Expense{
		ID:        evt.ExpenseID,
		WalletRef: evt.WalletRef,
		UserID:    evt.UserID,
		Category:  strings.ToUpper(evt.Category),
		Amount:    evt.Amount,
		SpentAt:   evt.CreatedAt,
	}
	inserted, err := s.Repo.Save(ctx, e)
	if err != nil {
		return err
	}
	if !inserted {
		logrus.WithField("expense_id", e.ID).Debug("analytics: expense already projected")
		return nil
	}
	s.Metrics.WalletExpensesTotal.WithLabelValues(label(e.Category)).Inc()
	s.Metrics.WalletExpenseAmounts.WithLabelValues(label(e.Category)).Observe(e.Amount.InexactFloat64())
	return nil
}

// TotalExpenses sums the expenses of a category. Clients only see their own.
func (s *AnalyticsService) TotalExpenses(ctx context.Context, caller identity.Principal, category string) (*dto.CategoryTotal, error) {
	category = strings.ToUpper(strings.TrimSpace(category))
	if category == "" {
		return nil, models.ErrCategoryRequired
	}
	total, err := s.Repo.Total(ctx, scope(caller, map[string]interface{}{"category": category}))
	if err != nil {
		return nil, err
	}
	return &dto.CategoryTotal{Category: category, Total: total}, nil
}

// CheckBudget compares the spending recorded on a wallet with limit.
func (s *AnalyticsService) CheckBudget(ctx context.Context, caller identity.Principal, walletRef string, limit decimal.Decimal) (*models.Alert, error) {
	walletRef = strings.TrimSpace(walletRef)
	if walletRef == "" {
		return nil, models.ErrWalletRequired
	}
	if !limit.IsPositive() {
		return nil, models.ErrInvalidLimit
	}
	spent, err := s.Repo.Total(ctx, scope(caller, map[string]interface{}{"wallet_ref": walletRef}))
	if err != nil {
		return nil, err
	}
	alert := &models.Alert{Date: s.Now().Format(time.DateOnly), Success: true}
	if spent.GreaterThan(limit) {
		alert.Success = false
		alert.Message = fmt.Sprintf("Budget exceeded: %s spent for a limit of %s", spent.StringFixed(2), limit.StringFixed(2))
	} else {
		alert.Message = fmt.Sprintf("Budget respected: %s spent for a limit of %s", spent.StringFixed(2), limit.StringFixed(2))
	}
	return alert, nil
}

func scope(caller identity.Principal, where map[string]interface{}) map[string]interface{} {
	if !caller.IsAdmin() {
		where["user_id"] = caller.UserID
	}
	return where
}

func label(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
