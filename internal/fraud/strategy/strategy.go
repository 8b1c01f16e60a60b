// Package strategy holds the fraud rules. Each rule scores a payment from 0
// to 100 independently; the engine keeps the highest score.
package strategy

import (
	"context"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/jeffleon2/ebanking/internal/fraud/velocity"
	"github.com/shopspring/decimal"
)

type Strategy interface {
	Name() string
	Evaluate(ctx context.Context, p events.PaymentCreatedEvent) (models.Risk, error)
}

var amountThreshold = decimal.NewFromInt(10000)

type Amount struct{}

func (Amount) Name() string { return "AMOUNT_CHECK" }

func (a Amount) Evaluate(_ context.Context, p events.PaymentCreatedEvent) (models.Risk, error) {
	if p.Amount.GreaterThan(amountThreshold) {
		return models.Risk{Strategy: a.Name(), Score: 100, Rule: models.RuleAmountThreshold}, nil
	}
	return models.Risk{Strategy: a.Name()}, nil
}

type BlacklistStore interface {
	IsBlacklisted(ctx context.Context, iban string) (bool, error)
}

type Blacklist struct {
	Store BlacklistStore
}

func (Blacklist) Name() string { return "BLACKLIST_CHECK" }

func (b Blacklist) Evaluate(ctx context.Context, p events.PaymentCreatedEvent) (models.Risk, error) {
	listed, err := b.Store.IsBlacklisted(ctx, p.DestinationIBAN)
	if err != nil {
		return models.Risk{}, err
	}
	if listed {
		return models.Risk{Strategy: b.Name(), Score: 100, Rule: models.RuleBlacklistedIBAN}, nil
	}
	return models.Risk{Strategy: b.Name()}, nil
}

const maxPaymentsInWindow = 5

type Velocity struct {
	Window velocity.Window
	Now    func() time.Time
}

func (Velocity) Name() string { return "VELOCITY_CHECK" }

// Evaluate counts this payment together with the other payments of the
// source account inside the window.
func (v Velocity) Evaluate(ctx context.Context, p events.PaymentCreatedEvent) (models.Risk, error) {
	count, err := v.Window.Record(ctx, p.SourceAccountRef, p.ID, now(v.Now))
	if err != nil {
		return models.Risk{}, err
	}
	switch {
	case count >= maxPaymentsInWindow:
		return models.Risk{Strategy: v.Name(), Score: 90, Rule: models.RuleVelocity}, nil
	case count == maxPaymentsInWindow-1:
		return models.Risk{Strategy: v.Name(), Score: 50}, nil
	case count == maxPaymentsInWindow-2:
		return models.Risk{Strategy: v.Name(), Score: 25}, nil
	default:
		return models.Risk{Strategy: v.Name()}, nil
	}
}

type LimitStore interface {
	GetLimit(ctx context.Context, accountRef, currency string) (*models.AccountLimit, error)
	ApprovedTotal(ctx context.Context, accountRef, currency string, since time.Time) (decimal.Decimal, error)
}

type Limits struct {
	Store        LimitStore
	DefaultDaily decimal.Decimal
	Now          func() time.Time
}

func (Limits) Name() string { return "LIMIT_CHECK" }

func (l Limits) Evaluate(ctx context.Context, p events.PaymentCreatedEvent) (models.Risk, error) {
	limit, err := l.Store.GetLimit(ctx, p.SourceAccountRef, p.Currency)
	if err != nil {
		return models.Risk{}, err
	}
	if limit == nil {
		limit = &models.AccountLimit{DailyLimit: l.DefaultDaily}
	}

	t := now(l.Now).UTC()
	startOfDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	daily, err := l.Store.ApprovedTotal(ctx, p.SourceAccountRef, p.Currency, startOfDay)
	if err != nil {
		return models.Risk{}, err
	}
	daily = daily.Add(p.Amount)
	if limit.DailyLimit.IsPositive() && daily.GreaterThan(limit.DailyLimit) {
		return models.Risk{Strategy: l.Name(), Score: 80, Rule: models.RuleDailyLimit}, nil
	}

	if limit.MonthlyLimit.IsPositive() {
		monthly, err := l.Store.ApprovedTotal(ctx, p.SourceAccountRef, p.Currency, startOfMonth)
		if err != nil {
			return models.Risk{}, err
		}
		if monthly.Add(p.Amount).GreaterThan(limit.MonthlyLimit) {
			return models.Risk{Strategy: l.Name(), Score: 75, Rule: models.RuleMonthlyLimit}, nil
		}
	}

	if !limit.DailyLimit.IsPositive() {
		return models.Risk{Strategy: l.Name()}, nil
	}
	usage := daily.Mul(decimal.NewFromInt(100)).Div(limit.DailyLimit)
	switch {
	case usage.GreaterThan(decimal.NewFromInt(90)):
		return models.Risk{Strategy: l.Name(), Score: 30}, nil
	case usage.GreaterThan(decimal.NewFromInt(70)):
		return models.Risk{Strategy: l.Name(), Score: 15}, nil
	default:
		return models.Risk{Strategy: l.Name()}, nil
	}
}

var newBeneficiaryThreshold = decimal.NewFromInt(2000)

type BeneficiaryStore interface {
	KnownBeneficiary(ctx context.Context, accountRef, iban, excludePaymentID string) (bool, error)
}

type NewBeneficiary struct {
	Store BeneficiaryStore
}

func (NewBeneficiary) Name() string { return "NEW_BENEFICIARY_CHECK" }

func (n NewBeneficiary) Evaluate(ctx context.Context, p events.PaymentCreatedEvent) (models.Risk, error) {
	if !p.Amount.GreaterThan(newBeneficiaryThreshold) {
		return models.Risk{Strategy: n.Name()}, nil
	}
	known, err := n.Store.KnownBeneficiary(ctx, p.SourceAccountRef, p.DestinationIBAN, p.ID)
	if err != nil {
		return models.Risk{}, err
	}
	if !known {
		return models.Risk{Strategy: n.Name(), Score: 60, Rule: models.RuleNewBeneficiaryHigh}, nil
	}
	return models.Risk{Strategy: n.Name()}, nil
}

func now(fn func() time.Time) time.Time {
	if fn == nil {
		return time.Now()
	}
	return fn()
}
