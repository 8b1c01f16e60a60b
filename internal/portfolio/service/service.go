package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "portfolio-service"

type PortfolioRepo interface {
	Create(ctx context.Context, p *models.Portfolio) error
	Get(ctx context.Context, id string) (*models.Portfolio, error)
	ListByUser(ctx context.Context, userID string) ([]models.Portfolio, error)
	Exists(ctx context.Context, userID string, currency string) (bool, error)
	Move(ctx context.Context, id string, delta decimal.Decimal) (*models.Portfolio, error)
	Transfer(ctx context.Context, t *models.PortfolioTransfer) error
	Transfers(ctx context.Context, portfolioID string) ([]models.PortfolioTransfer, error)
}

type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from string, to string) (decimal.Decimal, decimal.Decimal, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// PortfolioService manages multi-currency portfolios, one per user and currency.
type PortfolioService struct {
	Repo      PortfolioRepo
	Converter Converter
	Publisher Publisher
	Now       func() time.Time
}

func NewPortfolioService(repo PortfolioRepo, converter Converter, p Publisher) *PortfolioService {
	return &PortfolioService{
		Repo:      repo,
		Converter: converter,
		Publisher: p,
		Now:       time.Now,
	}
}

// CreatePortfolio opens an empty portfolio. A duplicate is reported through
// the alert, not as an error.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, caller identity.Principal, req *dto.CreatePortfolio) (*models.Alert, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	exists, err := s.Repo.Exists(ctx, caller.UserID, req.Currency)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.duplicate(req.Currency), nil
	}

	p := &models.Portfolio{UserID: caller.UserID, Currency: req.Currency, Balance: decimal.Zero}
	if err := s.Repo.Create(ctx, p); err != nil {
		if errors.Is(err, models.ErrDuplicatePortfolio) {
			return s.duplicate(req.Currency), nil
		}
		return nil, err
	}
	audit(ctx, s.Publisher, caller.UserID, "PORTFOLIO_CREATED", fmt.Sprintf("portfolio %s opened in %s", p.ID, p.Currency), nil)
	return models.NewAlert(s.Now(), true, "portfolio created in %s", req.Currency), nil
}

func (s *PortfolioService) ListPortfolios(ctx context.Context, caller identity.Principal) ([]models.Portfolio, error) {
	return s.Repo.ListByUser(ctx, caller.UserID)
}

func (s *PortfolioService) GetPortfolio(ctx context.Context, caller identity.Principal, id string) (*models.Portfolio, error) {
	return owned(ctx, s.Repo, caller, id)
}

func (s *PortfolioService) Balance(ctx context.Context, caller identity.Principal, id string) (*dto.Balance, error) {
	p, err := owned(ctx, s.Repo, caller, id)
	if err != nil {
		return nil, err
	}
	return &dto.Balance{Balance: p.Balance, Currency: p.Currency}, nil
}

func (s *PortfolioService) Credit(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*models.Portfolio, error) {
	return s.move(ctx, caller, id, amount, "PORTFOLIO_CREDIT")
}

func (s *PortfolioService) Debit(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*models.Portfolio, error) {
	return s.move(ctx, caller, id, amount.Neg(), "PORTFOLIO_DEBIT")
}

// Transfer moves amount, in the source currency, from one of the caller's
// portfolios to any portfolio. The target receives the converted amount.
func (s *PortfolioService) Transfer(ctx context.Context, caller identity.Principal, req *dto.Transfer) (*models.PortfolioTransfer, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	if req.FromID == req.ToID {
		return nil, models.ErrSamePortfolio
	}

	from, err := owned(ctx, s.Repo, caller, req.FromID)
	if err != nil {
		return nil, err
	}
	to, err := s.Repo.Get(ctx, req.ToID)
	if err != nil {
		return nil, err
	}
	if from.Balance.LessThan(req.Amount) {
		return nil, models.ErrInsufficientFunds
	}

	converted, rate, err := s.Converter.Convert(ctx, req.Amount, from.Currency, to.Currency)
	if err != nil {
		return nil, err
	}
	t := &models.PortfolioTransfer{
		FromID:          from.ID,
		ToID:            to.ID,
		Amount:          req.Amount,
		ConvertedAmount: converted,
		Rate:            rate,
		Status:          models.TransferCompleted,
	}
	desc := fmt.Sprintf("transfer of %s %s to portfolio %s (%s %s)", req.Amount, from.Currency, to.ID, converted, to.Currency)
	if err := s.Repo.Transfer(ctx, t); err != nil {
		audit(ctx, s.Publisher, caller.UserID, "PORTFOLIO_TRANSFER", desc, err)
		return nil, err
	}
	audit(ctx, s.Publisher, caller.UserID, "PORTFOLIO_TRANSFER", desc, nil)
	return t, nil
}

func (s *PortfolioService) Transfers(ctx context.Context, caller identity.Principal, id string) ([]models.PortfolioTransfer, error) {
	p, err := owned(ctx, s.Repo, caller, id)
	if err != nil {
		return nil, err
	}
	return s.Repo.Transfers(ctx, p.ID)
}

func (s *PortfolioService) move(ctx context.Context, caller identity.Principal, id string, delta decimal.Decimal, action string) (*models.Portfolio, error) {
	if delta.IsZero() {
		return nil, models.ErrInvalidAmount
	}
	if _, err := owned(ctx, s.Repo, caller, id); err != nil {
		return nil, err
	}
	p, err := s.Repo.Move(ctx, id, delta)
	desc := fmt.Sprintf("%s of %s on portfolio %s", action, delta.Abs(), id)
	if err != nil {
		audit(ctx, s.Publisher, caller.UserID, action, desc, err)
		return nil, err
	}
	audit(ctx, s.Publisher, caller.UserID, action, desc, nil)
	return p, nil
}

func (s *PortfolioService) duplicate(currency string) *models.Alert {
	return models.NewAlert(s.Now(), false, "a portfolio already exists for this user in %s", currency)
}

func owned(ctx context.Context, repo PortfolioRepo, caller identity.Principal, id string) (*models.Portfolio, error) {
	p, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(p.UserID) {
		return nil, models.ErrNotOwner
	}
	return p, nil
}

func audit(ctx context.Context, p Publisher, userID, action, description string, cause error) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, cause)
	if err := p.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}
