package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jeffleon2/ebanking/internal/card/dto"
	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const ServiceName = "card-service"

// DefaultLimit applies when a card is requested without a limit.
var DefaultLimit = decimal.NewFromInt(1000)

type CardRepo interface {
	Create(ctx context.Context, card *models.VirtualCard) error
	Get(ctx context.Context, id string) (*models.VirtualCard, error)
	GetByNumberHash(ctx context.Context, hash string) (*models.VirtualCard, error)
	ListByUser(ctx context.Context, userID string) ([]models.VirtualCard, error)
	SetStatus(ctx context.Context, card *models.VirtualCard, status string) error
	Remove(ctx context.Context, id string) error
	Transactions(ctx context.Context, cardID string) ([]models.CardTransaction, error)
	Charge(ctx context.Context, cardID string, t *models.CardTransaction, guard func(c *models.VirtualCard) error) (*models.VirtualCard, error)
}

// Vault seals card numbers and hashes CVVs.
type Vault interface {
	Seal(plain string) (string, error)
	Index(number string) string
	HashCVV(cvv string) (string, error)
	CheckCVV(hash string, cvv string) bool
}

type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from string, to string) (decimal.Decimal, decimal.Decimal, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

type CardService struct {
	Repo      CardRepo
	Vault     Vault
	Converter Converter
	Publisher Publisher
	Now       func() time.Time
	Rand      io.Reader
}

func NewCardService(repo CardRepo, vault Vault, converter Converter, p Publisher) *CardService {
	return &CardService{
		Repo:      repo,
		Vault:     vault,
		Converter: converter,
		Publisher: p,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateCard issues a card in a currency the caller has no card for yet. The
// clear number and CVV are part of the result and are never returned again.
func (s *CardService) CreateCard(ctx context.Context, caller identity.Principal, req *dto.CreateCard) (*dto.Issued, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit.IsZero() {
		limit = DefaultLimit
	}
	if !limit.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	existing, err := s.Repo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.Currency == req.Currency {
			return nil, models.ErrDuplicateCurrency
		}
	}
	if len(existing) >= models.MaxCardsPerUser {
		return nil, models.ErrTooManyCards
	}

	number, err := models.GenerateNumber(s.Rand)
	if err != nil {
		return nil, err
	}
	cvv, err := models.GenerateCVV(s.Rand)
	if err != nil {
		return nil, err
	}
	sealed, err := s.Vault.Seal(number)
	if err != nil {
		return nil, fmt.Errorf("seal card number: %w", err)
	}
	cvvHash, err := s.Vault.HashCVV(cvv)
	if err != nil {
		return nil, fmt.Errorf("hash cvv: %w", err)
	}

	now := s.Now()
	card := &models.VirtualCard{
		UserID:          caller.UserID,
		NumberEncrypted: sealed,
		NumberHash:      s.Vault.Index(number),
		Last4:           number[len(number)-4:],
		CVVHash:         cvvHash,
		Currency:        req.Currency,
		ExpiresOn:       time.Date(now.Year()+1, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Limit:           limit,
		Status:          models.StatusActive,
	}
	if err := s.Repo.Create(ctx, card); err != nil {
		return nil, err
	}

	s.audit(ctx, caller.UserID, "CARD_CREATED", fmt.Sprintf("virtual card %s issued in %s", card.Masked(), card.Currency), nil)
	return &dto.Issued{Card: dto.FromEntity(card), Number: number, CVV: cvv}, nil
}

func (s *CardService) ListCards(ctx context.Context, caller identity.Principal) ([]dto.Card, error) {
	cards, err := s.Repo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Card, 0, len(cards))
	for i := range cards {
		out = append(out, dto.FromEntity(&cards[i]))
	}
	return out, nil
}

func (s *CardService) GetCard(ctx context.Context, caller identity.Principal, id string) (*dto.Card, error) {
	card, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	view := dto.FromEntity(card)
	return &view, nil
}

func (s *CardService) BlockCard(ctx context.Context, caller identity.Principal, id string) (*dto.Card, error) {
	return s.setStatus(ctx, caller, id, models.StatusBlocked)
}

func (s *CardService) UnblockCard(ctx context.Context, caller identity.Principal, id string) (*dto.Card, error) {
	return s.setStatus(ctx, caller, id, models.StatusActive)
}

func (s *CardService) DeleteCard(ctx context.Context, caller identity.Principal, id string) error {
	card, err := s.owned(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Remove(ctx, card.ID); err != nil {
		return err
	}
	s.audit(ctx, caller.UserID, "CARD_DELETED", fmt.Sprintf("virtual card %s deleted", card.Masked()), nil)
	return nil
}

// Debit charges one of the caller's cards in its own currency.
func (s *CardService) Debit(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*dto.Receipt, error) {
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	card, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.charge(ctx, card, amount, amount, card.Currency, "CARD_DEBIT")
}

// Pay charges the card identified by number and CVV. The amount is in the
// card currency and the merchant receives it converted to TargetCurrency.
func (s *CardService) Pay(ctx context.Context, caller identity.Principal, req *dto.Pay) (*dto.Receipt, error) {
	req.Sanitize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	if !models.Luhn(req.Number) {
		return nil, models.ErrInvalidCVV
	}

	card, err := s.Repo.GetByNumberHash(ctx, s.Vault.Index(req.Number))
	if errors.Is(err, models.ErrCardNotFound) {
		return nil, models.ErrInvalidCVV
	}
	if err != nil {
		return nil, err
	}
	if !s.Vault.CheckCVV(card.CVVHash, req.CVV) {
		s.audit(ctx, card.UserID, "CARD_PAYMENT", fmt.Sprintf("rejected payment on %s requested by %s", card.Masked(), caller.UserID), models.ErrInvalidCVV)
		return nil, models.ErrInvalidCVV
	}
	if err := card.Usable(s.Now(), req.Amount); err != nil {
		return nil, err
	}

	converted, _, err := s.Converter.Convert(ctx, req.Amount, card.Currency, req.TargetCurrency)
	if err != nil {
		return nil, err
	}
	return s.charge(ctx, card, req.Amount, converted, req.TargetCurrency, "CARD_PAYMENT")
}

func (s *CardService) Transactions(ctx context.Context, caller identity.Principal, id string) ([]models.CardTransaction, error) {
	card, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.Repo.Transactions(ctx, card.ID)
}

func (s *CardService) charge(ctx context.Context, card *models.VirtualCard, amount, converted decimal.Decimal, target, action string) (*dto.Receipt, error) {
	tx := &models.CardTransaction{
		CardID:          card.ID,
		Amount:          amount,
		Currency:        card.Currency,
		ConvertedAmount: converted,
		TargetCurrency:  target,
		Status:          models.TransactionCompleted,
	}
	now := s.Now()
	updated, err := s.Repo.Charge(ctx, card.ID, tx, func(c *models.VirtualCard) error {
		return c.Usable(now, amount)
	})
	desc := fmt.Sprintf("%s %s charged on %s", amount, card.Currency, card.Masked())
	if err != nil {
		s.audit(ctx, card.UserID, action, desc, err)
		return nil, err
	}
	s.audit(ctx, card.UserID, action, desc, nil)
	return dto.NewReceipt(updated, tx), nil
}

func (s *CardService) setStatus(ctx context.Context, caller identity.Principal, id, status string) (*dto.Card, error) {
	card, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if card.Status != status {
		if err := s.Repo.SetStatus(ctx, card, status); err != nil {
			return nil, err
		}
		s.audit(ctx, caller.UserID, "CARD_"+status, fmt.Sprintf("virtual card %s is now %s", card.Masked(), status), nil)
	}
	view := dto.FromEntity(card)
	return &view, nil
}

func (s *CardService) owned(ctx context.Context, caller identity.Principal, id string) (*models.VirtualCard, error) {
	card, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(card.UserID) {
		return nil, models.ErrNotOwner
	}
	return card, nil
}

func (s *CardService) audit(ctx context.Context, userID, action, description string, cause error) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, cause)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}
