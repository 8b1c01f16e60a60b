package dto

import (
	"strings"

	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/shopspring/decimal"
)

type CreatePayment struct {
	SourceAccountRef string          `json:"source_account_ref" validate:"required"`
	DestinationIBAN  string          `json:"destination_iban" validate:"required,iban"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency" validate:"required,currency"`
	Type             string          `json:"type"`
}

func (p *CreatePayment) Sanitize() {
	p.SourceAccountRef = strings.TrimSpace(p.SourceAccountRef)
	p.DestinationIBAN = validation.NormalizeIBAN(p.DestinationIBAN)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.Type = strings.ToUpper(strings.TrimSpace(p.Type))
	if p.Type == "" {
		p.Type = string(models.TypeStandard)
	}
}

func (p *CreatePayment) ToEntity(userID, traceID string) *models.Payment {
	return &models.Payment{
		UserID:           userID,
		SourceAccountRef: p.SourceAccountRef,
		DestinationIBAN:  p.DestinationIBAN,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Type:             models.PaymentType(p.Type),
		Status:           models.StatusPending,
		TraceID:          traceID,
	}
}

// Review is an administrator decision on a payment held for manual review.
// Fraud marks a rejected payment as FRAUD_SUSPECTED instead of REJECTED.
type Review struct {
	Approve bool   `json:"approve"`
	Fraud   bool   `json:"fraud"`
	Reason  string `json:"reason" validate:"max=255"`
}
