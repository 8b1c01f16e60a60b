package client

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// LegacyPayment is a transfer handed to the core banking adapter.
type LegacyPayment struct {
	TransactionID    string          `json:"transaction_id"`
	SourceAccountRef string          `json:"source_account_ref"`
	DestinationIBAN  string          `json:"destination_iban"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
}

type LegacyResult struct {
	TransactionID   string `json:"transaction_id"`
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	LegacyReference string `json:"legacy_reference,omitempty"`
}

type LegacyClient struct {
	base
}

func NewLegacyClient(baseURL string, timeout time.Duration) *LegacyClient {
	return &LegacyClient{base: newBase("legacy-adapter", baseURL, timeout)}
}

// Settle sends the transfer to the legacy adapter.
func (c *LegacyClient) Settle(ctx context.Context, p LegacyPayment) (*LegacyResult, error) {
	var res LegacyResult
	if err := c.do(ctx, http.MethodPost, "/api/legacy/payments", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
