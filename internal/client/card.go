package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

type CardClient struct {
	base
}

func NewCardClient(baseURL string, timeout time.Duration) *CardClient {
	return &CardClient{base: newBase("card-service", baseURL, timeout)}
}

// Debit charges amount against the card limit.
func (c *CardClient) Debit(ctx context.Context, cardID string, amount decimal.Decimal) error {
	return c.do(ctx, http.MethodPost, "/api/cards/"+url.PathEscape(cardID)+"/debit", amountRequest{Amount: amount}, nil)
}

// Currency returns the currency the card is held in.
func (c *CardClient) Currency(ctx context.Context, cardID string) (string, error) {
	var card struct {
		Currency string `json:"currency"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cards/"+url.PathEscape(cardID), nil, &card); err != nil {
		return "", err
	}
	return card.Currency, nil
}
