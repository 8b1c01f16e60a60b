package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

type PortfolioClient struct {
	base
}

func NewPortfolioClient(baseURL string, timeout time.Duration) *PortfolioClient {
	return &PortfolioClient{base: newBase("portfolio-service", baseURL, timeout)}
}

func (c *PortfolioClient) Debit(ctx context.Context, portfolioID string, amount decimal.Decimal) error {
	return c.do(ctx, http.MethodPost, "/api/portefeuilles/"+url.PathEscape(portfolioID)+"/debit", amountRequest{Amount: amount}, nil)
}

// Currency returns the currency the portfolio is held in.
func (c *PortfolioClient) Currency(ctx context.Context, portfolioID string) (string, error) {
	var p struct {
		Currency string `json:"currency"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/portefeuilles/"+url.PathEscape(portfolioID), nil, &p); err != nil {
		return "", err
	}
	return p.Currency, nil
}
