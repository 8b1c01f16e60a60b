package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ExternalRef string          `json:"external_ref"`
	UserID      string          `json:"user_id"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type AccountClient struct {
	base
}

func NewAccountClient(baseURL string, timeout time.Duration) *AccountClient {
	return &AccountClient{base: newBase("account-service", baseURL, timeout)}
}

func (c *AccountClient) GetAccount(ctx context.Context, ref string) (*Account, error) {
	var acc Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts/"+url.PathEscape(ref), nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *AccountClient) PrimaryAccount(ctx context.Context, userID string) (*Account, error) {
	var acc Account
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/primary-account", nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *AccountClient) Debit(ctx context.Context, ref string, amount decimal.Decimal) (*Account, error) {
	var acc Account
	if err := c.do(ctx, http.MethodPost, "/api/accounts/"+url.PathEscape(ref)+"/debit", amountRequest{Amount: amount}, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *AccountClient) Credit(ctx context.Context, ref string, amount decimal.Decimal) (*Account, error) {
	var acc Account
	if err := c.do(ctx, http.MethodPost, "/api/accounts/"+url.PathEscape(ref)+"/credit", amountRequest{Amount: amount}, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}
