package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrUnsupportedCurrency is returned when the provider has no rate for a pair.
var ErrUnsupportedCurrency = fmt.Errorf("%w: unsupported currency", httperr.ErrValidation)

type ratesResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// Converter converts amounts between currencies using rates from the
// exchange-rate API, cached per base currency.
type Converter struct {
	client  *http.Client
	baseURL string
	apiKey  string
	cache   *cache.Cache
}

func NewConverter(baseURL, apiKey string, ttl time.Duration, client *http.Client) *Converter {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Converter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		cache:   cache.New(ttl, 2*ttl),
	}
}

// Rates returns every rate quoted against base.
func (c *Converter) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base = strings.ToUpper(base)
	if cached, ok := c.cache.Get(base); ok {
		return cached.(map[string]decimal.Decimal), nil
	}

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange rates: %w: %v", httperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rates: %w: status %d", httperr.ErrUpstream, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("exchange rates: decode: %w", err)
	}
	if body.Result != "" && body.Result != "success" {
		return nil, fmt.Errorf("exchange rates: %w: %s", httperr.ErrUpstream, body.ErrorType)
	}

	c.cache.SetDefault(base, body.ConversionRates)
	logrus.WithField("base", base).Debugf("cached %d exchange rates", len(body.ConversionRates))
	return body.ConversionRates, nil
}

// Rate returns how many units of to one unit of from buys.
func (c *Converter) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rates, err := c.Rates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[to]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", ErrUnsupportedCurrency, from, to)
	}
	return rate, nil
}

// Convert returns amount expressed in to, rounded to 4 decimals, and the rate used.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := c.Rate(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return amount.Mul(rate).Round(4), rate, nil
}
