package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Feed keeps the latest quote of every tracked symbol. Quotes are fetched in
// one call and survive failed refreshes, so a provider outage serves the
// last known prices.
type Feed struct {
	client *http.Client
	url    string
	quote  string
	ids    map[string]string
	cache  *cache.Cache
}

// NewFeed tracks ids, a symbol to provider id map, quoted in quote currency.
func NewFeed(priceURL, quote string, ids map[string]string, client *http.Client) *Feed {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Feed{
		client: client,
		url:    priceURL,
		quote:  strings.ToUpper(quote),
		ids:    ids,
		cache:  cache.New(cache.NoExpiration, 0),
	}
}

func (f *Feed) Currency() string {
	return f.quote
}

// Refresh fetches every tracked price. Symbols missing from the response
// keep their previous quote.
func (f *Feed) Refresh(ctx context.Context) error {
	ids := make([]string, 0, len(f.ids))
	for _, id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", strings.ToLower(f.quote))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("crypto prices: %w: %v", httperr.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crypto prices: %w: status %d", httperr.ErrUpstream, resp.StatusCode)
	}

	var body map[string]map[string]decimal.Decimal
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("crypto prices: decode: %w", err)
	}

	vs := strings.ToLower(f.quote)
	updated := 0
	for symbol, id := range f.ids {
		price, ok := body[id][vs]
		if !ok || !price.IsPositive() {
			continue
		}
		f.cache.Set(symbol, price, cache.NoExpiration)
		updated++
	}
	logrus.WithField("quote", f.quote).Debugf("refreshed %d crypto prices", updated)
	return nil
}

// Run is the scheduler entry point.
func (f *Feed) Run(ctx context.Context) {
	if err := f.Refresh(ctx); err != nil {
		logrus.Warnf("crypto price refresh failed, keeping previous prices: %v", err)
	}
}

func (f *Feed) Price(symbol string) (decimal.Decimal, bool) {
	v, ok := f.cache.Get(strings.ToUpper(symbol))
	if !ok {
		return decimal.Zero, false
	}
	return v.(decimal.Decimal), true
}

// All returns a copy of every known quote.
func (f *Feed) All() map[string]decimal.Decimal {
	items := f.cache.Items()
	out := make(map[string]decimal.Decimal, len(items))
	for symbol, item := range items {
		out[symbol] = item.Object.(decimal.Decimal)
	}
	return out
}
