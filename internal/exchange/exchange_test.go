package exchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/exchange"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/key/latest/EUR":
			_, _ = w.Write([]byte(`{"result":"success","conversion_rates":{"EUR":1,"USD":1.1,"MAD":10.85}}`))
		case "/key/latest/XXX":
			_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConvert_UsesAndCachesRates(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	c := exchange.NewConverter(srv.URL, "key", time.Minute, srv.Client())

	amount, rate, err := c.Convert(context.Background(), decimal.NewFromInt(100), "eur", "USD")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("110").Equal(amount))
	assert.True(t, decimal.RequireFromString("1.1").Equal(rate))

	amount, _, err = c.Convert(context.Background(), decimal.RequireFromString("12.34567"), "EUR", "MAD")
	require.NoError(t, err)
	assert.Equal(t, "133.9505", amount.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestConvert_SameCurrencySkipsProvider(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	c := exchange.NewConverter(srv.URL, "key", time.Minute, srv.Client())

	amount, rate, err := c.Convert(context.Background(), decimal.NewFromInt(5), "EUR", "EUR")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(amount))
	assert.True(t, decimal.NewFromInt(1).Equal(rate))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestRate_Errors(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	c := exchange.NewConverter(srv.URL, "key", time.Minute, srv.Client())

	_, err := c.Rate(context.Background(), "EUR", "JPY")
	assert.ErrorIs(t, err, exchange.ErrUnsupportedCurrency)

	_, err = c.Rate(context.Background(), "XXX", "EUR")
	assert.ErrorIs(t, err, httperr.ErrUpstream)

	_, err = c.Rate(context.Background(), "GBP", "EUR")
	assert.ErrorIs(t, err, httperr.ErrUpstream)
}
