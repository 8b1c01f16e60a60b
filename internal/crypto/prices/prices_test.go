package prices_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jeffleon2/ebanking/internal/crypto/prices"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ids = map[string]string{"BTC": "bitcoin", "ETH": "ethereum"}

func TestRefresh_SingleCall(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "eur", r.URL.Query().Get("vs_currencies"))
		_, _ = w.Write([]byte(`{"bitcoin":{"eur":61000.5},"ethereum":{"eur":3100}}`))
	}))
	defer srv.Close()

	feed := prices.NewFeed(srv.URL, "EUR", ids, srv.Client())
	require.NoError(t, feed.Refresh(context.Background()))

	btc, ok := feed.Price("btc")
	assert.True(t, ok)
	assert.True(t, btc.Equal(decimal.RequireFromString("61000.5")))
	assert.Len(t, feed.All(), 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestRefresh_KeepsPricesOnFailure(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"bitcoin":{"eur":60000}}`))
	}))
	defer srv.Close()

	feed := prices.NewFeed(srv.URL, "EUR", ids, srv.Client())
	require.NoError(t, feed.Refresh(context.Background()))

	fail.Store(true)
	err := feed.Refresh(context.Background())
	assert.ErrorIs(t, err, httperr.ErrUpstream)
	feed.Run(context.Background())

	btc, ok := feed.Price("BTC")
	assert.True(t, ok)
	assert.True(t, btc.Equal(decimal.NewFromInt(60000)))

	_, ok = feed.Price("ETH")
	assert.False(t, ok)
}
