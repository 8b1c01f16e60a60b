package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountClient_DebitPropagatesTokenAndCorrelation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts/ref-1/debit", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "cid-9", r.Header.Get(identity.HeaderCorrelationID))

		var body map[string]decimal.Decimal
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, decimal.NewFromInt(25).Equal(body["amount"]))

		_, _ = w.Write([]byte(`{"external_ref":"ref-1","currency":"EUR","balance":"75","status":"ACTIVE"}`))
	}))
	defer srv.Close()

	ctx := identity.WithCorrelationID(identity.WithToken(context.Background(), "tok"), "cid-9")
	acc, err := client.NewAccountClient(srv.URL, time.Second).Debit(ctx, "ref-1", decimal.NewFromInt(25))

	require.NoError(t, err)
	assert.Equal(t, "ref-1", acc.ExternalRef)
	assert.True(t, decimal.NewFromInt(75).Equal(acc.Balance))
}

func TestAccountClient_MapsStatusToSentinel(t *testing.T) {
	cases := map[int]error{
		http.StatusNotFound:            httperr.ErrNotFound,
		http.StatusForbidden:           httperr.ErrForbidden,
		http.StatusUnprocessableEntity: httperr.ErrUnprocessable,
		http.StatusBadGateway:          httperr.ErrUpstream,
	}
	for status, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		_, err := client.NewAccountClient(srv.URL, time.Second).GetAccount(context.Background(), "ref-1")
		assert.ErrorIs(t, err, want)
		assert.Contains(t, err.Error(), "nope")
		srv.Close()
	}
}

func TestCardClient_ForwardsPrincipalWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cards/card-1/debit", r.URL.Path)
		assert.Equal(t, "user-1", r.Header.Get(identity.HeaderUserID))
		assert.Equal(t, "CLIENT", r.Header.Get(identity.HeaderRoles))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := identity.WithPrincipal(context.Background(), identity.Principal{UserID: "user-1", Roles: []string{"CLIENT"}})
	err := client.NewCardClient(srv.URL, time.Second).Debit(ctx, "card-1", decimal.NewFromInt(10))

	assert.NoError(t, err)
}

func TestPortfolioClient_Unreachable(t *testing.T) {
	err := client.NewPortfolioClient("http://127.0.0.1:1", 200*time.Millisecond).Debit(context.Background(), "p-1", decimal.NewFromInt(1))

	assert.ErrorIs(t, err, httperr.ErrUpstream)
}

func TestSourceClients_Currency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/cards/card-1":
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "card-1", "currency": "EUR"})
		case "/api/portefeuilles/p-1":
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "p-1", "currency": "MAD"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	cur, err := client.NewCardClient(srv.URL, time.Second).Currency(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "EUR", cur)

	cur, err = client.NewPortfolioClient(srv.URL, time.Second).Currency(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "MAD", cur)

	_, err = client.NewCardClient(srv.URL, time.Second).Currency(ctx, "card-9")
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
