package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeffleon2/ebanking/internal/assistant/llm"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "what is an IBAN?", body.Messages[1].Content)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"An account number."}}]}`))
	}))
	defer srv.Close()

	c := llm.NewClient(srv.URL, "secret", "llama", srv.Client())
	out, err := c.Complete(context.Background(), "be brief", "what is an IBAN?")

	require.NoError(t, err)
	assert.Equal(t, "An account number.", out)
}

func TestComplete_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := llm.NewClient(srv.URL, "secret", "llama", srv.Client()).Complete(context.Background(), "s", "u")

	assert.ErrorIs(t, err, httperr.ErrUpstream)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestComplete_NoKey(t *testing.T) {
	_, err := llm.NewClient("http://unused", "", "llama", nil).Complete(context.Background(), "s", "u")

	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}
