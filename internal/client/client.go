package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
)

type errorBody struct {
	Error string `json:"error"`
}

// base performs JSON calls against a sibling service, forwarding the caller's
// bearer token and correlation id.
type base struct {
	http    *http.Client
	baseURL string
	name    string
}

func newBase(name, baseURL string, timeout time.Duration) base {
	return base{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		name:    name,
	}
}

func (b base) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", b.name, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	propagate(ctx, req)

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", b.name, httperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return b.statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", b.name, err)
	}
	return nil
}

func (b base) statusError(resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)
	msg := eb.Error
	if msg == "" {
		msg = resp.Status
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		sentinel = httperr.ErrValidation
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = httperr.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = httperr.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = httperr.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = httperr.ErrConflict
	case resp.StatusCode == http.StatusUnprocessableEntity:
		sentinel = httperr.ErrUnprocessable
	default:
		sentinel = httperr.ErrUpstream
	}
	return fmt.Errorf("%s: %w: %s", b.name, sentinel, msg)
}

func propagate(ctx context.Context, req *http.Request) {
	if token := identity.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if p, ok := identity.PrincipalFromContext(ctx); ok {
		req.Header.Set(identity.HeaderUserID, p.UserID)
		req.Header.Set(identity.HeaderRoles, strings.Join(p.Roles, ","))
	}
	if id := identity.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(identity.HeaderCorrelationID, id)
	}
}
