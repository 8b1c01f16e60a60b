package httperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("account: %w", httperr.ErrNotFound):         http.StatusNotFound,
		fmt.Errorf("owner: %w", httperr.ErrForbidden):          http.StatusForbidden,
		fmt.Errorf("dup: %w", httperr.ErrConflict):             http.StatusConflict,
		fmt.Errorf("amount: %w", httperr.ErrValidation):        http.StatusBadRequest,
		fmt.Errorf("debit: %w", httperr.ErrInsufficientFunds):  http.StatusUnprocessableEntity,
		fmt.Errorf("account-service: %w", httperr.ErrUpstream): http.StatusServiceUnavailable,
		errors.New("boom"): http.StatusInternalServerError,
	}

	for err, want := range cases {
		assert.Equal(t, want, httperr.Status(err), err.Error())
	}
}

func TestAbort_HidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.Abort(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
}
