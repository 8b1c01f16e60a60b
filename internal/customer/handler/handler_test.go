package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/customer/dto"
	"github.com/jeffleon2/ebanking/internal/customer/handler"
	"github.com/jeffleon2/ebanking/internal/customer/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/customer/models"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var grace = identity.Principal{UserID: "sub-grace", Username: "grace", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.CustomerHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), grace))
	})
	r.GET("/api/user/:id", h.Get)
	r.PUT("/api/customers/me", h.UpdateMe)
	r.DELETE("/api/customers/:id", h.Delete)
	return r
}

func TestGet(t *testing.T) {
	svc := mocks.NewMockCustomerService(t)
	r := newRouter(handler.NewCustomerHandler(svc))

	svc.EXPECT().Get(mock.Anything, grace, "c-1").Return(&models.Customer{ID: "c-1", Username: "grace", KYCStatus: models.KYCVerified}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/c-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kyc_status":"VERIFIED"`)
}

func TestUpdateMe_OnlyPresentFields(t *testing.T) {
	svc := mocks.NewMockCustomerService(t)
	r := newRouter(handler.NewCustomerHandler(svc))

	svc.EXPECT().
		UpdateMe(mock.Anything, grace, mock.MatchedBy(func(u *dto.UpdateProfile) bool {
			return u.Address != nil && *u.Address == "2 Rue Atlas" && u.Email == nil
		})).
		Return(&models.Customer{ID: "c-1"}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/customers/me", strings.NewReader(`{"address":"2 Rue Atlas"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDelete(t *testing.T) {
	svc := mocks.NewMockCustomerService(t)
	r := newRouter(handler.NewCustomerHandler(svc))

	svc.EXPECT().Delete(mock.Anything, grace, "c-1").Return(nil).Once()
	svc.EXPECT().Delete(mock.Anything, grace, "c-2").Return(models.ErrCustomerNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/customers/c-1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/customers/c-2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
