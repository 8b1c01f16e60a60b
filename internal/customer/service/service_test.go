package service_test

import (
	"context"
	"testing"

	"github.com/jeffleon2/ebanking/internal/customer/dto"
	"github.com/jeffleon2/ebanking/internal/customer/models"
	"github.com/jeffleon2/ebanking/internal/customer/service"
	"github.com/jeffleon2/ebanking/internal/customer/service/mocks"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	erin  = identity.Principal{UserID: "sub-erin", Username: "Erin", Roles: []string{identity.RoleClient}}
	admin = identity.Principal{UserID: "sub-root", Username: "root", Roles: []string{identity.RoleAdmin}}
)

func newService(t *testing.T) (*service.CustomerService, *mocks.MockCustomerRepo, *mocks.MockPublisher) {
	repo := mocks.NewMockCustomerRepo(t)
	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().PublishWithKey(mock.Anything, events.TopicAuditEvents, mock.Anything, mock.Anything).Return(nil).Maybe()
	return service.NewCustomerService(repo, pub), repo, pub
}

func TestCreate_ClientRegistersOwnUsername(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().UsernameTaken(ctx, "erin").Return(false, nil).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *models.Customer) bool {
			return c.Username == "erin" && c.KYCStatus == models.KYCPending && c.GDPRConsent && c.Email == "erin@example.com"
		})).
		Return(nil).
		Once()

	c, err := svc.Create(ctx, erin, &dto.CreateCustomer{Username: "mallory", Email: " Erin@Example.com "})

	require.NoError(t, err)
	assert.Equal(t, "erin", c.Username)
}

func TestCreate_Conflict(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().UsernameTaken(ctx, "frank").Return(true, nil).Once()

	_, err := svc.Create(ctx, admin, &dto.CreateCustomer{Username: "frank", Email: "frank@example.com"})

	assert.ErrorIs(t, err, models.ErrDuplicateUser)
}

func TestCreate_InvalidEmail(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), admin, &dto.CreateCustomer{Username: "frank", Email: "not-an-email"})

	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestGet_Ownership(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "c-1").Return(&models.Customer{ID: "c-1", Username: "frank"}, nil).Twice()

	_, err := svc.Get(ctx, erin, "c-1")
	assert.ErrorIs(t, err, models.ErrNotOwner)

	c, err := svc.Get(ctx, admin, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "frank", c.Username)
}

func TestUpdateMe_Partial(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	existing := &models.Customer{ID: "c-1", Username: "erin", Email: "old@example.com", FirstName: "Erin", Address: "1 Main St"}
	phone := "+212600000000"

	repo.EXPECT().GetByUsername(ctx, "erin").Return(existing, nil).Once()
	repo.EXPECT().
		Save(ctx, mock.MatchedBy(func(c *models.Customer) bool {
			return c.PhoneNumber == phone && c.Email == "old@example.com" && c.Address == "1 Main St"
		})).
		Return(nil).
		Once()

	c, err := svc.UpdateMe(ctx, erin, &dto.UpdateProfile{PhoneNumber: &phone})

	require.NoError(t, err)
	assert.Equal(t, "Erin", c.FirstName)
}

func TestUpdateKYC_PublishesEvent(t *testing.T) {
	svc, repo, pub := newService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "c-1").Return(&models.Customer{ID: "c-1", Username: "erin", KYCStatus: models.KYCPending}, nil).Once()
	repo.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()
	pub.EXPECT().
		PublishWithKey(ctx, events.TopicCustomerKYCUpdated, "c-1", mock.MatchedBy(func(e events.KYCUpdatedEvent) bool {
			return e.Status == "VERIFIED" && e.Username == "erin"
		})).
		Return(nil).
		Once()

	c, err := svc.UpdateKYC(ctx, admin, "c-1", &dto.UpdateKYC{Status: "verified"})

	require.NoError(t, err)
	assert.Equal(t, models.KYCVerified, c.KYCStatus)
}

func TestUpdateKYC_InvalidStatus(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.UpdateKYC(context.Background(), admin, "c-1", &dto.UpdateKYC{Status: "MAYBE"})

	assert.ErrorIs(t, err, models.ErrInvalidKYC)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().Remove(ctx, "missing").Return(models.ErrCustomerNotFound).Once()

	assert.ErrorIs(t, svc.Delete(ctx, admin, "missing"), httperr.ErrNotFound)
}
