package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/customer/dto"
	"github.com/jeffleon2/ebanking/internal/customer/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

const ServiceName = "customer-service"

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	Get(ctx context.Context, id string) (*models.Customer, error)
	GetByUsername(ctx context.Context, username string) (*models.Customer, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]models.Customer, error)
	Save(ctx context.Context, c *models.Customer) error
	Remove(ctx context.Context, id string) error
}

type Publisher interface {
	PublishWithKey(ctx context.Context, topic string, key string, message interface{}) error
}

// CustomerService keeps customer profiles and their KYC status. A profile is
// bound to a login through its username.
type CustomerService struct {
	Repo      CustomerRepo
	Publisher Publisher
}

func NewCustomerService(repo CustomerRepo, p Publisher) *CustomerService {
	return &CustomerService{Repo: repo, Publisher: p}
}

// Create registers a customer in KYC PENDING. Clients can only register
// their own username.
func (s *CustomerService) Create(ctx context.Context, caller identity.Principal, req *dto.CreateCustomer) (*models.Customer, error) {
	req.Sanitize()
	if !caller.IsAdmin() {
		req.Username = username(caller)
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	taken, err := s.Repo.UsernameTaken(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrDuplicateUser
	}

	customer := req.ToEntity()
	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.UserID, "CUSTOMER_CREATED", fmt.Sprintf("customer %s registered", customer.Username))
	return customer, nil
}

// Get returns a profile by id. Clients only read their own.
func (s *CustomerService) Get(ctx context.Context, caller identity.Principal, id string) (*models.Customer, error) {
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && customer.Username != username(caller) {
		return nil, models.ErrNotOwner
	}
	return customer, nil
}

func (s *CustomerService) Me(ctx context.Context, caller identity.Principal) (*models.Customer, error) {
	return s.Repo.GetByUsername(ctx, username(caller))
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) UpdateMe(ctx context.Context, caller identity.Principal, req *dto.UpdateProfile) (*models.Customer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	customer, err := s.Repo.GetByUsername(ctx, username(caller))
	if err != nil {
		return nil, err
	}
	req.Apply(customer)
	if err := s.Repo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.UserID, "CUSTOMER_UPDATED", fmt.Sprintf("customer %s updated its profile", customer.Username))
	return customer, nil
}

// UpdateKYC changes the KYC status and announces it on customers.kyc.updated.
func (s *CustomerService) UpdateKYC(ctx context.Context, caller identity.Principal, id string, req *dto.UpdateKYC) (*models.Customer, error) {
	status := models.KYCStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return nil, models.ErrInvalidKYC
	}
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.KYCStatus = status
	if err := s.Repo.Save(ctx, customer); err != nil {
		return nil, err
	}

	evt := events.KYCUpdatedEvent{
		CustomerID: customer.ID,
		Username:   customer.Username,
		Email:      customer.Email,
		Status:     string(status),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.Publisher.PublishWithKey(ctx, events.TopicCustomerKYCUpdated, customer.ID, evt); err != nil {
		logrus.WithField("customer_id", customer.ID).Warnf("kyc event not published: %v", err)
	}
	s.audit(ctx, caller.UserID, "CUSTOMER_KYC_"+string(status), fmt.Sprintf("kyc of %s set to %s", customer.Username, status))
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, caller identity.Principal, id string) error {
	if err := s.Repo.Remove(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, caller.UserID, "CUSTOMER_DELETED", "customer "+id+" deleted")
	return nil
}

func (s *CustomerService) audit(ctx context.Context, userID, action, description string) {
	evt := events.NewAuditEvent(ctx, ServiceName, userID, action, description, nil)
	if err := s.Publisher.PublishWithKey(ctx, events.TopicAuditEvents, evt.CorrelationID, evt); err != nil {
		logrus.WithField("action", action).Warnf("audit event not published: %v", err)
	}
}

// username is the login a profile is bound to. Tokens without a preferred
// username fall back to the subject.
func username(p identity.Principal) string {
	if p.Username != "" {
		return strings.ToLower(p.Username)
	}
	return strings.ToLower(p.UserID)
}
