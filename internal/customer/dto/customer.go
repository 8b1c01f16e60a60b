package dto

import (
	"strings"

	"github.com/jeffleon2/ebanking/internal/customer/models"
)

type CreateCustomer struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	GDPRConsent *bool  `json:"gdpr_consent"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	Address     string `json:"address" validate:"max=255"`
}

func (c *CreateCustomer) Sanitize() {
	c.Username = strings.ToLower(strings.TrimSpace(c.Username))
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.PhoneNumber = strings.ReplaceAll(strings.TrimSpace(c.PhoneNumber), " ", "")
	c.Address = strings.TrimSpace(c.Address)
}

// ToEntity starts every customer in KYC PENDING. Consent defaults to granted.
func (c *CreateCustomer) ToEntity() *models.Customer {
	consent := true
	if c.GDPRConsent != nil {
		consent = *c.GDPRConsent
	}
	return &models.Customer{
		Username:    c.Username,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		KYCStatus:   models.KYCPending,
		GDPRConsent: consent,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}

// UpdateProfile changes only the fields that are present.
type UpdateProfile struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,e164"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	GDPRConsent *bool   `json:"gdpr_consent"`
}

func (u *UpdateProfile) Apply(c *models.Customer) {
	if u.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*u.Email))
	}
	if u.FirstName != nil {
		c.FirstName = strings.TrimSpace(*u.FirstName)
	}
	if u.LastName != nil {
		c.LastName = strings.TrimSpace(*u.LastName)
	}
	if u.PhoneNumber != nil {
		c.PhoneNumber = strings.TrimSpace(*u.PhoneNumber)
	}
	if u.Address != nil {
		c.Address = strings.TrimSpace(*u.Address)
	}
	if u.GDPRConsent != nil {
		c.GDPRConsent = *u.GDPRConsent
	}
}

type UpdateKYC struct {
	Status string `json:"status" validate:"required"`
}
