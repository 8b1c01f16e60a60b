package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"gorm.io/gorm"
)

type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCVerified KYCStatus = "VERIFIED"
	KYCRejected KYCStatus = "REJECTED"
)

func (s KYCStatus) Valid() bool {
	return s == KYCPending || s == KYCVerified || s == KYCRejected
}

var (
	ErrCustomerNotFound = fmt.Errorf("customer %w", httperr.ErrNotFound)
	ErrDuplicateUser    = fmt.Errorf("customer already exists: %w", httperr.ErrConflict)
	ErrNotOwner         = fmt.Errorf("customer profile belongs to another user: %w", httperr.ErrForbidden)
	ErrInvalidKYC       = fmt.Errorf("kyc status must be PENDING, VERIFIED or REJECTED: %w", httperr.ErrValidation)
)

type Customer struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username    string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	FirstName   string    `gorm:"size:100" json:"first_name"`
	LastName    string    `gorm:"size:100" json:"last_name"`
	KYCStatus   KYCStatus `gorm:"size:16;not null" json:"kyc_status"`
	GDPRConsent bool      `gorm:"not null;default:false" json:"gdpr_consent"`
	PhoneNumber string    `gorm:"size:32" json:"phone_number,omitempty"`
	Address     string    `gorm:"size:255" json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
