package masterdata

import (
	"strings"

	"github.com/retailops/erp-backend/internal/domain/shared"
)

// Supplier represents a vendor purchase orders are placed with
type Supplier struct {
	shared.BaseAggregateRoot
	Code           string `json:"code"`
	Name           string `json:"name"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PaymentTermsID string `json:"payment_terms_id"`
	Active         bool   `json:"active"`
}

// NewSupplier creates a new active supplier
func NewSupplier(code, name string) (*Supplier, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Active:            true,
	}, nil
}

// Update updates supplier details
func (s *Supplier) Update(name, contactName, email, phone, paymentTermsID string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	s.Name = name
	s.ContactName = contactName
	s.Email = email
	s.Phone = phone
	s.PaymentTermsID = paymentTermsID
	s.Touch()
	s.IncrementVersion()
	return nil
}

// Deactivate marks the supplier as unusable in new documents
func (s *Supplier) Deactivate() {
	s.Active = false
	s.Touch()
	s.IncrementVersion()
}

// Activate re-enables the supplier
func (s *Supplier) Activate() {
	s.Active = true
	s.Touch()
	s.IncrementVersion()
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewValidationError("code is required")
	}
	if len(code) > 50 {
		return shared.NewValidationError("code cannot exceed 50 characters")
	}
	return nil
}
