package masterdata

import (
	"regexp"
	"strings"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// Store code is embedded verbatim in document numbers, so it is kept
// short and strictly uppercase alphanumeric.
var storeCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)

// Store represents a physical location documents are scoped to
type Store struct {
	shared.BaseAggregateRoot
	Code    string              `json:"code"`
	Name    string              `json:"name"`
	Address valueobject.Address `json:"address"`
	Active  bool                `json:"active"`
}

// NewStore creates a new active store
func NewStore(code, name string) (*Store, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if err := ValidateStoreCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Active:            true,
	}, nil
}

// Update updates store details
func (s *Store) Update(name string, address valueobject.Address) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	s.Name = name
	s.Address = address
	s.Touch()
	s.IncrementVersion()
	return nil
}

// Deactivate marks the store as unusable in new documents
func (s *Store) Deactivate() {
	s.Active = false
	s.Touch()
	s.IncrementVersion()
}

// Activate re-enables the store
func (s *Store) Activate() {
	s.Active = true
	s.Touch()
	s.IncrementVersion()
}

// ValidateStoreCode checks a store code against the document-number format rules
func ValidateStoreCode(code string) error {
	if !storeCodePattern.MatchString(code) {
		return shared.NewValidationError("store code must be 2-8 uppercase alphanumeric characters")
	}
	return nil
}
