package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrConflict          = NewDomainError("CONFLICT", "Resource was modified concurrently")
	ErrSequenceCollision = NewDomainError("SEQUENCE_COLLISION", "Document number sequence exhausted")
)

// NewNotFoundError creates a NOT_FOUND error for a specific resource
func NewNotFoundError(resource, id string) *DomainError {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s %s not found", resource, id))
}

// NewValidationError creates an INVALID_INPUT error with a custom message
func NewValidationError(message string) *DomainError {
	return NewDomainError("INVALID_INPUT", message)
}

// NewAlreadyExistsError creates an ALREADY_EXISTS error with a custom message
func NewAlreadyExistsError(message string) *DomainError {
	return NewDomainError("ALREADY_EXISTS", message)
}

// NewInvalidStateError creates an INVALID_STATE error with a custom message
func NewInvalidStateError(message string) *DomainError {
	return NewDomainError("INVALID_STATE", message)
}

// NewConflictError creates a CONFLICT error for a stale aggregate version
func NewConflictError(resource, id string) *DomainError {
	return NewDomainError("CONFLICT", fmt.Sprintf("%s %s was modified concurrently", resource, id))
}

// NewSequenceCollisionError creates a SEQUENCE_COLLISION error for a sequence scope
func NewSequenceCollisionError(scope string) *DomainError {
	return NewDomainError("SEQUENCE_COLLISION", fmt.Sprintf("document number sequence exhausted for %s", scope))
}
