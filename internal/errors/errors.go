// internal/errors/errors.go
package appErrors

import "fmt"

// InvalidInputError means the payload failed validation before any write.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func NewInvalidInput(reason string) error {
	return &InvalidInputError{Reason: reason}
}

// ConflictError means a uniqueness constraint was violated (duplicate phone number).
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func NewConflict(field, value string) error {
	return &ConflictError{Field: field, Value: value}
}

// NotFoundError means the referenced id does not exist.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func NewCustomerNotFound(id int) error {
	return &NotFoundError{Resource: "customer", ID: id}
}

func NewAddressNotFound(id int) error {
	return &NotFoundError{Resource: "address", ID: id}
}
