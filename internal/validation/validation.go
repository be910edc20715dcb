// internal/validation/validation.go
package validation

import (
	"regexp"

	appErrors "github.com/davidkar/customer-records-backend/internal/errors"
)

var (
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	pinRe   = regexp.MustCompile(`^\d{5,6}$`)
)

// CustomerFields are the mutable customer fields checked before any write.
type CustomerFields struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// AddressFields are the mutable address fields checked before any write.
type AddressFields struct {
	AddressDetails string
	City           string
	State          string
	PinCode        string
}

// ValidateCustomer checks presence and format only. Duplicate phone
// numbers are the store's business, not validation's.
func ValidateCustomer(f CustomerFields) error {
	if f.FirstName == "" {
		return appErrors.NewInvalidInput("first_name is required")
	}
	if f.LastName == "" {
		return appErrors.NewInvalidInput("last_name is required")
	}
	if f.PhoneNumber == "" {
		return appErrors.NewInvalidInput("phone_number is required")
	}
	if !phoneRe.MatchString(f.PhoneNumber) {
		return appErrors.NewInvalidInput("phone_number must be exactly 10 digits")
	}
	return nil
}

func ValidateAddress(f AddressFields) error {
	if f.AddressDetails == "" {
		return appErrors.NewInvalidInput("address_details is required")
	}
	if f.City == "" {
		return appErrors.NewInvalidInput("city is required")
	}
	if f.State == "" {
		return appErrors.NewInvalidInput("state is required")
	}
	if f.PinCode == "" {
		return appErrors.NewInvalidInput("pin_code is required")
	}
	if !pinRe.MatchString(f.PinCode) {
		return appErrors.NewInvalidInput("pin_code must be 5 or 6 digits")
	}
	return nil
}
