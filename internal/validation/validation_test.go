package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/davidkar/customer-records-backend/internal/errors"
	"github.com/davidkar/customer-records-backend/internal/validation"
)

func TestValidateCustomer(t *testing.T) {
	valid := validation.CustomerFields{
		FirstName:   "Asha",
		LastName:    "Rao",
		PhoneNumber: "9876543210",
	}

	tests := []struct {
		name    string
		mutate  func(f *validation.CustomerFields)
		wantErr bool
	}{
		{"valid", func(f *validation.CustomerFields) {}, false},
		{"missing first name", func(f *validation.CustomerFields) { f.FirstName = "" }, true},
		{"missing last name", func(f *validation.CustomerFields) { f.LastName = "" }, true},
		{"missing phone", func(f *validation.CustomerFields) { f.PhoneNumber = "" }, true},
		{"phone too short", func(f *validation.CustomerFields) { f.PhoneNumber = "12345" }, true},
		{"phone too long", func(f *validation.CustomerFields) { f.PhoneNumber = "98765432101" }, true},
		{"phone with letters", func(f *validation.CustomerFields) { f.PhoneNumber = "98765abcde" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := validation.ValidateCustomer(f)
			if tt.wantErr {
				var invalid *appErrors.InvalidInputError
				assert.Error(t, err)
				assert.True(t, errors.As(err, &invalid), "expected InvalidInputError, got %T", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	valid := validation.AddressFields{
		AddressDetails: "12 MG Rd",
		City:           "Pune",
		State:          "MH",
		PinCode:        "411001",
	}

	tests := []struct {
		name    string
		mutate  func(f *validation.AddressFields)
		wantErr bool
	}{
		{"valid six digit pin", func(f *validation.AddressFields) {}, false},
		{"valid five digit pin", func(f *validation.AddressFields) { f.PinCode = "41100" }, false},
		{"missing details", func(f *validation.AddressFields) { f.AddressDetails = "" }, true},
		{"missing city", func(f *validation.AddressFields) { f.City = "" }, true},
		{"missing state", func(f *validation.AddressFields) { f.State = "" }, true},
		{"missing pin", func(f *validation.AddressFields) { f.PinCode = "" }, true},
		{"pin with letters", func(f *validation.AddressFields) { f.PinCode = "ABCDE" }, true},
		{"pin too short", func(f *validation.AddressFields) { f.PinCode = "4110" }, true},
		{"pin too long", func(f *validation.AddressFields) { f.PinCode = "4110011" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := validation.ValidateAddress(f)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Validation never rejects well-formed duplicates; uniqueness is the
// store's job.
func TestValidateCustomerAllowsAnyWellFormedPhone(t *testing.T) {
	a := validation.CustomerFields{FirstName: "A", LastName: "B", PhoneNumber: "1112223334"}
	b := validation.CustomerFields{FirstName: "C", LastName: "D", PhoneNumber: "1112223334"}
	assert.NoError(t, validation.ValidateCustomer(a))
	assert.NoError(t, validation.ValidateCustomer(b))
}
