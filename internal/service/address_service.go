// internal/service/address_service.go
package service

import (
	"github.com/davidkar/customer-records-backend/internal/model"
	"github.com/davidkar/customer-records-backend/internal/repository"
	"github.com/davidkar/customer-records-backend/internal/validation"
)

type AddressService struct {
	AddressRepo repository.AddressRepositoryInterface
}

// AddAddress attaches a new address to an existing customer.
func (s *AddressService) AddAddress(customerID int, af validation.AddressFields) (*model.Address, error) {
	if err := validation.ValidateAddress(af); err != nil {
		return nil, err
	}

	address := &model.Address{
		CustomerID:     customerID,
		AddressDetails: af.AddressDetails,
		City:           af.City,
		State:          af.State,
		PinCode:        af.PinCode,
	}
	if err := s.AddressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) ListForCustomer(customerID int) ([]model.Address, error) {
	return s.AddressRepo.ListByCustomer(customerID)
}

// UpdateAddress fully replaces the mutable fields of an existing address.
func (s *AddressService) UpdateAddress(id int, af validation.AddressFields) error {
	if err := validation.ValidateAddress(af); err != nil {
		return err
	}
	return s.AddressRepo.Update(&model.Address{
		ID:             id,
		AddressDetails: af.AddressDetails,
		City:           af.City,
		State:          af.State,
		PinCode:        af.PinCode,
	})
}

func (s *AddressService) DeleteAddress(id int) error {
	return s.AddressRepo.Delete(id)
}
