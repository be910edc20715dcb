// internal/service/customer_service.go
package service

import (
	"log"

	"github.com/davidkar/customer-records-backend/internal/model"
	"github.com/davidkar/customer-records-backend/internal/queue"
	"github.com/davidkar/customer-records-backend/internal/repository"
	"github.com/davidkar/customer-records-backend/internal/validation"
)

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
}

// Pagination is the page metadata returned alongside every listing.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// CreateCustomerWithAddress validates both payloads before any write,
// then inserts the customer and its first address as one transaction.
func (s *CustomerService) CreateCustomerWithAddress(cf validation.CustomerFields, af validation.AddressFields) (*model.CustomerWithAddress, error) {
	if err := validation.ValidateCustomer(cf); err != nil {
		return nil, err
	}
	if err := validation.ValidateAddress(af); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		FirstName:   cf.FirstName,
		LastName:    cf.LastName,
		PhoneNumber: cf.PhoneNumber,
	}
	address := &model.Address{
		AddressDetails: af.AddressDetails,
		City:           af.City,
		State:          af.State,
		PinCode:        af.PinCode,
	}

	if err := s.CustomerRepo.CreateWithAddress(customer, address); err != nil {
		return nil, err
	}

	s.publishEvent("created", customer.ID)

	return &model.CustomerWithAddress{
		Customer: *customer,
		Address:  address,
	}, nil
}

func (s *CustomerService) GetCustomer(id int) (*model.Customer, error) {
	return s.CustomerRepo.GetByID(id)
}

func (s *CustomerService) GetCustomerWithAddressSummary(id int) (*model.CustomerAddressSummary, error) {
	return s.CustomerRepo.GetWithAddressSummary(id)
}

// UpdateCustomer fully replaces the mutable fields of an existing
// customer. Repeating the same update is a no-op.
func (s *CustomerService) UpdateCustomer(id int, cf validation.CustomerFields) error {
	if err := validation.ValidateCustomer(cf); err != nil {
		return err
	}
	return s.CustomerRepo.Update(&model.Customer{
		ID:          id,
		FirstName:   cf.FirstName,
		LastName:    cf.LastName,
		PhoneNumber: cf.PhoneNumber,
	})
}

// DeleteCustomer removes the customer and all its addresses as one
// atomic unit.
func (s *CustomerService) DeleteCustomer(id int) error {
	if err := s.CustomerRepo.DeleteWithAddresses(id); err != nil {
		return err
	}
	s.publishEvent("deleted", id)
	return nil
}

// ListCustomers returns one page of matching customers plus pagination
// metadata. Total counts distinct matches independent of page/limit;
// a valid page beyond the last returns an empty slice.
func (s *CustomerService) ListCustomers(filter repository.ListFilter, page, limit int, sortField, sortOrder string) ([]model.Customer, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}
	offset := (page - 1) * limit

	customers, total, err := s.CustomerRepo.List(filter, offset, limit, sortField, sortOrder)
	if err != nil {
		return nil, nil, err
	}

	totalPages := (total + limit - 1) / limit

	pagination := &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
	return customers, pagination, nil
}

// publishEvent is best effort: a broker hiccup must not fail the write
// that already committed.
func (s *CustomerService) publishEvent(eventType string, customerID int) {
	if s.Queue == nil {
		return
	}
	event := queue.CustomerEvent{Type: eventType, CustomerID: customerID}
	if err := s.Queue.Publish(queue.CustomerEventsTopic, event); err != nil {
		log.Println("⚠️ failed to publish customer event:", err)
	}
}
