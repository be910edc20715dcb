// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/davidkar/customer-records-backend/internal/errors"
	"github.com/davidkar/customer-records-backend/internal/repository"
	"github.com/davidkar/customer-records-backend/internal/service"
	"github.com/davidkar/customer-records-backend/internal/validation"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

func writeJSON(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is a store-level failure and stays a 500.
func writeError(w http.ResponseWriter, err error) {
	var invalid *appErrors.InvalidInputError
	var conflict *appErrors.ConflictError
	var notFound *appErrors.NotFoundError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	case errors.As(err, &conflict):
		status = http.StatusConflict
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}

// CreateCustomer handles POST /api/customers: customer plus its first
// address in one request, written as one transaction.
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		PhoneNumber    string `json:"phone_number"`
		AddressDetails string `json:"address_details"`
		City           string `json:"city"`
		State          string `json:"state"`
		PinCode        string `json:"pin_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	created, err := c.CustomerService.CreateCustomerWithAddress(
		validation.CustomerFields{
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			PhoneNumber: body.PhoneNumber,
		},
		validation.AddressFields{
			AddressDetails: body.AddressDetails,
			City:           body.City,
			State:          body.State,
			PinCode:        body.PinCode,
		},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Customer and address created successfully",
		"data":    created,
	})
}

// ListCustomers handles GET /api/customers with search, address
// filters, pagination and sorting.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	// Default values if missing
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}

	filter := repository.ListFilter{
		Search:  r.URL.Query().Get("search"),
		City:    r.URL.Query().Get("city"),
		State:   r.URL.Query().Get("state"),
		PinCode: r.URL.Query().Get("pin_code"),
	}
	sortField := r.URL.Query().Get("sortField")
	sortOrder := r.URL.Query().Get("sortOrder")

	customers, pagination, err := c.CustomerService.ListCustomers(filter, page, limit, sortField, sortOrder)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "success",
		"data":       customers,
		"pagination": pagination,
	})
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerService.GetCustomer(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"data":    customer,
	})
}

func (c *CustomerController) GetCustomerWithAddressCount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	summary, err := c.CustomerService.GetCustomerWithAddressSummary(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"data":    summary,
	})
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var body struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	err = c.CustomerService.UpdateCustomer(id, validation.CustomerFields{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		PhoneNumber: body.PhoneNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Customer updated successfully",
	})
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	if err := c.CustomerService.DeleteCustomer(id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Customer and addresses deleted successfully",
	})
}
