// internal/controller/address_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/davidkar/customer-records-backend/internal/service"
	"github.com/davidkar/customer-records-backend/internal/validation"
)

type AddressController struct {
	AddressService *service.AddressService
}

// ListAddresses handles GET /api/customers/{id}/addresses. A customer
// with no addresses gets an empty list, not an error.
func (c *AddressController) ListAddresses(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	addresses, err := c.AddressService.ListForCustomer(customerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"data":    addresses,
	})
}

// AddAddress handles POST /api/customers/{id}/addresses.
func (c *AddressController) AddAddress(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var body struct {
		AddressDetails string `json:"address_details"`
		City           string `json:"city"`
		State          string `json:"state"`
		PinCode        string `json:"pin_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	address, err := c.AddressService.AddAddress(customerID, validation.AddressFields{
		AddressDetails: body.AddressDetails,
		City:           body.City,
		State:          body.State,
		PinCode:        body.PinCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Address added successfully",
		"data":    address,
	})
}

func (c *AddressController) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.Atoi(chi.URLParam(r, "addressId"))
	if err != nil {
		http.Error(w, "invalid address id", http.StatusBadRequest)
		return
	}

	var body struct {
		AddressDetails string `json:"address_details"`
		City           string `json:"city"`
		State          string `json:"state"`
		PinCode        string `json:"pin_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	err = c.AddressService.UpdateAddress(addressID, validation.AddressFields{
		AddressDetails: body.AddressDetails,
		City:           body.City,
		State:          body.State,
		PinCode:        body.PinCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Address updated successfully",
	})
}

func (c *AddressController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.Atoi(chi.URLParam(r, "addressId"))
	if err != nil {
		http.Error(w, "invalid address id", http.StatusBadRequest)
		return
	}

	if err := c.AddressService.DeleteAddress(addressID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Address deleted successfully",
	})
}
