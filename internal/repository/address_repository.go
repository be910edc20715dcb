package repository

import (
	"database/sql"

	appErrors "github.com/davidkar/customer-records-backend/internal/errors"
	"github.com/davidkar/customer-records-backend/internal/model"
)

type AddressRepositoryInterface interface {
	Create(a *model.Address) error
	GetByID(id int) (*model.Address, error)
	Update(a *model.Address) error
	Delete(id int) error
	ListByCustomer(customerID int) ([]model.Address, error)
}

type AddressRepository struct {
	DB *sql.DB
}

// Create inserts an address for an existing customer. The owning
// customer is checked first; the FK constraint is only a backstop for
// a delete racing in between.
func (r *AddressRepository) Create(a *model.Address) error {
	var exists int
	err := r.DB.QueryRow(`SELECT 1 FROM customers WHERE id = $1`, a.CustomerID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.NewCustomerNotFound(a.CustomerID)
		}
		return err
	}

	query := `
        INSERT INTO addresses (customer_id, address_details, city, state, pin_code)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err = r.DB.QueryRow(query, a.CustomerID, a.AddressDetails, a.City, a.State, a.PinCode).Scan(&a.ID)
	if isForeignKeyViolation(err) {
		return appErrors.NewCustomerNotFound(a.CustomerID)
	}
	return err
}

// GetByID fetches an address by ID
func (r *AddressRepository) GetByID(id int) (*model.Address, error) {
	query := `
        SELECT id, customer_id, address_details, city, state, pin_code
        FROM addresses
        WHERE id = $1
    `
	var a model.Address
	err := r.DB.QueryRow(query, id).Scan(&a.ID, &a.CustomerID, &a.AddressDetails, &a.City, &a.State, &a.PinCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewAddressNotFound(id)
		}
		return nil, err
	}
	return &a, nil
}

// Update fully replaces the mutable address fields.
func (r *AddressRepository) Update(a *model.Address) error {
	query := `
        UPDATE addresses
        SET address_details=$1, city=$2, state=$3, pin_code=$4
        WHERE id=$5
    `
	res, err := r.DB.Exec(query, a.AddressDetails, a.City, a.State, a.PinCode, a.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewAddressNotFound(a.ID)
	}
	return nil
}

func (r *AddressRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewAddressNotFound(id)
	}
	return nil
}

// ListByCustomer returns all addresses owned by the customer. A
// customer with none gets an empty slice, not an error.
func (r *AddressRepository) ListByCustomer(customerID int) ([]model.Address, error) {
	query := `
        SELECT id, customer_id, address_details, city, state, pin_code
        FROM addresses
        WHERE customer_id = $1
        ORDER BY id
    `
	rows, err := r.DB.Query(query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []model.Address{}
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.AddressDetails, &a.City, &a.State, &a.PinCode); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}

var _ AddressRepositoryInterface = (*AddressRepository)(nil)
