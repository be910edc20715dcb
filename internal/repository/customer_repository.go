package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	appErrors "github.com/davidkar/customer-records-backend/internal/errors"
	"github.com/davidkar/customer-records-backend/internal/model"
)

// ListFilter holds the optional customer listing filters. An empty string
// means "no constraint on this field" and produces no SQL clause at all.
type ListFilter struct {
	Search  string
	City    string
	State   string
	PinCode string
}

// CustomerRepositoryInterface defines methods used by services
type CustomerRepositoryInterface interface {
	Create(c *model.Customer) error
	CreateWithAddress(c *model.Customer, a *model.Address) error
	GetByID(id int) (*model.Customer, error)
	GetWithAddressSummary(id int) (*model.CustomerAddressSummary, error)
	Update(c *model.Customer) error
	DeleteWithAddresses(id int) error
	List(filter ListFilter, offset, limit int, sortField, sortOrder string) ([]model.Customer, int, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

// Create inserts a customer row and assigns its id.
func (r *CustomerRepository) Create(c *model.Customer) error {
	query := `
        INSERT INTO customers (first_name, last_name, phone_number)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.DB.QueryRow(query, c.FirstName, c.LastName, c.PhoneNumber).Scan(&c.ID)
	if isUniqueViolation(err) {
		return appErrors.NewConflict("phone_number", c.PhoneNumber)
	}
	return err
}

// CreateWithAddress inserts the customer and its first address in one
// transaction. If the address insert fails the customer row is rolled
// back too; no reader ever sees the half-applied state.
func (r *CustomerRepository) CreateWithAddress(c *model.Customer, a *model.Address) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}

	customerQuery := `
        INSERT INTO customers (first_name, last_name, phone_number)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	if err := tx.QueryRow(customerQuery, c.FirstName, c.LastName, c.PhoneNumber).Scan(&c.ID); err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return appErrors.NewConflict("phone_number", c.PhoneNumber)
		}
		return err
	}

	a.CustomerID = c.ID
	addressQuery := `
        INSERT INTO addresses (customer_id, address_details, city, state, pin_code)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	if err := tx.QueryRow(addressQuery, a.CustomerID, a.AddressDetails, a.City, a.State, a.PinCode).Scan(&a.ID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	query := `
        SELECT id, first_name, last_name, phone_number
        FROM customers
        WHERE id = $1
    `
	var c model.Customer
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// GetWithAddressSummary fetches a customer together with how many
// addresses it owns.
func (r *CustomerRepository) GetWithAddressSummary(id int) (*model.CustomerAddressSummary, error) {
	query := `
        SELECT customers.id, customers.first_name, customers.last_name, customers.phone_number,
               COUNT(addresses.id) AS address_count
        FROM customers
        LEFT JOIN addresses ON customers.id = addresses.customer_id
        WHERE customers.id = $1
        GROUP BY customers.id, customers.first_name, customers.last_name, customers.phone_number
    `
	var s model.CustomerAddressSummary
	err := r.DB.QueryRow(query, id).Scan(&s.ID, &s.FirstName, &s.LastName, &s.PhoneNumber, &s.AddressCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}
	s.OnlyOneAddress = s.AddressCount == 1
	return &s, nil
}

// Update fully replaces the mutable customer fields.
func (r *CustomerRepository) Update(c *model.Customer) error {
	query := `
        UPDATE customers
        SET first_name=$1, last_name=$2, phone_number=$3
        WHERE id=$4
    `
	res, err := r.DB.Exec(query, c.FirstName, c.LastName, c.PhoneNumber, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.NewConflict("phone_number", c.PhoneNumber)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewCustomerNotFound(c.ID)
	}
	return nil
}

// DeleteWithAddresses removes the customer's addresses, then the
// customer, as one transaction. A missing customer rolls the whole
// thing back so the address deletes never become visible.
func (r *CustomerRepository) DeleteWithAddresses(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM addresses WHERE customer_id = $1`, id); err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.Exec(`DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return appErrors.NewCustomerNotFound(id)
	}

	return tx.Commit()
}

var listSortFields = map[string]bool{
	"id":           true,
	"first_name":   true,
	"last_name":    true,
	"phone_number": true,
}

// buildCustomerFilter turns the optional filters into a WHERE fragment
// plus its args. Address filters use EXISTS subqueries, so a customer
// with several matching addresses still appears once, and a customer
// with no addresses is excluded whenever an address filter is set.
func buildCustomerFilter(filter ListFilter) (string, []interface{}) {
	clause := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		clause += fmt.Sprintf(" AND (customers.first_name ILIKE $%d OR customers.last_name ILIKE $%d OR customers.phone_number ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.City != "" {
		clause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM addresses WHERE addresses.customer_id = customers.id AND addresses.city ILIKE $%d)", argPos)
		args = append(args, "%"+filter.City+"%")
		argPos++
	}
	if filter.State != "" {
		clause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM addresses WHERE addresses.customer_id = customers.id AND addresses.state ILIKE $%d)", argPos)
		args = append(args, "%"+filter.State+"%")
		argPos++
	}
	if filter.PinCode != "" {
		clause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM addresses WHERE addresses.customer_id = customers.id AND addresses.pin_code ILIKE $%d)", argPos)
		args = append(args, "%"+filter.PinCode+"%")
		argPos++
	}

	return clause, args
}

// List returns one page of matching customers plus the total count of
// distinct matches. Unrecognized sort fields fall back to id;
// unrecognized directions fall back to DESC.
func (r *CustomerRepository) List(filter ListFilter, offset, limit int, sortField, sortOrder string) ([]model.Customer, int, error) {
	where, args := buildCustomerFilter(filter)

	orderBy := "id"
	if listSortFields[sortField] {
		orderBy = sortField
	}
	orderDir := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		orderDir = "ASC"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM customers` + where
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT id, first_name, last_name, phone_number FROM customers%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, orderBy, orderDir, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
