package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/davidkar/customer-records-backend/internal/errors"
	"github.com/davidkar/customer-records-backend/internal/model"
)

func TestAddressCreateChecksCustomerExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &AddressRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM customers")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO addresses")).
		WithArgs(7, "12 MG Rd", "Pune", "MH", "411001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	address := &model.Address{
		CustomerID:     7,
		AddressDetails: "12 MG Rd",
		City:           "Pune",
		State:          "MH",
		PinCode:        "411001",
	}
	err := repo.Create(address)
	require.NoError(t, err)
	assert.Equal(t, 3, address.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An orphan insert is a caller error: missing customer means no row is
// written at all.
func TestAddressCreateMissingCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &AddressRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM customers")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	err := repo.Create(&model.Address{CustomerID: 42, AddressDetails: "x", City: "y", State: "z", PinCode: "41100"})
	var notFound *appErrors.NotFoundError
	require.True(t, errors.As(err, &notFound), "expected NotFoundError, got %T", err)
	assert.Equal(t, "customer", notFound.Resource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &AddressRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id")).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(9)
	var notFound *appErrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "address", notFound.Resource)
}

func TestAddressUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &AddressRepository{DB: db}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE addresses")).
		WithArgs("12 MG Rd", "Pune", "MH", "411001", 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(&model.Address{ID: 9, AddressDetails: "12 MG Rd", City: "Pune", State: "MH", PinCode: "411001"})
	var notFound *appErrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestAddressDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &AddressRepository{DB: db}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM addresses")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(9)
	var notFound *appErrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

// A customer with no addresses gets an empty slice, not an error.
func TestListByCustomerEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &AddressRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("FROM addresses")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "address_details", "city", "state", "pin_code"}))

	addresses, err := repo.ListByCustomer(7)
	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}
