// internal/model/customer.go
package model

type Customer struct {
	ID          int    `db:"id" json:"id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

// CustomerWithAddress is the shape returned by the compound create:
// the new customer plus the address inserted in the same transaction.
type CustomerWithAddress struct {
	Customer
	Address *Address `json:"address"`
}

// CustomerAddressSummary carries the customer plus how many addresses
// it currently owns. OnlyOneAddress is true iff AddressCount == 1.
type CustomerAddressSummary struct {
	Customer
	AddressCount   int  `json:"address_count"`
	OnlyOneAddress bool `json:"only_one_address"`
}
