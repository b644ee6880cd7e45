package customer

import (
	"fmt"

	"github.com/greenacre/farmshop/internal/errors"
)

// AddressBook is where the farmer stores customer records. No two records may
// share the same (name, phone number) identity.
type AddressBook struct {
	customers []*Customer
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// AddCustomer registers a new customer.
// Returns ErrDuplicateCustomer if a customer with the same name and phone
// number is already on record.
func (b *AddressBook) AddCustomer(c *Customer) error {
	if b.ContainsCustomer(c) {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateCustomer, c)
	}
	b.customers = append(b.customers, c)
	return nil
}

// ContainsCustomer reports whether a customer with the same identity is
// already on record.
func (b *AddressBook) ContainsCustomer(c *Customer) bool {
	for _, existing := range b.customers {
		if existing.Equals(c) {
			return true
		}
	}
	return false
}

// AllRecords returns a snapshot of every customer record, in registration order.
func (b *AddressBook) AllRecords() []*Customer {
	out := make([]*Customer, len(b.customers))
	copy(out, b.customers)
	return out
}

// Customer looks up a customer by name and phone number.
// Returns ErrCustomerNotFound if no such customer is on record.
func (b *AddressBook) Customer(name string, phoneNumber int) (*Customer, error) {
	for _, c := range b.customers {
		if c.Name() == name && c.PhoneNumber() == phoneNumber {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s, %d", errors.ErrCustomerNotFound, name, phoneNumber)
}
