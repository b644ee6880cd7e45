// Package customer keeps the records of the people who shop at the farm:
// their contact details, their shopping carts, and the address book the
// farmer looks them up in.
package customer

import "fmt"

// Customer is one person who shops at the farm. A customer owns exactly one
// cart for their lifetime. Identity is the (name, phone number) pair; the
// contact fields are mutable, but the address book does no re-indexing, so
// changing them after registration can create duplicate-looking records.
type Customer struct {
	name        string
	phoneNumber int
	address     string
	cart        *Cart
}

// New creates a customer with their details and a fresh, empty cart.
func New(name string, phoneNumber int, address string) *Customer {
	return &Customer{
		name:        name,
		phoneNumber: phoneNumber,
		address:     address,
		cart:        NewCart(),
	}
}

// Name returns the customer's name.
func (c *Customer) Name() string { return c.name }

// SetName updates the customer's name.
func (c *Customer) SetName(name string) { c.name = name }

// PhoneNumber returns the customer's phone number.
func (c *Customer) PhoneNumber() int { return c.phoneNumber }

// SetPhoneNumber updates the customer's phone number.
func (c *Customer) SetPhoneNumber(phone int) { c.phoneNumber = phone }

// Address returns the customer's address.
func (c *Customer) Address() string { return c.address }

// SetAddress updates the customer's address.
func (c *Customer) SetAddress(address string) { c.address = address }

// Cart returns the customer's cart.
func (c *Customer) Cart() *Cart { return c.cart }

// Equals reports whether two customers share the same identity, i.e. the same
// name and phone number. Address plays no part.
func (c *Customer) Equals(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.name == other.name && c.phoneNumber == other.phoneNumber
}

func (c *Customer) String() string {
	return fmt.Sprintf("Name: %s | Phone Number: %d | Address: %s", c.name, c.phoneNumber, c.address)
}
