// Package errors provides the error kinds raised by the farm shop's
// bookkeeping components. Callers match them with errors.Is; every one of them
// is recoverable at the call site that triggered it.
package errors

import "errors"

var (
	// ErrInvalidStockRequest reports that a stocking operation asked for a
	// capability the current inventory variant does not support.
	ErrInvalidStockRequest = errors.New("invalid stock request")

	// ErrFailedTransaction reports a sales operation whose precondition on
	// shared state does not hold, e.g. starting a second transaction while one
	// is ongoing.
	ErrFailedTransaction = errors.New("failed transaction")

	// ErrCustomerNotFound reports an address book lookup miss.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDuplicateCustomer reports an attempt to register a customer whose
	// name and phone number are already taken.
	ErrDuplicateCustomer = errors.New("duplicate customer")
)
