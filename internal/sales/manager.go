package sales

import (
	"fmt"

	"github.com/greenacre/farmshop/internal/catalog"
	"github.com/greenacre/farmshop/internal/errors"
)

// TransactionManager opens and closes transactions and guarantees that at
// most one transaction is ongoing at any given time. It is the only mutator
// of the ongoing slot.
type TransactionManager struct {
	ongoing *Transaction
}

// NewTransactionManager creates a manager with no ongoing transaction.
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// HasOngoingTransaction reports whether a transaction is currently in progress.
func (m *TransactionManager) HasOngoingTransaction() bool {
	return m.ongoing != nil
}

// SetOngoingTransaction begins managing the given transaction.
// Returns ErrFailedTransaction if another transaction is already ongoing;
// the original transaction stays in place.
func (m *TransactionManager) SetOngoingTransaction(t *Transaction) error {
	if m.HasOngoingTransaction() {
		return fmt.Errorf("%w: a transaction is already in progress", errors.ErrFailedTransaction)
	}
	m.ongoing = t
	return nil
}

// RegisterPendingPurchase adds the given item to the cart of the customer
// associated with the ongoing transaction. Returns ErrFailedTransaction if no
// transaction is ongoing, or if the ongoing one has somehow been finalised
// already (unreachable through this manager, checked anyway).
func (m *TransactionManager) RegisterPendingPurchase(p catalog.Product) error {
	if !m.HasOngoingTransaction() {
		return fmt.Errorf("%w: no ongoing transaction to register purchase", errors.ErrFailedTransaction)
	}
	if m.ongoing.IsFinalised() {
		return fmt.Errorf("%w: the ongoing transaction has already been finalised", errors.ErrFailedTransaction)
	}
	m.ongoing.AssociatedCustomer().Cart().AddProduct(p)
	return nil
}

// CloseCurrentTransaction finalises the ongoing transaction, frees the slot
// for a new one, and returns the finalised transaction.
// Returns ErrFailedTransaction if no transaction is ongoing.
func (m *TransactionManager) CloseCurrentTransaction() (*Transaction, error) {
	if !m.HasOngoingTransaction() {
		return nil, fmt.Errorf("%w: no ongoing transaction to close", errors.ErrFailedTransaction)
	}
	closed := m.ongoing
	closed.Finalise()
	closed.AssociatedCustomer().Cart().SetEmpty()
	m.ongoing = nil
	return closed, nil
}
