package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenacre/farmshop/internal/catalog"
	ferrors "github.com/greenacre/farmshop/internal/errors"
)

func Test_TransactionManager_SetOngoingTransaction(t *testing.T) {
	// given
	m := NewTransactionManager()
	assert.False(t, m.HasOngoingTransaction())
	first := NewTransaction(newShopper(t))
	second := NewTransaction(newShopper(t))

	// when
	err := m.SetOngoingTransaction(first)

	// then
	require.NoError(t, err)
	assert.True(t, m.HasOngoingTransaction())

	// and when: a second transaction is started without closing the first
	err = m.SetOngoingTransaction(second)

	// then: it fails and the first transaction stays ongoing
	assert.ErrorIs(t, err, ferrors.ErrFailedTransaction)
	closed, closeErr := m.CloseCurrentTransaction()
	require.NoError(t, closeErr)
	assert.Same(t, first, closed)
}

func Test_TransactionManager_RegisterPendingPurchase(t *testing.T) {
	// given
	m := NewTransactionManager()

	// when: no transaction is ongoing
	err := m.RegisterPendingPurchase(egg(catalog.Regular))

	// then
	assert.ErrorIs(t, err, ferrors.ErrFailedTransaction)

	// and when: a transaction is ongoing
	tx := NewTransaction(newShopper(t))
	require.NoError(t, m.SetOngoingTransaction(tx))
	require.NoError(t, m.RegisterPendingPurchase(egg(catalog.Regular)))
	require.NoError(t, m.RegisterPendingPurchase(milk(catalog.Regular)))

	// then: items land in the associated customer's cart, in order
	assert.Equal(t, []catalog.Product{egg(catalog.Regular), milk(catalog.Regular)},
		tx.AssociatedCustomer().Cart().Contents())
	assert.Len(t, tx.Purchases(), 2, "the active transaction sees the live cart")
}

func Test_TransactionManager_RegisterPendingPurchase_Finalised(t *testing.T) {
	// given: an ongoing transaction that was finalised behind the manager's
	// back (unreachable through the manager, the check is defensive)
	m := NewTransactionManager()
	tx := NewTransaction(newShopper(t))
	require.NoError(t, m.SetOngoingTransaction(tx))
	tx.Finalise()

	// when
	err := m.RegisterPendingPurchase(egg(catalog.Regular))

	// then
	assert.ErrorIs(t, err, ferrors.ErrFailedTransaction)
}

func Test_TransactionManager_CloseCurrentTransaction(t *testing.T) {
	// given
	m := NewTransactionManager()
	tx := NewTransaction(newShopper(t, egg(catalog.Regular)))
	require.NoError(t, m.SetOngoingTransaction(tx))

	// when
	closed, err := m.CloseCurrentTransaction()

	// then
	require.NoError(t, err)
	assert.Same(t, tx, closed)
	assert.True(t, closed.IsFinalised())
	assert.True(t, closed.AssociatedCustomer().Cart().IsEmpty())
	assert.False(t, m.HasOngoingTransaction(), "the manager is ready for a new transaction")
}

func Test_TransactionManager_CloseCurrentTransaction_NoneOngoing(t *testing.T) {
	m := NewTransactionManager()
	closed, err := m.CloseCurrentTransaction()
	assert.ErrorIs(t, err, ferrors.ErrFailedTransaction)
	assert.Nil(t, closed)
}
