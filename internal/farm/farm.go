// Package farm ties the shop's components together: the inventory holding the
// stock, the address book of customers, the transaction manager, and the
// history of completed sales. It is the single entry point the shopfront
// talks to.
package farm

import (
	"fmt"

	"github.com/greenacre/farmshop/internal/catalog"
	"github.com/greenacre/farmshop/internal/customer"
	"github.com/greenacre/farmshop/internal/errors"
	"github.com/greenacre/farmshop/internal/inventory"
	"github.com/greenacre/farmshop/internal/sales"
)

// Farm owns the internal state of the shop and mediates all updates to it.
type Farm struct {
	inventory   inventory.Inventory
	addressBook *customer.AddressBook
	manager     *sales.TransactionManager
	history     *sales.TransactionHistory
}

// New creates a farm around the supplied inventory and address book, with a
// fresh transaction manager and an empty history.
func New(inv inventory.Inventory, book *customer.AddressBook) *Farm {
	return &Farm{
		inventory:   inv,
		addressBook: book,
		manager:     sales.NewTransactionManager(),
		history:     sales.NewTransactionHistory(),
	}
}

// SaveCustomer registers the customer in the farm's address book.
// Returns ErrDuplicateCustomer if the identity is already taken.
func (f *Farm) SaveCustomer(c *customer.Customer) error {
	return f.addressBook.AddCustomer(c)
}

// Customer looks up a customer in the farm's address book.
// Returns ErrCustomerNotFound if no match exists.
func (f *Farm) Customer(name string, phoneNumber int) (*customer.Customer, error) {
	return f.addressBook.Customer(name, phoneNumber)
}

// AllCustomers returns every customer record in the address book.
func (f *Farm) AllCustomers() []*customer.Customer {
	return f.addressBook.AllRecords()
}

// StockProduct adds a single item of the given type and quality to the
// inventory.
func (f *Farm) StockProduct(barcode catalog.Barcode, quality catalog.Quality) {
	f.inventory.AddProduct(barcode, quality)
}

// StockProducts adds quantity items of the given type and quality to the
// inventory. A quantity below one is a caller error and is rejected before
// the inventory is consulted; beyond that the inventory variant decides
// whether bulk stocking is supported.
func (f *Farm) StockProducts(barcode catalog.Barcode, quality catalog.Quality, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	return f.inventory.AddProducts(barcode, quality, quantity)
}

// AllStock returns every item currently held in the inventory.
func (f *Farm) AllStock() []catalog.Product {
	return f.inventory.AllProducts()
}

// StartTransaction installs the given transaction as the ongoing one.
// Returns ErrFailedTransaction if another transaction is already ongoing.
func (f *Farm) StartTransaction(t *sales.Transaction) error {
	return f.manager.SetOngoingTransaction(t)
}

// AddToCart moves a single item of the given type from the inventory into the
// shopping customer's cart, returning how many items were actually reserved
// (zero when out of stock). Stock removal and cart registration happen as one
// effective step: nothing is removed unless a transaction is ongoing.
func (f *Farm) AddToCart(barcode catalog.Barcode) (int, error) {
	if err := f.checkTransactionOngoing(); err != nil {
		return 0, err
	}
	products := f.inventory.RemoveProduct(barcode)
	if len(products) == 0 {
		return 0, nil
	}
	if err := f.manager.RegisterPendingPurchase(products[0]); err != nil {
		return 0, err
	}
	return 1, nil
}

// AddManyToCart moves up to quantity items of the given type from the
// inventory into the shopping customer's cart, returning how many items were
// actually reserved (fewer than asked when stock runs short, zero when out of
// stock).
func (f *Farm) AddManyToCart(barcode catalog.Barcode, quantity int) (int, error) {
	if err := f.checkTransactionOngoing(); err != nil {
		return 0, err
	}
	products, err := f.inventory.RemoveProducts(barcode, quantity)
	if err != nil {
		return 0, err
	}
	for _, p := range products {
		if err := f.manager.RegisterPendingPurchase(p); err != nil {
			return 0, err
		}
	}
	return len(products), nil
}

// Checkout closes the ongoing transaction. It reports whether anything was
// purchased: an empty cart yields false and the transaction is discarded
// rather than recorded.
func (f *Farm) Checkout() (bool, error) {
	if err := f.checkTransactionOngoing(); err != nil {
		return false, err
	}
	t, err := f.manager.CloseCurrentTransaction()
	if err != nil {
		return false, err
	}
	if len(t.Purchases()) == 0 {
		return false, nil
	}
	f.history.RecordTransaction(t)
	return true, nil
}

// LastReceipt returns the receipt of the most recently recorded transaction,
// empty if there is none yet.
func (f *Farm) LastReceipt() string {
	last := f.history.LastTransaction()
	if last == nil {
		return ""
	}
	return last.Receipt()
}

// TransactionHistory exposes the farm's sales record for statistics queries.
func (f *Farm) TransactionHistory() *sales.TransactionHistory {
	return f.history
}

// TransactionManager exposes the farm's transaction manager.
func (f *Farm) TransactionManager() *sales.TransactionManager {
	return f.manager
}

func (f *Farm) checkTransactionOngoing() error {
	if !f.manager.HasOngoingTransaction() {
		return fmt.Errorf("%w: cannot add to cart when no customer has started shopping",
			errors.ErrFailedTransaction)
	}
	return nil
}
