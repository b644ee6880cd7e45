// Package sales implements the farm shop's transaction bookkeeping: the
// transaction lifecycle and pricing, the manager enforcing the
// one-transaction-at-a-time rule, the append-only history with its statistics,
// and receipt rendering.
package sales

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/greenacre/farmshop/internal/catalog"
	"github.com/greenacre/farmshop/internal/customer"
)

// Kind selects the pricing and receipt behaviour of a transaction.
type Kind int

const (
	// KindFlat prices every item individually at its base price.
	KindFlat Kind = iota
	// KindCategorised groups purchases by product type, pricing each type as
	// base price times quantity.
	KindCategorised
	// KindSpecialSale is a categorised transaction with per-type percentage
	// discounts applied to the subtotals.
	KindSpecialSale
)

// State is the lifecycle state of a transaction. The only transition is
// Active -> Finalised; there is no way back out of Finalised.
type State int

const (
	// StateActive: purchases are a live view of the customer's cart.
	StateActive State = iota
	// StateFinalised: purchases are an owned, immutable snapshot.
	StateFinalised
)

// Transaction tracks what items are to be (or have been) purchased and by whom.
// While active it reads through to the associated customer's cart, so pending
// purchases registered by the manager are always visible; finalising snapshots
// the cart into the transaction and empties it, exactly once.
type Transaction struct {
	id        uuid.UUID
	customer  *customer.Customer
	kind      Kind
	discounts map[catalog.Barcode]int
	state     State
	purchases []catalog.Product // set on finalisation, nil while active
}

// NewTransaction creates an active flat transaction for the given customer.
func NewTransaction(c *customer.Customer) *Transaction {
	return newTransaction(c, KindFlat, nil)
}

// NewCategorisedTransaction creates an active transaction whose purchases are
// grouped by product type on the receipt.
func NewCategorisedTransaction(c *customer.Customer) *Transaction {
	return newTransaction(c, KindCategorised, nil)
}

// NewSpecialSaleTransaction creates an active categorised transaction with
// store-wide percentage discounts for the nominated product types. Types
// absent from the map are sold at full price. Discount values are applied
// verbatim; they are deliberately not range-checked.
func NewSpecialSaleTransaction(c *customer.Customer, discounts map[catalog.Barcode]int) *Transaction {
	copied := make(map[catalog.Barcode]int, len(discounts))
	for b, d := range discounts {
		copied[b] = d
	}
	return newTransaction(c, KindSpecialSale, copied)
}

func newTransaction(c *customer.Customer, kind Kind, discounts map[catalog.Barcode]int) *Transaction {
	return &Transaction{
		id:        uuid.New(),
		customer:  c,
		kind:      kind,
		discounts: discounts,
		state:     StateActive,
	}
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() uuid.UUID {
	return t.id
}

// Kind returns the transaction's pricing kind.
func (t *Transaction) Kind() Kind {
	return t.kind
}

// AssociatedCustomer returns the customer this transaction belongs to.
func (t *Transaction) AssociatedCustomer() *customer.Customer {
	return t.customer
}

// IsFinalised reports whether the sale has been completed.
func (t *Transaction) IsFinalised() bool {
	return t.state == StateFinalised
}

// Purchases returns the items associated with the transaction: the live cart
// contents while active, the frozen purchase record once finalised.
func (t *Transaction) Purchases() []catalog.Product {
	if t.state == StateFinalised {
		out := make([]catalog.Product, len(t.purchases))
		copy(out, t.purchases)
		return out
	}
	return t.customer.Cart().Contents()
}

// Finalise completes the sale: the current cart contents become the permanent
// purchase record and the cart is emptied. Calling it again is a no-op.
func (t *Transaction) Finalise() {
	if t.state == StateFinalised {
		return
	}
	t.purchases = t.customer.Cart().Contents()
	t.customer.Cart().SetEmpty()
	t.state = StateFinalised
}

// Total returns the price of the current purchases in cents, with discounts
// applied for special sales.
func (t *Transaction) Total() int64 {
	if t.kind == KindSpecialSale {
		var total int64
		for _, b := range t.PurchasedTypes() {
			total += t.PurchaseSubtotal(b)
		}
		return total
	}
	var total int64
	for _, p := range t.Purchases() {
		total += p.BasePrice()
	}
	return total
}

// PurchasedTypes returns the distinct product types present in the purchases,
// in catalog declaration order.
func (t *Transaction) PurchasedTypes() []catalog.Barcode {
	byType := t.PurchasesByType()
	var types []catalog.Barcode
	for _, b := range catalog.Barcodes() {
		if len(byType[b]) > 0 {
			types = append(types, b)
		}
	}
	return types
}

// PurchasesByType returns the purchases grouped by product type.
func (t *Transaction) PurchasesByType() map[catalog.Barcode][]catalog.Product {
	byType := make(map[catalog.Barcode][]catalog.Product)
	for _, p := range t.Purchases() {
		byType[p.Barcode] = append(byType[p.Barcode], p)
	}
	return byType
}

// PurchaseQuantity returns the number of purchased items of the given type,
// zero if none.
func (t *Transaction) PurchaseQuantity(barcode catalog.Barcode) int {
	return len(t.PurchasesByType()[barcode])
}

// PurchaseSubtotal returns the price of all purchased items of the given type,
// in cents. For special sales the configured discount percentage is taken off,
// using integer division on the whole subtotal rather than per item.
func (t *Transaction) PurchaseSubtotal(barcode catalog.Barcode) int64 {
	subtotal := barcode.BasePrice() * int64(t.PurchaseQuantity(barcode))
	if t.kind == KindSpecialSale {
		subtotal -= subtotal * int64(t.DiscountAmount(barcode)) / 100
	}
	return subtotal
}

// DiscountAmount returns the discount percentage configured for the given
// product type, zero if none. Only special sales carry discounts.
func (t *Transaction) DiscountAmount(barcode catalog.Barcode) int {
	return t.discounts[barcode]
}

// TotalSaved returns how much the customer saved through discounts, in cents.
// Zero for anything but a special sale.
func (t *Transaction) TotalSaved() int64 {
	if t.kind != KindSpecialSale {
		return 0
	}
	var saved int64
	for _, b := range t.PurchasedTypes() {
		subtotal := b.BasePrice() * int64(t.PurchaseQuantity(b))
		saved += subtotal * int64(t.DiscountAmount(b)) / 100
	}
	return saved
}

// Receipt renders the transaction for display. While the transaction is still
// active a fixed placeholder is returned; once finalised the receipt lists the
// purchases (one line per item for flat transactions, one line per type with
// quantity and subtotal otherwise), the total, and, when anything was saved,
// the total savings.
func (t *Transaction) Receipt() string {
	if !t.IsFinalised() {
		return activeReceipt()
	}
	if t.kind == KindFlat {
		return t.flatReceipt()
	}
	return t.groupedReceipt()
}

func (t *Transaction) flatReceipt() string {
	var entries [][]string
	for _, p := range t.purchases {
		entries = append(entries, []string{p.DisplayName(), formatCents(p.BasePrice())})
	}
	return renderReceipt([]string{"Item", "Price"}, entries, formatCents(t.Total()), t.customer.Name(), "")
}

func (t *Transaction) groupedReceipt() string {
	var entries [][]string
	for _, b := range t.PurchasedTypes() {
		entry := []string{
			b.DisplayName(),
			fmt.Sprintf("%d", t.PurchaseQuantity(b)),
			formatCents(b.BasePrice()),
			formatCents(t.PurchaseSubtotal(b)),
		}
		if t.DiscountAmount(b) > 0 {
			entry = append(entry, fmt.Sprintf("Discount applied! %d%% off %s", t.DiscountAmount(b), b.DisplayName()))
		}
		entries = append(entries, entry)
	}
	savings := ""
	if t.TotalSaved() > 0 {
		savings = formatCents(t.TotalSaved())
	}
	return renderReceipt([]string{"Item", "Qty", "Price (ea.)", "Subtotal"},
		entries, formatCents(t.Total()), t.customer.Name(), savings)
}

func (t *Transaction) String() string {
	status := "Active"
	if t.IsFinalised() {
		status = "Finalised"
	}
	items := make([]string, 0, len(t.Purchases()))
	for _, p := range t.Purchases() {
		items = append(items, p.String())
	}
	return fmt.Sprintf("Transaction {Customer: %s | Phone Number: %d | Address: %s, Status: %s, Associated Products: [%s]}",
		t.customer.Name(), t.customer.PhoneNumber(), t.customer.Address(), status, strings.Join(items, ", "))
}
