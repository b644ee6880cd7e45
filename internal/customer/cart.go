package customer

import "github.com/greenacre/farmshop/internal/catalog"

// Cart buffers the items a customer has reserved until they check out.
// Items are kept in the order they were added; the cart is only ever emptied
// in bulk, when a transaction is finalised.
type Cart struct {
	items []catalog.Product
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddProduct appends the given item to the cart. It has no effect on inventory.
func (c *Cart) AddProduct(p catalog.Product) {
	c.items = append(c.items, p)
}

// Contents returns a snapshot of the cart in insertion order.
func (c *Cart) Contents() []catalog.Product {
	out := make([]catalog.Product, len(c.items))
	copy(out, c.items)
	return out
}

// SetEmpty clears the cart.
func (c *Cart) SetEmpty() {
	c.items = c.items[:0]
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
