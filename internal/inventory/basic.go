package inventory

import (
	"fmt"

	"github.com/greenacre/farmshop/internal/catalog"
	"github.com/greenacre/farmshop/internal/errors"
)

// BasicInventory stores and handles items individually. It only supports
// operations on a single product at a time; quantities other than one are
// rejected.
type BasicInventory struct {
	products []catalog.Product
}

var _ Inventory = (*BasicInventory)(nil)

// NewBasicInventory creates an empty basic inventory.
func NewBasicInventory() *BasicInventory {
	return &BasicInventory{}
}

// AddProduct stores one item of the given type and quality.
func (inv *BasicInventory) AddProduct(barcode catalog.Barcode, quality catalog.Quality) {
	inv.products = append(inv.products, catalog.NewProduct(barcode, quality))
}

// AddProducts stores quantity items of the given type and quality.
// Returns ErrInvalidStockRequest for any quantity other than one.
func (inv *BasicInventory) AddProducts(barcode catalog.Barcode, quality catalog.Quality, quantity int) error {
	if quantity != 1 {
		return fmt.Errorf("%w: current inventory is not fancy enough, please supply products one at a time",
			errors.ErrInvalidStockRequest)
	}
	inv.AddProduct(barcode, quality)
	return nil
}

// ExistsProduct reports whether at least one item of the given type is in stock.
func (inv *BasicInventory) ExistsProduct(barcode catalog.Barcode) bool {
	for _, p := range inv.products {
		if p.Barcode == barcode {
			return true
		}
	}
	return false
}

// RemoveProduct removes the first stored item of the given type and returns it.
// The returned slice is empty when the type is out of stock.
func (inv *BasicInventory) RemoveProduct(barcode catalog.Barcode) []catalog.Product {
	for i, p := range inv.products {
		if p.Barcode == barcode {
			inv.products = append(inv.products[:i], inv.products[i+1:]...)
			return []catalog.Product{p}
		}
	}
	return nil
}

// RemoveProducts removes up to quantity items of the given type.
// Returns ErrFailedTransaction for any quantity other than one.
func (inv *BasicInventory) RemoveProducts(barcode catalog.Barcode, quantity int) ([]catalog.Product, error) {
	if quantity != 1 {
		return nil, fmt.Errorf("%w: current inventory is not fancy enough, please purchase products one at a time",
			errors.ErrFailedTransaction)
	}
	return inv.RemoveProduct(barcode), nil
}

// AllProducts returns a snapshot of the stock in insertion order.
func (inv *BasicInventory) AllProducts() []catalog.Product {
	out := make([]catalog.Product, len(inv.products))
	copy(out, inv.products)
	return out
}
