// Package inventory provides storage for the farm shop's stock. Two variants
// implement the same contract: a basic inventory restricted to single-item
// operations, and a fancy inventory that supports quantities and hands out the
// highest quality items first.
package inventory

import (
	"github.com/greenacre/farmshop/internal/catalog"
)

// Inventory is the base contract for stock storage.
// It abstracts the underlying stock handling, allowing variants with different
// capabilities (single-item vs. bulk operations).
type Inventory interface {
	// AddProduct stores one item of the given type and quality.
	AddProduct(barcode catalog.Barcode, quality catalog.Quality)

	// AddProducts stores quantity items of the given type and quality.
	// Returns ErrInvalidStockRequest if the variant does not support the
	// requested quantity.
	AddProducts(barcode catalog.Barcode, quality catalog.Quality, quantity int) error

	// ExistsProduct reports whether at least one item of the given type is in stock.
	ExistsProduct(barcode catalog.Barcode) bool

	// RemoveProduct removes one item of the given type, if any, and returns it.
	// The returned slice holds at most one item; it is empty when the type is
	// out of stock.
	RemoveProduct(barcode catalog.Barcode) []catalog.Product

	// RemoveProducts removes up to quantity items of the given type, returning
	// however many were actually available. Returns ErrFailedTransaction if
	// the variant does not support the requested quantity.
	RemoveProducts(barcode catalog.Barcode, quantity int) ([]catalog.Product, error)

	// AllProducts returns a snapshot of every item currently in stock.
	AllProducts() []catalog.Product
}
