package catalog

import "fmt"

// Product is a single item of stock: one instance of a product type at a given
// quality. Products carry no serial number; two products of the same type and
// quality are interchangeable and compare equal.
type Product struct {
	Barcode Barcode
	Quality Quality
}

// NewProduct creates an item of the given type and quality.
func NewProduct(barcode Barcode, quality Quality) Product {
	return Product{Barcode: barcode, Quality: quality}
}

// BasePrice returns the item's base sale price in cents, which is a property
// of its type alone.
func (p Product) BasePrice() int64 {
	return p.Barcode.BasePrice()
}

// DisplayName returns the item's name for visual/textual representation.
func (p Product) DisplayName() string {
	return p.Barcode.DisplayName()
}

func (p Product) String() string {
	return fmt.Sprintf("%s: %dc *%s*", p.DisplayName(), p.BasePrice(), p.Quality)
}
