package inventory

import (
	"github.com/greenacre/farmshop/internal/catalog"
)

// FancyInventory stores items in per-type piles, enabling quantity information
// and bulk operations. Removal always picks the highest quality item present;
// when several items tie, the one stocked earliest wins.
type FancyInventory struct {
	stock map[catalog.Barcode][]catalog.Product
}

var _ Inventory = (*FancyInventory)(nil)

// NewFancyInventory creates an empty fancy inventory with a pile per product type.
func NewFancyInventory() *FancyInventory {
	stock := make(map[catalog.Barcode][]catalog.Product, len(catalog.Barcodes()))
	for _, b := range catalog.Barcodes() {
		stock[b] = nil
	}
	return &FancyInventory{stock: stock}
}

// AddProduct stores one item of the given type and quality.
func (inv *FancyInventory) AddProduct(barcode catalog.Barcode, quality catalog.Quality) {
	inv.stock[barcode] = append(inv.stock[barcode], catalog.NewProduct(barcode, quality))
}

// AddProducts stores quantity items of the given type and quality.
// Callers are expected to reject quantities below one before calling.
func (inv *FancyInventory) AddProducts(barcode catalog.Barcode, quality catalog.Quality, quantity int) error {
	for i := 0; i < quantity; i++ {
		inv.AddProduct(barcode, quality)
	}
	return nil
}

// ExistsProduct reports whether at least one item of the given type is in stock.
func (inv *FancyInventory) ExistsProduct(barcode catalog.Barcode) bool {
	return len(inv.stock[barcode]) > 0
}

// RemoveProduct removes the highest quality item of the given type and returns
// it. The returned slice is empty when the type is out of stock.
func (inv *FancyInventory) RemoveProduct(barcode catalog.Barcode) []catalog.Product {
	p, ok := inv.takeBest(barcode)
	if !ok {
		return nil
	}
	return []catalog.Product{p}
}

// RemoveProducts removes up to quantity items of the given type, best quality
// first, returning however many were actually in stock.
func (inv *FancyInventory) RemoveProducts(barcode catalog.Barcode, quantity int) ([]catalog.Product, error) {
	var removed []catalog.Product
	for i := 0; i < quantity; i++ {
		p, ok := inv.takeBest(barcode)
		if !ok {
			break
		}
		removed = append(removed, p)
	}
	return removed, nil
}

// AllProducts returns a snapshot of the stock, grouped by product type in
// declaration order, insertion order within each type.
func (inv *FancyInventory) AllProducts() []catalog.Product {
	var all []catalog.Product
	for _, b := range catalog.Barcodes() {
		all = append(all, inv.stock[b]...)
	}
	return all
}

// StockedQuantity returns the number of items of the given type in stock.
func (inv *FancyInventory) StockedQuantity(barcode catalog.Barcode) int {
	return len(inv.stock[barcode])
}

// takeBest removes and returns the earliest stocked item of the highest
// quality present for the given type.
func (inv *FancyInventory) takeBest(barcode catalog.Barcode) (catalog.Product, bool) {
	pile := inv.stock[barcode]
	if len(pile) == 0 {
		return catalog.Product{}, false
	}
	best := 0
	for i, p := range pile {
		if p.Quality > pile[best].Quality {
			best = i
		}
	}
	taken := pile[best]
	inv.stock[barcode] = append(pile[:best], pile[best+1:]...)
	return taken, true
}
