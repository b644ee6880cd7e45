// Package catalog defines the closed set of product types the shop trades in,
// the quality grading applied to individual items, and the Product value type
// combining the two.
package catalog

// Barcode identifies a kind of stock. The set is closed: the shop only ever
// trades in the four product types enumerated below.
type Barcode int

const (
	Egg Barcode = iota
	Milk
	Jam
	Wool
)

// barcodeData carries the static attributes of a product type.
type barcodeData struct {
	displayName string
	basePrice   int64 // price in cents, constant per type regardless of quality
}

var barcodes = map[Barcode]barcodeData{
	Egg:  {displayName: "egg", basePrice: 50},
	Milk: {displayName: "milk", basePrice: 440},
	Jam:  {displayName: "jam", basePrice: 670},
	Wool: {displayName: "wool", basePrice: 2850},
}

// Barcodes returns all product types in declaration order.
func Barcodes() []Barcode {
	return []Barcode{Egg, Milk, Jam, Wool}
}

// ParseBarcode resolves a product name (e.g. "egg") to its barcode.
// The second return value reports whether the name is a known product type.
func ParseBarcode(name string) (Barcode, bool) {
	for _, b := range Barcodes() {
		if b.DisplayName() == name {
			return b, true
		}
	}
	return 0, false
}

// DisplayName returns the product type's name for visual/textual representation.
func (b Barcode) DisplayName() string {
	return barcodes[b].displayName
}

// BasePrice returns the product type's base sale price in cents.
func (b Barcode) BasePrice() int64 {
	return barcodes[b].basePrice
}

func (b Barcode) String() string {
	return b.DisplayName()
}
