package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenacre/farmshop/internal/catalog"
	"github.com/greenacre/farmshop/internal/customer"
)

func newShopper(t *testing.T, products ...catalog.Product) *customer.Customer {
	t.Helper()
	c := customer.New("Sam", 555, "1 Farm Lane")
	for _, p := range products {
		c.Cart().AddProduct(p)
	}
	return c
}

func egg(q catalog.Quality) catalog.Product  { return catalog.NewProduct(catalog.Egg, q) }
func milk(q catalog.Quality) catalog.Product { return catalog.NewProduct(catalog.Milk, q) }

func Test_Transaction_LiveViewWhileActive(t *testing.T) {
	// given: a transaction opened over an empty cart
	c := newShopper(t)
	tx := NewTransaction(c)

	// when: the cart changes after the transaction was created
	c.Cart().AddProduct(egg(catalog.Regular))
	c.Cart().AddProduct(milk(catalog.Regular))

	// then: reads reflect the live cart
	assert.Len(t, tx.Purchases(), 2)
	assert.Equal(t, int64(490), tx.Total())
	assert.False(t, tx.IsFinalised())
}

func Test_Transaction_Finalise_SnapshotsAndEmptiesCart(t *testing.T) {
	// given
	c := newShopper(t, egg(catalog.Regular), milk(catalog.Regular))
	tx := NewTransaction(c)

	// when
	tx.Finalise()

	// then
	assert.True(t, tx.IsFinalised())
	assert.True(t, c.Cart().IsEmpty())
	assert.Len(t, tx.Purchases(), 2)

	// and: the frozen record never observes further cart mutations
	c.Cart().AddProduct(egg(catalog.Gold))
	assert.Len(t, tx.Purchases(), 2)
	assert.Equal(t, int64(490), tx.Total())
}

func Test_Transaction_Finalise_Idempotent(t *testing.T) {
	// given
	c := newShopper(t, egg(catalog.Regular))
	tx := NewTransaction(c)

	// when
	tx.Finalise()
	once := tx.Purchases()
	tx.Finalise()

	// then: a second call changes nothing
	assert.Equal(t, once, tx.Purchases())
	assert.True(t, c.Cart().IsEmpty())
}

func Test_Transaction_Receipt_ActivePlaceholder(t *testing.T) {
	// given
	c := newShopper(t, egg(catalog.Regular))
	tx := NewTransaction(c)

	// then: the placeholder is fixed regardless of cart contents
	placeholder := tx.Receipt()
	c.Cart().AddProduct(milk(catalog.Regular))
	assert.Equal(t, placeholder, tx.Receipt())
	assert.Contains(t, placeholder, "still active")
}

func Test_Transaction_FlatReceipt(t *testing.T) {
	// given
	c := newShopper(t, egg(catalog.Regular), milk(catalog.Regular))
	tx := NewTransaction(c)
	tx.Finalise()

	// when
	receipt := tx.Receipt()

	// then: one line per item, prices as two-decimal currency strings
	assert.Contains(t, receipt, "egg")
	assert.Contains(t, receipt, "$0.50")
	assert.Contains(t, receipt, "milk")
	assert.Contains(t, receipt, "$4.40")
	assert.Contains(t, receipt, "Total: $4.90")
	assert.Contains(t, receipt, "Thank you for shopping with us, Sam!")
}

func Test_CategorisedTransaction_Grouping(t *testing.T) {
	// given: {2 x egg, 1 x milk}
	c := newShopper(t, egg(catalog.Regular), milk(catalog.Regular), egg(catalog.Gold))
	tx := NewCategorisedTransaction(c)

	// then
	assert.Equal(t, 2, tx.PurchaseQuantity(catalog.Egg))
	assert.Equal(t, 1, tx.PurchaseQuantity(catalog.Milk))
	assert.Equal(t, 0, tx.PurchaseQuantity(catalog.Wool))
	assert.Equal(t, 2*catalog.Egg.BasePrice(), tx.PurchaseSubtotal(catalog.Egg))
	assert.Equal(t, tx.PurchaseSubtotal(catalog.Egg)+tx.PurchaseSubtotal(catalog.Milk), tx.Total())
	assert.Equal(t, []catalog.Barcode{catalog.Egg, catalog.Milk}, tx.PurchasedTypes())

	byType := tx.PurchasesByType()
	require.Len(t, byType[catalog.Egg], 2)
	require.Len(t, byType[catalog.Milk], 1)
}

func Test_CategorisedTransaction_Receipt(t *testing.T) {
	// given
	c := newShopper(t, egg(catalog.Regular), egg(catalog.Regular), milk(catalog.Regular))
	tx := NewCategorisedTransaction(c)
	tx.Finalise()

	// when
	receipt := tx.Receipt()

	// then: grouped lines with quantities and subtotals
	assert.Contains(t, receipt, "Qty")
	assert.Contains(t, receipt, "Price (ea.)")
	assert.Contains(t, receipt, "$1.00") // egg subtotal
	assert.Contains(t, receipt, "Total: $5.40")
}

func Test_SpecialSaleTransaction_Discounting(t *testing.T) {
	// given: egg at 50c, discount 10%, quantity 3
	c := newShopper(t, egg(catalog.Regular), egg(catalog.Regular), egg(catalog.Regular))
	tx := NewSpecialSaleTransaction(c, map[catalog.Barcode]int{catalog.Egg: 10})

	// then: 150 - 15 = 135 and 15 saved
	assert.Equal(t, int64(135), tx.PurchaseSubtotal(catalog.Egg))
	assert.Equal(t, int64(135), tx.Total())
	assert.Equal(t, int64(15), tx.TotalSaved())
	assert.Equal(t, 10, tx.DiscountAmount(catalog.Egg))
	assert.Equal(t, 0, tx.DiscountAmount(catalog.Milk))
}

func Test_SpecialSaleTransaction_IntegerDivision(t *testing.T) {
	// given: one egg at 50c with a 33% discount; 50*33/100 floors to 16
	c := newShopper(t, egg(catalog.Regular))
	tx := NewSpecialSaleTransaction(c, map[catalog.Barcode]int{catalog.Egg: 33})

	// then: the division applies to the whole subtotal, floored
	assert.Equal(t, int64(34), tx.PurchaseSubtotal(catalog.Egg))
	assert.Equal(t, int64(16), tx.TotalSaved())
}

func Test_SpecialSaleTransaction_DiscountsNotRangeChecked(t *testing.T) {
	testCases := []struct {
		name             string
		discount         int
		expectedSubtotal int64
		expectedSaved    int64
	}{
		// A discount above 100% produces a negative subtotal; a negative
		// discount inflates it. Both pass through verbatim.
		{name: "discount above 100", discount: 150, expectedSubtotal: -25, expectedSaved: 75},
		{name: "negative discount", discount: -20, expectedSubtotal: 60, expectedSaved: -10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given: one egg at 50c
			c := newShopper(t, egg(catalog.Regular))
			tx := NewSpecialSaleTransaction(c, map[catalog.Barcode]int{catalog.Egg: tc.discount})
			// then
			assert.Equal(t, tc.expectedSubtotal, tx.PurchaseSubtotal(catalog.Egg))
			assert.Equal(t, tc.expectedSaved, tx.TotalSaved())
		})
	}
}

func Test_SpecialSaleTransaction_DiscountMapIsCopied(t *testing.T) {
	// given
	discounts := map[catalog.Barcode]int{catalog.Egg: 10}
	c := newShopper(t, egg(catalog.Regular))
	tx := NewSpecialSaleTransaction(c, discounts)

	// when: the caller mutates their map afterwards
	discounts[catalog.Egg] = 90

	// then: the transaction keeps its own copy
	assert.Equal(t, 10, tx.DiscountAmount(catalog.Egg))
}

func Test_SpecialSaleTransaction_Receipt(t *testing.T) {
	// given
	c := newShopper(t, egg(catalog.Regular), egg(catalog.Regular), egg(catalog.Regular))
	tx := NewSpecialSaleTransaction(c, map[catalog.Barcode]int{catalog.Egg: 10})
	tx.Finalise()

	// when
	receipt := tx.Receipt()

	// then
	assert.Contains(t, receipt, "Discount applied! 10% off egg")
	assert.Contains(t, receipt, "Total: $1.35")
	assert.Contains(t, receipt, "***** TOTAL SAVINGS: $0.15 *****")
}

func Test_SpecialSaleTransaction_Receipt_NoSavingsLineWithoutSavings(t *testing.T) {
	// given: a special sale where nothing purchased was discounted
	c := newShopper(t, milk(catalog.Regular))
	tx := NewSpecialSaleTransaction(c, map[catalog.Barcode]int{catalog.Egg: 10})
	tx.Finalise()

	// then
	assert.NotContains(t, tx.Receipt(), "TOTAL SAVINGS")
}

func Test_Transaction_IDsAreUnique(t *testing.T) {
	c := newShopper(t)
	assert.NotEqual(t, NewTransaction(c).ID(), NewTransaction(c).ID())
}
