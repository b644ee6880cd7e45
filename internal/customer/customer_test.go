package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenacre/farmshop/internal/catalog"
)

func Test_Customer_Identity(t *testing.T) {
	testCases := []struct {
		name     string
		a        *Customer
		b        *Customer
		expected bool
	}{
		{
			name:     "same name and phone are equal",
			a:        New("Sam", 555, "1 Farm Lane"),
			b:        New("Sam", 555, "2 Other Road"),
			expected: true,
		},
		{
			name:     "same name different phone are not equal",
			a:        New("Sam", 555, "1 Farm Lane"),
			b:        New("Sam", 556, "1 Farm Lane"),
			expected: false,
		},
		{
			name:     "different name same phone are not equal",
			a:        New("Sam", 555, "1 Farm Lane"),
			b:        New("Alex", 555, "1 Farm Lane"),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equals(tc.b))
		})
	}
}

func Test_Customer_EqualsNil(t *testing.T) {
	assert.False(t, New("Sam", 555, "1 Farm Lane").Equals(nil))
}

func Test_Customer_OwnsOneCart(t *testing.T) {
	// given
	c := New("Sam", 555, "1 Farm Lane")
	// when: the customer's details change
	c.SetName("Samuel")
	c.SetAddress("2 Other Road")
	// then: the cart instance stays the same for the customer's lifetime
	cart := c.Cart()
	cart.AddProduct(catalog.NewProduct(catalog.Egg, catalog.Regular))
	assert.Same(t, cart, c.Cart())
	assert.Len(t, c.Cart().Contents(), 1)
}

func Test_Cart(t *testing.T) {
	// given
	cart := NewCart()
	assert.True(t, cart.IsEmpty())

	// when
	cart.AddProduct(catalog.NewProduct(catalog.Milk, catalog.Regular))
	cart.AddProduct(catalog.NewProduct(catalog.Egg, catalog.Gold))

	// then: contents preserve insertion order
	assert.False(t, cart.IsEmpty())
	assert.Equal(t, []catalog.Product{
		catalog.NewProduct(catalog.Milk, catalog.Regular),
		catalog.NewProduct(catalog.Egg, catalog.Gold),
	}, cart.Contents())

	// and: the snapshot is a copy, not a live view
	snapshot := cart.Contents()
	cart.AddProduct(catalog.NewProduct(catalog.Jam, catalog.Regular))
	assert.Len(t, snapshot, 2)

	// and: SetEmpty clears everything
	cart.SetEmpty()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Contents())
}
