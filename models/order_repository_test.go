package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	testCases := []struct {
		name     string
		label    string
		n        int64
		expected string
	}{
		{"Plain label", "PED", 42, "PED000042"},
		{"Whitespace stripped everywhere", " PED A \t", 1, "PEDA000001"},
		{"Six digit padding", "ORD", 123456, "ORD123456"},
		{"Numbers beyond six digits keep all digits", "ORD", 1234567, "ORD1234567"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatOrderNumber(tc.label, tc.n)
			assert.Equal(t, tc.expected, got)
			assert.NotContains(t, got, " ")
		})
	}
}

func TestCreateOrdersValidation(t *testing.T) {
	// Validation runs before any transaction is opened, so a nil DB is fine.
	repo := NewOrderRepository(nil, &CounterSource{})

	t.Run("No baskets", func(t *testing.T) {
		ids, err := repo.CreateOrders(nil, 11, "PED")
		assert.ErrorIs(t, err, ErrNoBaskets)
		assert.Nil(t, ids)
	})

	t.Run("Empty basket", func(t *testing.T) {
		baskets := []Basket{
			{SupplierID: 7, Items: []BasketItem{{Code: "ABC123", Quantity: 1, Total: decimal.NewFromInt(5)}}},
			{SupplierID: 9},
		}
		ids, err := repo.CreateOrders(baskets, 11, "PED")
		assert.ErrorIs(t, err, ErrEmptyBasket)
		assert.Contains(t, err.Error(), "supplier 9")
		assert.Nil(t, ids)
	})
}
