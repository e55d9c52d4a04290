package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanReserve(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		quantity int
		want     bool
	}{
		{"plenty of stock", 10, 3, true},
		{"exactly enough", 5, 5, true},
		{"one short", 4, 5, false},
		{"zero stock", 0, 1, false},
		{"zero quantity", 10, 0, false},
		{"negative quantity", 10, -1, false},
		{"negative quantity against empty stock", 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanReserve(tc.stock, tc.quantity))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	full := Product{Price: 200}
	assert.Equal(t, 200.0, full.EffectivePrice())

	discounted := Product{Price: 200, DiscountPercent: 25}
	assert.Equal(t, 150.0, discounted.EffectivePrice())

	free := Product{Price: 200, DiscountPercent: 100}
	assert.Equal(t, 0.0, free.EffectivePrice())
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ProductCategories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("toys"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Masks"), "categories are case sensitive")
}
