package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCancellable(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
	}{
		{OrderPending, true},
		{OrderProcessing, true},
		{OrderShipped, false},
		{OrderDelivered, false},
		{OrderCancelled, false}, // cancelling twice would restock twice
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			o := Order{Status: tc.status}
			assert.Equal(t, tc.want, o.IsCancellable())
		})
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, IsValidOrderStatus(s), string(s))
	}
	assert.False(t, IsValidOrderStatus("refunded"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods {
		assert.True(t, IsValidPaymentMethod(m), m)
	}
	assert.False(t, IsValidPaymentMethod("barter"))
}

func TestAddressIsZero(t *testing.T) {
	assert.True(t, Address{}.IsZero())
	assert.False(t, Address{City: "Pune"}.IsZero())
}
