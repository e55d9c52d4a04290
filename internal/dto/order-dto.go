package dto

import "github.com/zenith-max/Wellmed/internal/domain"

type CartItem struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []CartItem     `json:"items" validate:"required"`
	ShippingAddress domain.Address `json:"shipping_address" validate:"required"`
	PaymentMethod   string         `json:"payment_method"`
	CouponCode      string         `json:"coupon_code,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
