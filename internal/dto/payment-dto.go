package dto

type CreatePaymentOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type PaymentOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type UpdateShippingChargeRequest struct {
	ShippingCharge float64 `json:"shipping_charge" validate:"min=0"`
}
