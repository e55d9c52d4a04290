package services

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/zenith-max/Wellmed/internal/dto"
)

func newReceiptID() string {
	return "rcpt_" + uuid.NewString()
}

// PaymentService is a thin passthrough to the payment gateway: it converts
// the amount to minor currency units and creates a gateway order. Capturing
// the payment happens on the frontend against the gateway directly.
type PaymentService interface {
	CreatePaymentOrder(input dto.CreatePaymentOrderRequest) (*dto.PaymentOrderResponse, error)
}

type paymentService struct {
	client *razorpay.Client
}

func NewPaymentService(keyID, keySecret string) PaymentService {
	if keyID == "" || keySecret == "" {
		return &paymentService{client: nil}
	}
	return &paymentService{client: razorpay.NewClient(keyID, keySecret)}
}

func (s *paymentService) CreatePaymentOrder(input dto.CreatePaymentOrderRequest) (*dto.PaymentOrderResponse, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: valid amount is required", ErrInvalidInput)
	}
	if s.client == nil {
		return nil, fmt.Errorf("payment gateway is not configured")
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}
	receipt := input.Receipt
	if receipt == "" {
		receipt = newReceiptID()
	}

	amountMinor := int64(math.Round(input.Amount * 100))

	body, err := s.client.Order.Create(map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create payment order: %w", err)
	}

	orderID, _ := body["id"].(string)

	return &dto.PaymentOrderResponse{
		OrderID:  orderID,
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}
