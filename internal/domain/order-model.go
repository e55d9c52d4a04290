package domain

import "gorm.io/gorm"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

var PaymentMethods = []string{"credit-card", "debit-card", "upi", "net-banking"}

func IsValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"not null;index" json:"user_id"`
	Status OrderStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:OrderID" json:"items"`

	Subtotal    float64 `gorm:"not null" json:"subtotal"`
	Discount    float64 `gorm:"not null;default:0" json:"discount"`
	ShippingFee float64 `gorm:"not null" json:"shipping_fee"`
	TotalPrice  float64 `gorm:"not null" json:"total_price"`
	CouponCode  string  `gorm:"type:varchar(50)" json:"coupon_code,omitempty"`

	ShippingAddress Address `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	PaymentMethod   string  `gorm:"type:varchar(30);not null;default:credit-card" json:"payment_method"`

	gorm.Model
}

// IsCancellable reports whether the order may still be cancelled. Shipped and
// delivered orders are past the point of no return, and cancelling twice
// would restock the same items twice.
func (o *Order) IsCancellable() bool {
	switch o.Status {
	case OrderShipped, OrderDelivered, OrderCancelled:
		return false
	}
	return true
}

// OrderItem snapshots the product's name and discounted unit price at the time
// the order was placed, so later catalog edits never change past orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ProductID   uint    `gorm:"not null;index" json:"product_id"`
	ProductName string  `gorm:"type:varchar(200);not null" json:"product_name"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}

type Address struct {
	FullName string `gorm:"type:varchar(100)" json:"full_name"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Street   string `gorm:"type:varchar(200)" json:"street"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	State    string `gorm:"type:varchar(100)" json:"state"`
	ZipCode  string `gorm:"type:varchar(20)" json:"zip_code"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}
