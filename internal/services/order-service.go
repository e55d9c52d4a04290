package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/interfaces"
	"github.com/zenith-max/Wellmed/internal/repository"
)

type OrderService interface {
	CreateOrder(userID uint, input dto.CreateOrderRequest) (*domain.Order, error)
	CancelOrder(orderID, requesterID uint, requesterRole string) (*domain.Order, error)
	UpdateStatus(orderID uint, status domain.OrderStatus) (*domain.Order, error)
	GetOrder(orderID, requesterID uint, requesterRole string) (*domain.Order, error)
	MyOrders(userID uint) ([]domain.Order, error)
	AllOrders() ([]domain.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	inventory InventoryService
	coupons   CouponService
	settings  SettingsService
	producer  interfaces.ProducerHandler
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	inventory InventoryService,
	coupons CouponService,
	settings SettingsService,
	producer interfaces.ProducerHandler,
) OrderService {
	return &orderService{
		orders:    orders,
		products:  products,
		inventory: inventory,
		coupons:   coupons,
		settings:  settings,
		producer:  producer,
	}
}

// CreateOrder reserves stock line item by line item. Reservation is not
// transactional across the whole cart, so any failure after the first
// successful reservation triggers a compensating release of everything
// reserved so far before the error is surfaced.
func (s *orderService) CreateOrder(userID uint, input dto.CreateOrderRequest) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if input.ShippingAddress.IsZero() {
		return nil, ErrMissingAddress
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "credit-card"
	}
	if !domain.IsValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, paymentMethod)
	}

	shippingFee, err := s.settings.GetShippingCharge()
	if err != nil {
		return nil, err
	}

	var (
		orderItems []domain.OrderItem
		subtotal   float64
	)

	for _, item := range input.Items {
		if item.Quantity < 1 {
			s.releaseAll(orderItems)
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}

		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			s.releaseAll(orderItems)
			return nil, err
		}
		if product == nil {
			s.releaseAll(orderItems)
			return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, item.ProductID)
		}

		if _, err := s.inventory.Reserve(product.ID, item.Quantity); err != nil {
			s.releaseAll(orderItems)
			return nil, err
		}

		// price and name are snapshotted here; later catalog edits must not
		// change what this order charged
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.EffectivePrice(),
			Quantity:    item.Quantity,
		})
		subtotal += product.EffectivePrice() * float64(item.Quantity)
	}

	var (
		discount   float64
		couponCode string
	)
	if input.CouponCode != "" {
		// re-validated here regardless of any earlier advisory check
		coupon, err := s.coupons.FindUsable(input.CouponCode, time.Now())
		if err != nil {
			s.releaseAll(orderItems)
			return nil, err
		}
		discount = subtotal * coupon.DiscountPercent / 100
		couponCode = coupon.Code
	}

	order := &domain.Order{
		UserID:          userID,
		Status:          domain.OrderPending,
		Items:           orderItems,
		Subtotal:        subtotal,
		Discount:        discount,
		ShippingFee:     shippingFee,
		TotalPrice:      subtotal - discount + shippingFee,
		CouponCode:      couponCode,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   paymentMethod,
	}

	if err := s.orders.CreateOrder(order); err != nil {
		s.releaseAll(orderItems)
		return nil, err
	}

	s.publishEvent("order.created", order)
	return order, nil
}

func (s *orderService) CancelOrder(orderID, requesterID uint, requesterRole string) (*domain.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if requesterRole != domain.RoleAdmin && order.UserID != requesterID {
		return nil, fmt.Errorf("%w to cancel this order", ErrForbidden)
	}

	if !order.IsCancellable() {
		return nil, ErrNotCancellable
	}

	// restock every line item; a product deleted since the order was placed
	// simply cannot be restored
	for _, item := range order.Items {
		if _, err := s.inventory.Release(item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, ErrProductNotFound) {
				log.Printf("cancel order %d: product %d no longer exists, stock not restored", order.ID, item.ProductID)
				continue
			}
			return nil, err
		}
	}

	order.Status = domain.OrderCancelled
	if err := s.orders.SaveOrder(order); err != nil {
		return nil, err
	}

	s.publishEvent("order.cancelled", order)
	return order, nil
}

func (s *orderService) UpdateStatus(orderID uint, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.Status = status
	if err := s.orders.SaveOrder(order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) GetOrder(orderID, requesterID uint, requesterRole string) (*domain.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if requesterRole != domain.RoleAdmin && order.UserID != requesterID {
		return nil, fmt.Errorf("%w to view this order", ErrForbidden)
	}

	return order, nil
}

func (s *orderService) MyOrders(userID uint) ([]domain.Order, error) {
	return s.orders.FindByUser(userID)
}

func (s *orderService) AllOrders() ([]domain.Order, error) {
	return s.orders.ListAll()
}

// releaseAll undoes reservations already taken for this order. Best effort:
// a release that fails is logged, not retried.
func (s *orderService) releaseAll(items []domain.OrderItem) {
	for _, item := range items {
		if _, err := s.inventory.Release(item.ProductID, item.Quantity); err != nil {
			log.Printf("compensating release failed for product %d qty %d: %v", item.ProductID, item.Quantity, err)
		}
	}
}

type orderEvent struct {
	EventID    string             `json:"event_id"`
	OrderID    uint               `json:"order_id"`
	UserID     uint               `json:"user_id"`
	Status     domain.OrderStatus `json:"status"`
	TotalPrice float64            `json:"total_price"`
	OccurredAt time.Time          `json:"occurred_at"`
}

func (s *orderService) publishEvent(key string, order *domain.Order) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(orderEvent{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}

	if err := s.producer.PublishMessage([]byte(key), payload); err != nil {
		log.Printf("publish %s for order %d failed: %v", key, order.ID, err)
	}
}
