package repository

import (
	"errors"
	"log"

	"github.com/zenith-max/Wellmed/internal/domain"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	FindByID(id uint) (*domain.Order, error)
	FindByUser(userID uint) ([]domain.Order, error)
	ListAll() ([]domain.Order, error)
	SaveOrder(order *domain.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order and its line items in one transaction.
func (r *orderRepository) CreateOrder(order *domain.Order) error {
	if order == nil {
		return errors.New("nil order")
	}

	if err := r.db.Create(order).Error; err != nil {
		log.Printf("create order error: %v", err)
		return err
	}
	return nil
}

func (r *orderRepository) FindByID(id uint) (*domain.Order, error) {
	order := &domain.Order{}

	if err := r.db.Preload("Items").First(order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find order by id error: %v", err)
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) FindByUser(userID uint) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		log.Printf("find orders by user error: %v", err)
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) ListAll() ([]domain.Order, error) {
	var orders []domain.Order

	err := r.db.Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		log.Printf("list orders error: %v", err)
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) SaveOrder(order *domain.Order) error {
	if order == nil {
		return errors.New("nil order")
	}

	if err := r.db.Save(order).Error; err != nil {
		log.Printf("save order error: %v", err)
		return err
	}
	return nil
}
