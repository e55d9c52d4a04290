package services

import (
	"errors"
	"fmt"

	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/repository"
	"gorm.io/gorm"
)

// InventoryService owns the stock invariant: stock never goes negative, and
// concurrent reservations against the same product are decided by a single
// atomic conditional decrement in the database, never by a read-then-write.
type InventoryService interface {
	// Reserve decrements stock for one line item and returns the new level.
	Reserve(productID uint, quantity int) (int, error)
	// Release puts reserved stock back after a cancellation and returns the
	// new level. A product deleted in the meantime yields ErrProductNotFound;
	// callers treat that as a tolerable loss, not a failure.
	Release(productID uint, quantity int) (int, error)
}

type inventoryService struct {
	products repository.ProductRepository
}

func NewInventoryService(products repository.ProductRepository) InventoryService {
	return &inventoryService{products: products}
}

func (s *inventoryService) Reserve(productID uint, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidInput)
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, fmt.Errorf("%w: product %d", ErrProductNotFound, productID)
	}

	// fast-path on the snapshot; the conditional decrement below stays the
	// authoritative check under concurrency
	if !domain.CanReserve(product.Stock, quantity) {
		return 0, fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
	}

	stock, err := s.products.DecrementStock(productID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrStockConflict) {
			return 0, fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
		}
		return 0, err
	}

	return stock, nil
}

func (s *inventoryService) Release(productID uint, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidInput)
	}

	stock, err := s.products.IncrementStock(productID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: product %d", ErrProductNotFound, productID)
		}
		return 0, err
	}

	return stock, nil
}
