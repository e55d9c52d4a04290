package repository

import (
	"errors"
	"log"

	"github.com/zenith-max/Wellmed/internal/domain"
	"gorm.io/gorm"
)

// ErrStockConflict is returned when a conditional stock decrement matched the
// product but the remaining stock could not cover the requested quantity.
var ErrStockConflict = errors.New("insufficient stock")

type ProductRepository interface {
	Create(product *domain.Product) error
	FindByID(id uint) (*domain.Product, error)
	Search(category, search string, limit, offset int) ([]domain.Product, error)
	Save(product *domain.Product) error
	Delete(id uint) error

	// DecrementStock atomically runs "stock = stock - qty" guarded by
	// "stock >= qty" and returns the new stock level. Two concurrent calls
	// can never both pass a stale stock check.
	DecrementStock(id uint, qty int) (int, error)
	// IncrementStock atomically restores stock and returns the new level.
	IncrementStock(id uint, qty int) (int, error)

	AddReview(review *domain.Review, newRating float64) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *domain.Product) error {
	if product == nil {
		return errors.New("nil product")
	}
	return r.db.Create(product).Error
}

func (r *productRepository) FindByID(id uint) (*domain.Product, error) {
	product := &domain.Product{}

	if err := r.db.Preload("Reviews").First(product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find product by id error: %v", err)
		return nil, err
	}

	return product, nil
}

func (r *productRepository) Search(category, search string, limit, offset int) ([]domain.Product, error) {
	q := r.db.Model(&domain.Product{}).Order("created_at DESC")

	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var products []domain.Product
	if err := q.Find(&products).Error; err != nil {
		log.Printf("search products error: %v", err)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Save(product *domain.Product) error {
	if product == nil {
		return errors.New("nil product")
	}
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *productRepository) DecrementStock(id uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, errors.New("quantity must be positive")
	}

	var stock int
	res := r.db.Raw(`
		UPDATE products
		SET stock = stock - ?
		WHERE id = ? AND stock >= ? AND deleted_at IS NULL
		RETURNING stock
	`, qty, id, qty).Scan(&stock)
	if res.Error != nil {
		log.Printf("decrement stock error: %v", res.Error)
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrStockConflict
	}

	return stock, nil
}

func (r *productRepository) IncrementStock(id uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, errors.New("quantity must be positive")
	}

	var stock int
	res := r.db.Raw(`
		UPDATE products
		SET stock = stock + ?
		WHERE id = ? AND deleted_at IS NULL
		RETURNING stock
	`, qty, id).Scan(&stock)
	if res.Error != nil {
		log.Printf("increment stock error: %v", res.Error)
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return stock, nil
}

// AddReview stores the review and the recomputed product rating together.
func (r *productRepository) AddReview(review *domain.Review, newRating float64) error {
	if review == nil {
		return errors.New("nil review")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Product{}).
			Where("id = ?", review.ProductID).
			UpdateColumn("rating", newRating).Error
	})
}
