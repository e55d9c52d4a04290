package repository

import (
	"errors"
	"log"

	"github.com/zenith-max/Wellmed/internal/domain"
	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(coupon *domain.Coupon) error
	FindByCode(code string) (*domain.Coupon, error)
	FindByID(id uint) (*domain.Coupon, error)
	List() ([]domain.Coupon, error)
	Save(coupon *domain.Coupon) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *domain.Coupon) error {
	if coupon == nil {
		return errors.New("nil coupon")
	}
	return r.db.Create(coupon).Error
}

// FindByCode expects an already-normalized (trimmed, uppercased) code.
func (r *couponRepository) FindByCode(code string) (*domain.Coupon, error) {
	coupon := &domain.Coupon{}

	if err := r.db.First(coupon, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find coupon by code error: %v", err)
		return nil, err
	}

	return coupon, nil
}

func (r *couponRepository) FindByID(id uint) (*domain.Coupon, error) {
	coupon := &domain.Coupon{}

	if err := r.db.First(coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find coupon by id error: %v", err)
		return nil, err
	}

	return coupon, nil
}

func (r *couponRepository) List() ([]domain.Coupon, error) {
	var coupons []domain.Coupon

	if err := r.db.Order("created_at DESC").Find(&coupons).Error; err != nil {
		log.Printf("list coupons error: %v", err)
		return nil, err
	}

	return coupons, nil
}

func (r *couponRepository) Save(coupon *domain.Coupon) error {
	if coupon == nil {
		return errors.New("nil coupon")
	}
	return r.db.Save(coupon).Error
}
