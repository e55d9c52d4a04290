package services

import (
	"fmt"
	"time"

	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/internal/repository"
)

type CouponService interface {
	Create(input dto.CreateCouponRequest) (*domain.Coupon, error)
	List() ([]domain.Coupon, error)
	Toggle(id uint, isActive *bool) (*domain.Coupon, error)
	// Validate is the public advisory check a cart page calls before
	// checkout. Order creation never trusts it and re-validates itself.
	Validate(code string) (*domain.Coupon, error)
	// FindUsable returns the coupon only if it is active and unexpired at
	// the given instant.
	FindUsable(code string, now time.Time) (*domain.Coupon, error)
}

type couponService struct {
	repo repository.CouponRepository
}

func NewCouponService(repo repository.CouponRepository) CouponService {
	return &couponService{repo: repo}
}

func (s *couponService) Create(input dto.CreateCouponRequest) (*domain.Coupon, error) {
	code := domain.NormalizeCouponCode(input.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrInvalidInput)
	}

	coupon := &domain.Coupon{
		Code:            code,
		DiscountPercent: input.DiscountPercent,
		ExpiresAt:       input.ExpiresAt,
		IsActive:        true,
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := s.repo.Create(coupon); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrCouponExists
		}
		return nil, err
	}

	return coupon, nil
}

func (s *couponService) List() ([]domain.Coupon, error) {
	return s.repo.List()
}

func (s *couponService) Toggle(id uint, isActive *bool) (*domain.Coupon, error) {
	coupon, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if isActive != nil {
		coupon.IsActive = *isActive
	}

	if err := s.repo.Save(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *couponService) Validate(code string) (*domain.Coupon, error) {
	return s.FindUsable(code, time.Now())
}

func (s *couponService) FindUsable(code string, now time.Time) (*domain.Coupon, error) {
	code = domain.NormalizeCouponCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}

	coupon, err := s.repo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if !coupon.IsUsable(now) {
		return nil, ErrCouponNotUsable
	}

	return coupon, nil
}
