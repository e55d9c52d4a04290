package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
)

func TestCreateCouponNormalizesCode(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	coupon, err := svc.Create(dto.CreateCouponRequest{Code: "  save20 ", DiscountPercent: 20})
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", coupon.Code)
	assert.True(t, coupon.IsActive)
}

func TestCreateCouponValidation(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	_, err := svc.Create(dto.CreateCouponRequest{Code: "   ", DiscountPercent: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(dto.CreateCouponRequest{Code: "TOOBIG", DiscountPercent: 120})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(dto.CreateCouponRequest{Code: "NEG", DiscountPercent: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindUsable(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo)
	now := time.Now()

	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)
	require.NoError(t, repo.Create(&domain.Coupon{Code: "LIVE", DiscountPercent: 10, IsActive: true, ExpiresAt: &future}))
	require.NoError(t, repo.Create(&domain.Coupon{Code: "DEAD", DiscountPercent: 10, IsActive: true, ExpiresAt: &past}))
	require.NoError(t, repo.Create(&domain.Coupon{Code: "OFF", DiscountPercent: 10, IsActive: false}))

	coupon, err := svc.FindUsable("live", now)
	require.NoError(t, err)
	assert.Equal(t, "LIVE", coupon.Code)

	_, err = svc.FindUsable("DEAD", now)
	assert.ErrorIs(t, err, ErrCouponNotUsable)

	_, err = svc.FindUsable("OFF", now)
	assert.ErrorIs(t, err, ErrCouponNotUsable)

	_, err = svc.FindUsable("NOPE", now)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestToggleCoupon(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo)

	created, err := svc.Create(dto.CreateCouponRequest{Code: "FLIP", DiscountPercent: 5})
	require.NoError(t, err)

	off := false
	toggled, err := svc.Toggle(created.ID, &off)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	_, err = svc.Toggle(9999, &off)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}
