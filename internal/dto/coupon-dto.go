package dto

import "time"

type CreateCouponRequest struct {
	Code            string     `json:"code" validate:"required"`
	DiscountPercent float64    `json:"discount_percent" validate:"required,min=0,max=100"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

type ToggleCouponRequest struct {
	IsActive *bool `json:"is_active,omitempty"`
}

type CouponResponse struct {
	Code            string     `json:"code"`
	DiscountPercent float64    `json:"discount_percent"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IsActive        bool       `json:"is_active"`
}
