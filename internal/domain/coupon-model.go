package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Code            string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	DiscountPercent float64    `gorm:"not null" json:"discount_percent"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	gorm.Model
}

// IsUsable reports whether the coupon may be applied at the given instant.
func (c *Coupon) IsUsable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return false
	}
	return true
}

// NormalizeCouponCode trims and uppercases a user-supplied code so lookups
// are insensitive to how the customer typed it.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
