package domain

import (
	"time"

	"gorm.io/gorm"
)

var ProductCategories = []string{
	"surgical-gloves",
	"masks",
	"syringes",
	"bandages",
	"sterilization",
	"instruments",
	"protective-wear",
}

func IsValidCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Product struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"type:varchar(200);not null" json:"name"`
	Description     string  `gorm:"type:text;not null" json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	Category        string  `gorm:"type:varchar(50);not null;index" json:"category"`
	Stock           int     `gorm:"not null;default:0" json:"stock"`
	DiscountPercent float64 `gorm:"not null;default:0" json:"discount_percent"`
	ImageURL        string  `gorm:"type:text;not null" json:"image_url"`
	ImagePublicID   string  `gorm:"type:varchar(255)" json:"-"`
	Rating          float64 `gorm:"not null;default:0" json:"rating"`

	Reviews []Review `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ProductID" json:"reviews,omitempty"`

	gorm.Model
}

// EffectivePrice is the unit price after the product's own discount.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPercent <= 0 {
		return p.Price
	}
	return p.Price * (100 - p.DiscountPercent) / 100
}

// CanReserve reports whether a stock level covers the requested quantity.
// The repository enforces the same condition atomically; this exists so the
// decision is testable without a database.
func CanReserve(stock, quantity int) bool {
	return quantity > 0 && stock >= quantity
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	UserName  string    `gorm:"type:varchar(100)" json:"user_name"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
