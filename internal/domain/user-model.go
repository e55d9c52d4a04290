package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:customer" json:"role"`

	EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`

	// SHA-256 hex digests of the outstanding one-time codes; plaintext is
	// never stored. At most one code per purpose is live at a time.
	VerificationCodeHash      string     `json:"-"`
	VerificationCodeExpiresAt *time.Time `json:"-"`
	ResetCodeHash             string     `json:"-"`
	ResetCodeExpiresAt        *time.Time `json:"-"`

	gorm.Model
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
