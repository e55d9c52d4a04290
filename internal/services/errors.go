package services

import "errors"

// Failure classes surfaced by the service layer. Handlers map these onto HTTP
// statuses with errors.Is; anything else is treated as an internal error.
var (
	// validation
	ErrInvalidInput   = errors.New("invalid input")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("shipping address is required")

	// not found
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCouponNotFound  = errors.New("coupon not found")

	// conflict
	ErrEmailRegistered   = errors.New("email already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCouponExists      = errors.New("coupon code already exists")

	// authorization
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not authorized")

	// state
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrNotCancellable       = errors.New("order can no longer be cancelled")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrCouponNotUsable      = errors.New("coupon is inactive or expired")
)
