package domain

import "errors"

// Product validation errors, raised by the admin product form and API.
var (
	ErrEmptyProductName      = errors.New("product name cannot be empty")
	ErrProductNameTooLong    = errors.New("product name exceeds maximum length of 120 characters")
	ErrEmptyProductType      = errors.New("product type cannot be empty")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrOriginalPriceTooLow   = errors.New("original price must be greater than price")
	ErrNegativeStock         = errors.New("stock cannot be negative")
	ErrUnknownBadge          = errors.New("badge must be one of Nuevo, Oferta, Popular, Premium")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidNewsletterMail = errors.New("email address is not valid")
)

// Coupon and session errors.
var (
	// ErrUnknownCoupon is returned when a code is not in the coupon registry.
	ErrUnknownCoupon = errors.New("coupon code is not valid")

	// ErrInvalidCredentials is returned by admin login when the user/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)
