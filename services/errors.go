package services

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrEmailAlreadyExists   = errors.New("an account with this email already exists")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrWeakPassword         = errors.New("password must be 8 to 72 characters and contain upper case, lower case, digit and symbol")
	ErrInvalidToken         = errors.New("invalid token")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrForbidden            = errors.New("forbidden")

	ErrUnknownEmail   = errors.New("no account found with that email")
	ErrInvalidCode    = errors.New("invalid reset code")
	ErrMailDispatch   = errors.New("failed to send email")
	ErrResetCompleted = errors.New("password reset already completed")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrPersistenceFailure = errors.New("persistence failure")

	ErrProductNotFound   = errors.New("product not found")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidPromotion  = errors.New("invalid promotion")
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound    = errors.New("review not found")
)

// persistence wraps a storage error so callers can match both the
// taxonomy class and the root cause with errors.Is.
func persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
}
