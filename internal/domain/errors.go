package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotInCart       = errors.New("product is not in the cart")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidView     = errors.New("invalid view")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPricing  = errors.New("invalid pricing config")
)
