package services

import "errors"

var (
	ErrInvalidDiscountCode = errors.New("invalid discount code")
	ErrInvalidCheckout     = errors.New("cart is empty or payment method missing")
	ErrTableOccupied       = errors.New("table is occupied")
	ErrTableNotFound       = errors.New("table not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderSubmission     = errors.New("order submission failed")
)
