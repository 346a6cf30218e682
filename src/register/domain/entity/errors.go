package entity

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")

	// Errores del carrito
	ErrOutOfStock           = errors.New("requested quantity exceeds available stock")
	ErrIndexOutOfRange      = errors.New("cart line index out of range")
	ErrEmptyCart            = errors.New("cart must have at least one item")
	ErrProductNotFound      = errors.New("product not found")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// Checkout
	ErrInsufficientPayment = errors.New("received amount must be greater than or equal to total")
)
