package entity

import "errors"

var (
	ErrCustomerRequired  = errors.New("customer_id is required")
	ErrBranchRequired    = errors.New("branch_id is required")
	ErrProductRequired   = errors.New("product is required")
	ErrSaleMustHaveItems = errors.New("sale must have at least one item")
	ErrSaleNotFound      = errors.New("sale not found")

	// Reglas de negocio del cálculo de descuentos
	ErrNegativeQuantity      = errors.New("item quantity cannot be negative")
	ErrInvalidPrice          = errors.New("unit_price must be greater than or equal to 0")
	ErrQuantityLimitExceeded = errors.New("quantity limit exceeded")
)
