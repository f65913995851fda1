package request

import "github.com/shopspring/decimal"

// CreateSaleItemRequest representa un item dentro de la creación de una venta
type CreateSaleItemRequest struct {
	Product   string          `json:"product" binding:"required"`
	Quantity  int             `json:"quantity" binding:"gte=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest request para crear una venta con sus items
type CreateSaleRequest struct {
	CustomerID string                  `json:"customer_id" binding:"required"`
	BranchID   string                  `json:"branch_id" binding:"required"`
	Items      []CreateSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
