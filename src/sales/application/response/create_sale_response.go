package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleResponse resultado de la creación de una venta
type CreateSaleResponse struct {
	SaleID      uuid.UUID       `json:"sale_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Success     bool            `json:"success"`
	Errors      []string        `json:"errors,omitempty"`
}
