package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateSaleItemRequest representa un item dentro de la actualización de una venta
// Si ID viene vacío se trata como item nuevo
type UpdateSaleItemRequest struct {
	ID          uuid.UUID       `json:"id,omitempty"`
	Product     string          `json:"product" binding:"required"`
	Quantity    int             `json:"quantity" binding:"gte=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsCancelled bool            `json:"is_cancelled"`
}

// UpdateSaleRequest request para reemplazar los campos mutables de una venta
// Una lista de items vacía conserva los items existentes
type UpdateSaleRequest struct {
	Date        *time.Time              `json:"date,omitempty"`
	CustomerID  string                  `json:"customer_id" binding:"required"`
	BranchID    string                  `json:"branch_id" binding:"required"`
	IsCancelled bool                    `json:"is_cancelled"`
	Items       []UpdateSaleItemRequest `json:"items" binding:"omitempty,dive"`
}
