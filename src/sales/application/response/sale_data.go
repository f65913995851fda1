package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemData proyección de un item de venta
type SaleItemData struct {
	ItemID      uuid.UUID       `json:"item_id"`
	Product     string          `json:"product"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsCancelled bool            `json:"is_cancelled"`
}

// SaleData proyección de una venta con sus items
type SaleData struct {
	SaleID      uuid.UUID       `json:"sale_id"`
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customer_id"`
	BranchID    string          `json:"branch_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsCancelled bool            `json:"is_cancelled"`
	Items       []SaleItemData  `json:"items"`
}
