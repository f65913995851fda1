package response

import "github.com/google/uuid"

// UpdateSaleResponse resultado de la actualización de una venta
type UpdateSaleResponse struct {
	SaleID  uuid.UUID `json:"sale_id"`
	Success bool      `json:"success"`
	Errors  []string  `json:"errors,omitempty"`
}
