package response

// GetSaleResponse resultado de la consulta de una venta
// Success=false sin errores significa venta no encontrada
type GetSaleResponse struct {
	SaleData
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}
