package response

// CancelSaleResponse resultado de la cancelación de una venta
type CancelSaleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
