package response

// DeleteSaleResponse resultado de la eliminación de una venta
type DeleteSaleResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}
