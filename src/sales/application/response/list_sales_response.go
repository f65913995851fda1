package response

// ListSalesResponse resultado del listado paginado de ventas
type ListSalesResponse struct {
	Items      []SaleData `json:"items"`
	TotalCount int        `json:"total_count"`
	Success    bool       `json:"success"`
	Errors     []string   `json:"errors,omitempty"`
}
