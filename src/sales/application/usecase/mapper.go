package usecase

import (
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
)

// toSaleData proyecta una venta con sus items a la respuesta de la API
func toSaleData(sale *entity.Sale) response.SaleData {
	items := make([]response.SaleItemData, 0, len(sale.Items))
	for i := range sale.Items {
		item := &sale.Items[i]
		items = append(items, response.SaleItemData{
			ItemID:      item.ID,
			Product:     item.Product,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			TotalAmount: item.TotalAmount(),
			IsCancelled: item.IsCancelled,
		})
	}

	return response.SaleData{
		SaleID:      sale.ID,
		Date:        sale.Date,
		CustomerID:  sale.CustomerID,
		BranchID:    sale.BranchID,
		TotalAmount: sale.TotalAmount,
		IsCancelled: sale.IsCancelled,
		Items:       items,
	}
}
