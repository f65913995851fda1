package usecase

import (
	"context"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para listar ventas con paginación
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute retorna una página de ventas ordenadas por fecha descendente
// junto con el total de registros para calcular páginas
func (uc *ListSalesUseCase) Execute(ctx context.Context, skip, take int) *response.ListSalesResponse {
	resp := &response.ListSalesResponse{}

	// Valores por defecto
	if skip < 0 {
		skip = 0
	}
	if take < 1 || take > 100 {
		take = 10
	}

	sales, totalCount, err := uc.saleRepo.List(ctx, skip, take)
	if err != nil {
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	items := make([]response.SaleData, 0, len(sales))
	for _, sale := range sales {
		items = append(items, toSaleData(sale))
	}

	resp.Items = items
	resp.TotalCount = totalCount
	resp.Success = true

	return resp
}
