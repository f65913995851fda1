package usecase

import (
	"context"
	"log"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// CreateSaleUseCase caso de uso para crear una venta
type CreateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
	}
}

// Execute crea la venta: valida el request, construye el aggregate, calcula
// descuentos y total, persiste y publica los eventos emitidos
//
// Cualquier falla (validación, regla de dominio, persistencia) se traduce en
// Success=false con los mensajes en Errors; nunca escapa un error del caso de uso
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) *response.CreateSaleResponse {
	resp := &response.CreateSaleResponse{}

	// 1. Validar presencia de campos requeridos antes de tocar el aggregate
	if req.CustomerID == "" {
		resp.Errors = append(resp.Errors, entity.ErrCustomerRequired.Error())
	}
	if req.BranchID == "" {
		resp.Errors = append(resp.Errors, entity.ErrBranchRequired.Error())
	}
	if len(req.Items) == 0 {
		resp.Errors = append(resp.Errors, entity.ErrSaleMustHaveItems.Error())
	}
	if len(resp.Errors) > 0 {
		return resp
	}

	// 2. Construir items
	items := make([]entity.SaleItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := entity.NewSaleItem(itemReq.Product, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			resp.Errors = append(resp.Errors, err.Error())
			return resp
		}
		items = append(items, *item)
	}

	// 3. Construir el aggregate y derivar descuentos y total
	sale, err := entity.NewSale(req.CustomerID, req.BranchID, items)
	if err != nil {
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	if err := sale.CalculateDiscountAndTotal(); err != nil {
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	sale.AddEvent(event.NewSaleCreatedEvent(sale.ID, sale.CustomerID, sale.BranchID, sale.TotalAmount))

	// 4. Persistir primero, publicar después (sin atomicidad entre ambos)
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		log.Printf("Error persistiendo venta: %v", err)
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	for _, e := range sale.Events() {
		uc.publisher.Publish(ctx, e)
	}
	sale.ClearEvents()

	resp.SaleID = sale.ID
	resp.TotalAmount = sale.TotalAmount
	resp.Success = true
	log.Printf("SaleCreated: %s", sale.ID)

	return resp
}
