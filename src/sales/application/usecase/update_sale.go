package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// UpdateSaleUseCase caso de uso para actualizar una venta completa
type UpdateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	cache     port.CacheService
}

// NewUpdateSaleUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, cache port.CacheService) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute reemplaza los campos mutables de la venta y, si el request trae
// items, reemplaza la colección completa rederivando descuentos
//
// Eventos, en orden de emisión: SaleModified siempre; SaleCancelled si la
// cancelación transiciona de false a true en esta actualización; ItemCancelled
// por cada item que quedó cancelado y no lo estaba antes
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.UpdateSaleRequest) *response.UpdateSaleResponse {
	resp := &response.UpdateSaleResponse{SaleID: saleID}

	if req.CustomerID == "" {
		resp.Errors = append(resp.Errors, entity.ErrCustomerRequired.Error())
	}
	if req.BranchID == "" {
		resp.Errors = append(resp.Errors, entity.ErrBranchRequired.Error())
	}
	if len(resp.Errors) > 0 {
		return resp
	}

	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			resp.Errors = append(resp.Errors, entity.ErrSaleNotFound.Error())
		} else {
			resp.Errors = append(resp.Errors, err.Error())
		}
		return resp
	}

	wasCancelled := sale.IsCancelled
	cancelledBefore := make(map[uuid.UUID]bool, len(sale.Items))
	for _, item := range sale.Items {
		cancelledBefore[item.ID] = item.IsCancelled
	}

	sale.CustomerID = req.CustomerID
	sale.BranchID = req.BranchID
	if req.Date != nil {
		sale.Date = *req.Date
	}

	if len(req.Items) > 0 {
		items := make([]entity.SaleItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			item, err := entity.NewSaleItem(itemReq.Product, itemReq.Quantity, itemReq.UnitPrice)
			if err != nil {
				resp.Errors = append(resp.Errors, err.Error())
				return resp
			}
			if itemReq.ID != uuid.Nil {
				item.ID = itemReq.ID
			}
			item.SaleID = saleID
			if itemReq.IsCancelled {
				item.Cancel()
			}
			items = append(items, *item)
		}

		sale.Items = items
		if err := sale.CalculateDiscountAndTotal(); err != nil {
			resp.Errors = append(resp.Errors, err.Error())
			return resp
		}
	} else {
		// Sin items nuevos: los existentes conservan sus descuentos
		sale.RecalculateTotal()
	}

	sale.AddEvent(event.NewSaleModifiedEvent(sale.ID, sale.TotalAmount))

	// La cancelación es monótona: una venta cancelada no se descancela
	if req.IsCancelled && !wasCancelled {
		sale.Cancel()
	}

	for _, item := range sale.Items {
		if item.IsCancelled && !cancelledBefore[item.ID] {
			sale.AddEvent(event.NewItemCancelledEvent(sale.ID, item.ID, item.Product))
		}
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		log.Printf("Error actualizando venta %s: %v", saleID, err)
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	for _, e := range sale.Events() {
		uc.publisher.Publish(ctx, e)
	}
	sale.ClearEvents()

	if err := uc.cache.Remove(ctx, saleCacheKey(saleID)); err != nil {
		log.Printf("Error invalidando cache de venta %s: %v", saleID, err)
	}

	resp.Success = true
	log.Printf("SaleModified: %s", saleID)

	return resp
}
