package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// DeleteSaleUseCase caso de uso para eliminar una venta con sus items
type DeleteSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	cache     port.CacheService
}

// NewDeleteSaleUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, cache port.CacheService) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute elimina la venta y sus items. Una venta inexistente se reporta como
// falla en el resultado, nunca como error propagado
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) *response.DeleteSaleResponse {
	resp := &response.DeleteSaleResponse{}

	deleted, err := uc.saleRepo.Delete(ctx, saleID)
	if err != nil {
		log.Printf("Error eliminando venta %s: %v", saleID, err)
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	if !deleted {
		resp.Errors = append(resp.Errors, entity.ErrSaleNotFound.Error())
		return resp
	}

	// Para el event store la eliminación se audita como cancelación
	uc.publisher.Publish(ctx, event.NewSaleCancelledEvent(saleID))

	if err := uc.cache.Remove(ctx, saleCacheKey(saleID)); err != nil {
		log.Printf("Error invalidando cache de venta %s: %v", saleID, err)
	}

	resp.Success = true
	log.Printf("SaleDeleted: %s", saleID)

	return resp
}
