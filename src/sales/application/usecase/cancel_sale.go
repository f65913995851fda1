package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// CancelSaleUseCase caso de uso para cancelar una venta y todos sus items
type CancelSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	cache     port.CacheService
}

// NewCancelSaleUseCase crea una nueva instancia del caso de uso
func NewCancelSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, cache port.CacheService) *CancelSaleUseCase {
	return &CancelSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		cache:     cache,
	}
}

// Execute cancela la venta con cascada a sus items en una sola operación
// Una venta ya cancelada o inexistente retorna Success=false sin emitir evento
func (uc *CancelSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) *response.CancelSaleResponse {
	cancelled, err := uc.saleRepo.Cancel(ctx, saleID)
	if err != nil {
		log.Printf("Error cancelando venta %s: %v", saleID, err)
		return &response.CancelSaleResponse{
			Success: false,
			Message: "Sale not found or could not be cancelled.",
		}
	}

	if !cancelled {
		return &response.CancelSaleResponse{
			Success: false,
			Message: "Sale not found or could not be cancelled.",
		}
	}

	uc.publisher.Publish(ctx, event.NewSaleCancelledEvent(saleID))

	if err := uc.cache.Remove(ctx, saleCacheKey(saleID)); err != nil {
		log.Printf("Error invalidando cache de venta %s: %v", saleID, err)
	}

	log.Printf("SaleCancelled: %s", saleID)

	return &response.CancelSaleResponse{
		Success: true,
		Message: "Sale cancelled successfully.",
	}
}
