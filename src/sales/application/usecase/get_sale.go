package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
)

// TTL de la proyección de venta en cache; no hay invalidación activa más allá
// de las operaciones de mutación, el TTL acota la ventana de staleness
const saleCacheTTL = 10 * time.Minute

// saleCacheKey construye la clave de cache con la convención "Sale:{id}"
func saleCacheKey(saleID uuid.UUID) string {
	return "Sale:" + saleID.String()
}

// GetSaleUseCase caso de uso para obtener una venta por ID con cache de lectura
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
	cache    port.CacheService
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository, cache port.CacheService) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
		cache:    cache,
	}
}

// Execute consulta primero el cache; en un miss carga del repositorio y
// guarda la proyección con expiración
//
// Venta inexistente retorna Success=false sin errores, distinguible de una
// falla de validación o infraestructura
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) *response.GetSaleResponse {
	resp := &response.GetSaleResponse{}
	key := saleCacheKey(saleID)

	var cached response.GetSaleResponse
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		// Una falla del cache solo implica el camino lento
		log.Printf("Error leyendo cache %s: %v", key, err)
	} else if hit {
		return &cached
	}

	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return resp
		}
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	resp.SaleData = toSaleData(sale)
	resp.Success = true

	if err := uc.cache.Set(ctx, key, resp, saleCacheTTL); err != nil {
		log.Printf("Error guardando cache %s: %v", key, err)
	}

	return resp
}
