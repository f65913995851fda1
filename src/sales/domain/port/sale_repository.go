package port

import (
	"context"

	"github.com/google/uuid"

	"sales/src/sales/domain/entity"
)

// SaleRepository define el contrato para persistir ventas
type SaleRepository interface {
	// Create persiste una nueva venta con sus items
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retorna la venta con sus items, o entity.ErrSaleNotFound
	FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)

	// Update reemplaza la venta y su colección de items
	// Retorna entity.ErrSaleNotFound si la venta no existe
	Update(ctx context.Context, sale *entity.Sale) error

	// List retorna una página de ventas ordenadas por fecha descendente
	// junto con el total de registros
	List(ctx context.Context, skip, take int) ([]*entity.Sale, int, error)

	// Cancel marca la venta y todos sus items como cancelados
	// Retorna false si la venta no existe o ya estaba cancelada
	Cancel(ctx context.Context, saleID uuid.UUID) (bool, error)

	// Delete elimina la venta y sus items (cascada)
	// Retorna false si la venta no existe
	Delete(ctx context.Context, saleID uuid.UUID) (bool, error)
}
