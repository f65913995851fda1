package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa una línea de producto dentro de una venta (Entity dentro del Aggregate)
// El descuento es un valor derivado: lo calcula el aggregate, nunca el caller
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	Product     string          `json:"product"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	IsCancelled bool            `json:"is_cancelled"`
}

// NewSaleItem crea un nuevo item de venta
// Quantity cero es válido (sin descuento, sin aporte al total); el tope de 20
// unidades por producto se valida a nivel del aggregate
func NewSaleItem(product string, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	if product == "" {
		return nil, ErrProductRequired
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &SaleItem{
		ID:        uuid.New(),
		Product:   product,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Discount:  decimal.Zero,
	}, nil
}

// TotalAmount retorna (quantity * unit_price) - discount
func (i *SaleItem) TotalAmount() decimal.Decimal {
	gross := i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
	return gross.Sub(i.Discount)
}

// Cancel marca el item como cancelado (idempotente)
func (i *SaleItem) Cancel() {
	i.IsCancelled = true
}
