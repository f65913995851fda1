package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sales/src/sales/domain/event"
)

// Cantidad máxima de unidades de un mismo producto por venta
const maxQuantityPerProduct = 20

// Sale representa una venta (Aggregate Root)
// El total y los descuentos son derivados: siempre los recalcula el aggregate
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customer_id"`
	BranchID    string          `json:"branch_id"`
	Items       []SaleItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsCancelled bool            `json:"is_cancelled"`

	// Eventos de dominio pendientes de publicar (transientes, no se persisten)
	events []event.Event
}

// NewSale crea una nueva venta (DDD Aggregate Root)
func NewSale(customerID, branchID string, items []SaleItem) (*Sale, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}
	if branchID == "" {
		return nil, ErrBranchRequired
	}

	saleID := uuid.New()

	// Asignar sale_id a todos los items
	for i := range items {
		items[i].SaleID = saleID
	}

	return &Sale{
		ID:          saleID,
		Date:        time.Now().UTC(),
		CustomerID:  customerID,
		BranchID:    branchID,
		Items:       items,
		TotalAmount: decimal.Zero,
	}, nil
}

// AddItem agrega un item a la venta y recalcula el total
// No revalida el tope de 20 unidades; eso ocurre en CalculateDiscountAndTotal
func (s *Sale) AddItem(item SaleItem) {
	item.SaleID = s.ID
	s.Items = append(s.Items, item)
	s.RecalculateTotal()
}

// CalculateDiscountAndTotal deriva el descuento de cada item según su cantidad
// y recalcula el total de la venta
//
// Tramos de descuento por cantidad del propio item:
//   - 0 a 3: sin descuento
//   - 4 a 9: 10%
//   - 10 a 20: 20%
//
// El tope de 20 unidades se evalúa por producto sumando las cantidades de todos
// sus items (incluidos los cancelados). Si alguna regla falla, la venta queda
// intacta: ni descuentos ni total se modifican.
func (s *Sale) CalculateDiscountAndTotal() error {
	if len(s.Items) == 0 {
		s.TotalAmount = decimal.Zero
		return nil
	}

	quantityByProduct := make(map[string]int)
	for _, item := range s.Items {
		if item.Quantity < 0 {
			return ErrNegativeQuantity
		}
		quantityByProduct[item.Product] += item.Quantity
	}

	for product, quantity := range quantityByProduct {
		if quantity > maxQuantityPerProduct {
			return fmt.Errorf("%w for product %s", ErrQuantityLimitExceeded, product)
		}
	}

	total := decimal.Zero
	for i := range s.Items {
		item := &s.Items[i]
		item.Discount = discountFor(item.Quantity, item.UnitPrice)
		total = total.Add(item.TotalAmount())
	}

	s.TotalAmount = total
	return nil
}

// RecalculateTotal recalcula el total como la suma de los totales de los items,
// sin rederivar descuentos. Usar cuando los items ya traen descuentos calculados.
func (s *Sale) RecalculateTotal() {
	total := decimal.Zero
	for i := range s.Items {
		total = total.Add(s.Items[i].TotalAmount())
	}
	s.TotalAmount = total
}

// Cancel cancela la venta. Si ya estaba cancelada no hace nada y no emite
// un segundo evento SaleCancelled.
func (s *Sale) Cancel() {
	if s.IsCancelled {
		return
	}
	s.IsCancelled = true
	s.AddEvent(event.NewSaleCancelledEvent(s.ID))
}

// AddEvent registra un evento de dominio pendiente de publicar
func (s *Sale) AddEvent(e event.Event) {
	s.events = append(s.events, e)
}

// Events retorna los eventos pendientes en el orden en que fueron emitidos
func (s *Sale) Events() []event.Event {
	return s.events
}

// ClearEvents descarta los eventos pendientes (tras publicarlos)
func (s *Sale) ClearEvents() {
	s.events = nil
}

// discountFor retorna el descuento para un item según el tramo de su cantidad
// Garantiza discount <= quantity * unitPrice
func discountFor(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	var rate decimal.Decimal

	switch {
	case quantity >= 4 && quantity < 10:
		rate = decimal.NewFromFloat(0.10)
	case quantity >= 10 && quantity <= maxQuantityPerProduct:
		rate = decimal.NewFromFloat(0.20)
	default:
		return decimal.Zero
	}

	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return gross.Mul(rate)
}
