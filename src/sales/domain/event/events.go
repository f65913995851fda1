package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de evento registrables en el bus y en el event store
const (
	TypeSaleCreated   = "SaleCreated"
	TypeSaleModified  = "SaleModified"
	TypeSaleCancelled = "SaleCancelled"
	TypeItemCancelled = "ItemCancelled"
)

// Event es un evento de dominio: inmutable una vez construido,
// usado para auditoría y notificación, nunca como fuente de verdad
type Event interface {
	EventType() string
	AggregateID() uuid.UUID
	OccurredOn() time.Time
}

// BaseEvent contiene los campos comunes a todos los eventos de venta
type BaseEvent struct {
	Type       string    `json:"event_type"`
	SaleID     uuid.UUID `json:"sale_id"`
	OccurredAt time.Time `json:"occurred_on"`
}

func (e BaseEvent) EventType() string      { return e.Type }
func (e BaseEvent) AggregateID() uuid.UUID { return e.SaleID }
func (e BaseEvent) OccurredOn() time.Time  { return e.OccurredAt }

// SaleCreatedEvent se emite cuando se crea una venta
type SaleCreatedEvent struct {
	BaseEvent
	CustomerID  string          `json:"customer_id"`
	BranchID    string          `json:"branch_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewSaleCreatedEvent crea un evento SaleCreated
func NewSaleCreatedEvent(saleID uuid.UUID, customerID, branchID string, totalAmount decimal.Decimal) SaleCreatedEvent {
	return SaleCreatedEvent{
		BaseEvent:   BaseEvent{Type: TypeSaleCreated, SaleID: saleID, OccurredAt: time.Now().UTC()},
		CustomerID:  customerID,
		BranchID:    branchID,
		TotalAmount: totalAmount,
	}
}

// SaleModifiedEvent se emite cuando se modifica una venta existente
type SaleModifiedEvent struct {
	BaseEvent
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewSaleModifiedEvent crea un evento SaleModified
func NewSaleModifiedEvent(saleID uuid.UUID, totalAmount decimal.Decimal) SaleModifiedEvent {
	return SaleModifiedEvent{
		BaseEvent:   BaseEvent{Type: TypeSaleModified, SaleID: saleID, OccurredAt: time.Now().UTC()},
		TotalAmount: totalAmount,
	}
}

// SaleCancelledEvent se emite cuando se cancela una venta
// También se emite al eliminar: para auditoría, delete equivale a cancelación
type SaleCancelledEvent struct {
	BaseEvent
}

// NewSaleCancelledEvent crea un evento SaleCancelled
func NewSaleCancelledEvent(saleID uuid.UUID) SaleCancelledEvent {
	return SaleCancelledEvent{
		BaseEvent: BaseEvent{Type: TypeSaleCancelled, SaleID: saleID, OccurredAt: time.Now().UTC()},
	}
}

// ItemCancelledEvent se emite cuando se cancela un item individual de la venta
type ItemCancelledEvent struct {
	BaseEvent
	ItemID  uuid.UUID `json:"item_id"`
	Product string    `json:"product"`
}

// NewItemCancelledEvent crea un evento ItemCancelled
func NewItemCancelledEvent(saleID, itemID uuid.UUID, product string) ItemCancelledEvent {
	return ItemCancelledEvent{
		BaseEvent: BaseEvent{Type: TypeItemCancelled, SaleID: saleID, OccurredAt: time.Now().UTC()},
		ItemID:    itemID,
		Product:   product,
	}
}
