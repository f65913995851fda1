package events

import (
	"context"
	"log"

	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// AuditEventHandlers persiste cada evento de dominio publicado como un
// registro de auditoría en el event store
//
// Entrega at-most-once: una falla al guardar se loguea y no se reintenta;
// la mutación de la venta ya persistida no se revierte
type AuditEventHandlers struct {
	eventStore port.EventStore
}

// NewAuditEventHandlers crea los suscriptores de auditoría
func NewAuditEventHandlers(eventStore port.EventStore) *AuditEventHandlers {
	return &AuditEventHandlers{
		eventStore: eventStore,
	}
}

// Register suscribe un handler de auditoría por cada tipo de evento de venta
func (h *AuditEventHandlers) Register(eventBus port.EventBus) {
	for _, eventType := range []string{
		event.TypeSaleCreated,
		event.TypeSaleModified,
		event.TypeSaleCancelled,
		event.TypeItemCancelled,
	} {
		eventBus.Subscribe(eventType, h.persistEvent)
	}
}

func (h *AuditEventHandlers) persistEvent(ctx context.Context, e event.Event) {
	if err := h.eventStore.SaveEvent(ctx, e); err != nil {
		log.Printf("Error guardando evento %s (venta %s) en el event store: %v", e.EventType(), e.AggregateID(), err)
		return
	}
	log.Printf("Evento %s (venta %s) auditado", e.EventType(), e.AggregateID())
}
