package bus

import (
	"context"
	"log"
	"sync"

	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// InMemoryEventBus bus de eventos en proceso con registro explícito de
// suscriptores por tipo de evento, resuelto en el arranque
//
// La entrega es best-effort y sincrónica: los suscriptores se invocan en el
// orden de registro y sus fallas no afectan al comando que publicó
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]port.EventHandlerFunc
}

// NewInMemoryEventBus crea un bus de eventos vacío
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]port.EventHandlerFunc),
	}
}

// Subscribe registra un handler para un tipo de evento
func (b *InMemoryEventBus) Subscribe(eventType string, handler port.EventHandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish entrega el evento a los suscriptores de su tipo
// Un tipo sin suscriptores no es un error: el evento simplemente no se audita
func (b *InMemoryEventBus) Publish(ctx context.Context, e event.Event) {
	b.mu.RLock()
	handlers := b.handlers[e.EventType()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	log.Printf("Publicando evento %s (venta %s)", e.EventType(), e.AggregateID())

	for _, handler := range handlers {
		handler(ctx, e)
	}
}
