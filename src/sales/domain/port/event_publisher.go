package port

import (
	"context"

	"sales/src/sales/domain/event"
)

// EventHandlerFunc procesa un evento de dominio publicado en el bus
// Los errores se manejan dentro del handler: una falla del suscriptor
// nunca afecta el resultado del comando que originó el evento
type EventHandlerFunc func(ctx context.Context, e event.Event)

// EventPublisher publica eventos de dominio a los suscriptores registrados
// Un tipo de evento sin suscriptores no es un error
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event)
}

// EventBus es un publisher con registro explícito de suscriptores por tipo
// de evento, resuelto en el arranque
type EventBus interface {
	EventPublisher
	Subscribe(eventType string, handler EventHandlerFunc)
}
