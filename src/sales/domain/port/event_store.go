package port

import (
	"context"

	"sales/src/sales/domain/event"
)

// EventStore define el contrato del almacén de auditoría de eventos
// Append-only: el core nunca vuelve a leer los eventos persistidos
type EventStore interface {
	SaveEvent(ctx context.Context, e event.Event) error
}
