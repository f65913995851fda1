package events

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/src/sales/domain/event"
	"sales/src/sales/infrastructure/bus"
)

type fakeEventStore struct {
	saved   []event.Event
	saveErr error
}

func (s *fakeEventStore) SaveEvent(_ context.Context, e event.Event) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, e)
	return nil
}

func TestRegister_AuditsEverySaleEventType(t *testing.T) {
	store := &fakeEventStore{}
	eventBus := bus.NewInMemoryEventBus()
	NewAuditEventHandlers(store).Register(eventBus)

	saleID := uuid.New()
	eventBus.Publish(context.Background(), event.NewSaleCancelledEvent(saleID))
	eventBus.Publish(context.Background(), event.NewSaleModifiedEvent(saleID, decimal.NewFromInt(100)))
	eventBus.Publish(context.Background(), event.NewItemCancelledEvent(saleID, uuid.New(), "Cerveza IPA"))

	require.Len(t, store.saved, 3)
	assert.Equal(t, event.TypeSaleCancelled, store.saved[0].EventType())
	assert.Equal(t, event.TypeSaleModified, store.saved[1].EventType())
	assert.Equal(t, event.TypeItemCancelled, store.saved[2].EventType())
}

func TestPersistEvent_FailureIsSwallowed(t *testing.T) {
	store := &fakeEventStore{saveErr: errors.New("mongo down")}
	eventBus := bus.NewInMemoryEventBus()
	NewAuditEventHandlers(store).Register(eventBus)

	// Una falla del event store no debe propagarse al comando
	assert.NotPanics(t, func() {
		eventBus.Publish(context.Background(), event.NewSaleCancelledEvent(uuid.New()))
	})
	assert.Empty(t, store.saved)
}
