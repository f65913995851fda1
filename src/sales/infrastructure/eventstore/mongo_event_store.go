package eventstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"sales/src/sales/domain/event"
	"sales/src/sales/domain/port"
)

// EventDocument documento de auditoría persistido en MongoDB
// El payload del evento se guarda serializado como JSON
type EventDocument struct {
	ID        string    `bson:"_id"`
	EventType string    `bson:"event_type"`
	Data      string    `bson:"data"`
	Timestamp time.Time `bson:"timestamp"`
}

// MongoEventStore implementa el event store de auditoría sobre MongoDB
// Colección append-only: el core nunca la vuelve a leer
type MongoEventStore struct {
	collection *mongo.Collection
}

// NewMongoEventStore crea el event store sobre la colección domain_events
func NewMongoEventStore(database *mongo.Database) port.EventStore {
	return &MongoEventStore{
		collection: database.Collection("domain_events"),
	}
}

// SaveEvent agrega un documento de auditoría para el evento
func (s *MongoEventStore) SaveEvent(ctx context.Context, e event.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("error encoding event %s: %w", e.EventType(), err)
	}

	doc := EventDocument{
		ID:        uuid.New().String(),
		EventType: e.EventType(),
		Data:      string(data),
		Timestamp: time.Now().UTC(),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error saving event %s: %w", e.EventType(), err)
	}

	return nil
}
