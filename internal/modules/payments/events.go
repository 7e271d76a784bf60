package payments

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/google/uuid"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/store"
)

// ProviderEvent is an audit record of every verified webhook delivery,
// deduped by a unique (provider, event_id) index. Reconciliation itself is
// idempotent; the record tells redeliveries apart from first deliveries.
type ProviderEvent struct {
	ID         string    `bson:"id"`
	Provider   string    `bson:"provider"`
	EventID    string    `bson:"event_id"`
	EventType  string    `bson:"event_type"`
	Payload    []byte    `bson:"payload"`
	ReceivedAt time.Time `bson:"received_at"`
}

type EventRepo struct {
	events *mongo.Collection
}

func NewEventRepo(db *mongo.Database) *EventRepo {
	return &EventRepo{events: db.Collection("provider_events")}
}

// InsertOnce stores the event and reports whether this delivery is the first.
func (r *EventRepo) InsertOnce(ctx context.Context, provider, eventID, eventType string, payload []byte) (bool, error) {
	_, err := r.events.InsertOne(ctx, ProviderEvent{
		ID:         uuid.NewString(),
		Provider:   provider,
		EventID:    eventID,
		EventType:  eventType,
		Payload:    payload,
		ReceivedAt: time.Now().UTC(),
	})
	if store.IsDup(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
