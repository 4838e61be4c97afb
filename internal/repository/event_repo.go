package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// eventRepo is the concrete implementation of EventRepository
type eventRepo struct {
	cs store.CollectionStore
}

// NewEventRepo creates a new event repository
func NewEventRepo(cs store.CollectionStore) EventRepository {
	return &eventRepo{cs: cs}
}

// Create appends a new event to the collection
func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	events, err := loadSnapshot[*models.Event](ctx, r.cs, store.KeyEvents)
	if err != nil {
		return err
	}
	for _, e := range events {
		if e.ID == event.ID {
			return fmt.Errorf("event %s already exists", event.ID)
		}
	}
	events = append(events, event)
	return saveSnapshot(ctx, r.cs, store.KeyEvents, events)
}

// Update replaces the stored event with the same ID
func (r *eventRepo) Update(ctx context.Context, event *models.Event) error {
	events, err := loadSnapshot[*models.Event](ctx, r.cs, store.KeyEvents)
	if err != nil {
		return err
	}
	for i, e := range events {
		if e.ID == event.ID {
			event.UpdatedAt = time.Now()
			events[i] = event
			return saveSnapshot(ctx, r.cs, store.KeyEvents, events)
		}
	}
	return fmt.Errorf("event %s does not exist", event.ID)
}

// GetByID retrieves an event by ID, nil when absent
func (r *eventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	events, err := loadSnapshot[*models.Event](ctx, r.cs, store.KeyEvents)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

// Count returns the total number of events
func (r *eventRepo) Count(ctx context.Context) (int, error) {
	events, err := loadSnapshot[*models.Event](ctx, r.cs, store.KeyEvents)
	if err != nil {
		return 0, err
	}
	return len(events), nil
}
