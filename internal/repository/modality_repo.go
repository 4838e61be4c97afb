package repository

import (
	"context"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// eventModalitiesRepo is the concrete implementation of
// EventModalitiesRepository
type eventModalitiesRepo struct {
	cs store.CollectionStore
}

// NewEventModalitiesRepo creates a new event modalities repository
func NewEventModalitiesRepo(cs store.CollectionStore) EventModalitiesRepository {
	return &eventModalitiesRepo{cs: cs}
}

// Set replaces the modality set associated with an event
func (r *eventModalitiesRepo) Set(ctx context.Context, eventID string, modalityIDs []string) error {
	assocs, err := loadSnapshot[*models.EventModalities](ctx, r.cs, store.KeyEventModalities)
	if err != nil {
		return err
	}
	for _, a := range assocs {
		if a.EventID == eventID {
			a.ModalityIDs = modalityIDs
			return saveSnapshot(ctx, r.cs, store.KeyEventModalities, assocs)
		}
	}
	assocs = append(assocs, &models.EventModalities{EventID: eventID, ModalityIDs: modalityIDs})
	return saveSnapshot(ctx, r.cs, store.KeyEventModalities, assocs)
}

// GetByEvent retrieves the modality association for an event, nil when the
// event has none
func (r *eventModalitiesRepo) GetByEvent(ctx context.Context, eventID string) (*models.EventModalities, error) {
	assocs, err := loadSnapshot[*models.EventModalities](ctx, r.cs, store.KeyEventModalities)
	if err != nil {
		return nil, err
	}
	for _, a := range assocs {
		if a.EventID == eventID {
			return a, nil
		}
	}
	return nil, nil
}
