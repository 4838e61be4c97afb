package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/event-registry-api/internal/store"
)

// loadSnapshot reads and decodes a whole collection. An absent collection
// decodes to an empty slice.
func loadSnapshot[T any](ctx context.Context, cs store.CollectionStore, key string) ([]T, error) {
	raw, err := cs.GetCollection(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return records, nil
}

// saveSnapshot encodes and replaces a whole collection.
func saveSnapshot[T any](ctx context.Context, cs store.CollectionStore, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	return cs.PutCollection(ctx, key, raw)
}
