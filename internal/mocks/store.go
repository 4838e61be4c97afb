package mocks

import (
	"context"
	"sync"
)

// CollectionStore is an in-memory implementation of store.CollectionStore
type CollectionStore struct {
	mu          sync.Mutex
	Collections map[string][]byte
	GetError    error
	PutError    error
	PutCalls    int
}

// NewCollectionStore creates an empty in-memory collection store
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		Collections: make(map[string][]byte),
	}
}

func (s *CollectionStore) GetCollection(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetError != nil {
		return nil, s.GetError
	}
	return s.Collections[key], nil
}

func (s *CollectionStore) PutCollection(ctx context.Context, key string, records []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PutCalls++
	if s.PutError != nil {
		return s.PutError
	}
	s.Collections[key] = records
	return nil
}
