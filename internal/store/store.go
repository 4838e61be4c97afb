// Package store provides the persisted collection store the repositories
// are built on. Each logical collection lives under its own key as a full
// replace-on-write JSON snapshot: every mutation reads the whole
// collection, modifies it in memory, and writes the whole collection back.
package store

import (
	"context"
)

// Collection keys. One key per logical collection.
const (
	KeyEvents          = "events"
	KeyUsers           = "users"
	KeySchools         = "schools"
	KeyTeamMembers     = "event_team_members"
	KeyEventModalities = "event_modalities"
	KeyTechnicians     = "school_technicians"
)

// CollectionStore is the generic persisted key-value collaborator. Get
// returns the stored JSON snapshot for a collection, or nil when the
// collection has never been written. Put replaces the snapshot.
type CollectionStore interface {
	GetCollection(ctx context.Context, key string) ([]byte, error)
	PutCollection(ctx context.Context, key string, records []byte) error
}
