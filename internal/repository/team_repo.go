package repository

import (
	"context"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// teamKey identifies a role grant. Keying the in-memory working set on it
// makes "at most one record per (user, event) pair" structural instead of
// a filter-then-append convention.
type teamKey struct {
	userID  string
	eventID string
}

// teamMemberRepo is the concrete implementation of TeamMemberRepository
type teamMemberRepo struct {
	cs store.CollectionStore
}

// NewTeamMemberRepo creates a new team member repository
func NewTeamMemberRepo(cs store.CollectionStore) TeamMemberRepository {
	return &teamMemberRepo{cs: cs}
}

// load decodes the grant collection into a keyed map alongside the stored
// order, so saves keep the snapshot stable for unrelated records.
func (r *teamMemberRepo) load(ctx context.Context) ([]*models.TeamMember, map[teamKey]int, error) {
	members, err := loadSnapshot[*models.TeamMember](ctx, r.cs, store.KeyTeamMembers)
	if err != nil {
		return nil, nil, err
	}
	index := make(map[teamKey]int, len(members))
	for i, m := range members {
		index[teamKey{m.UserID, m.EventID}] = i
	}
	return members, index, nil
}

// Upsert replaces any existing grant for the (user, event) pair, then
// stores the new one. Last write wins; roles are never merged.
func (r *teamMemberRepo) Upsert(ctx context.Context, member *models.TeamMember) error {
	members, index, err := r.load(ctx)
	if err != nil {
		return err
	}
	if i, ok := index[teamKey{member.UserID, member.EventID}]; ok {
		members[i] = member
	} else {
		members = append(members, member)
	}
	return saveSnapshot(ctx, r.cs, store.KeyTeamMembers, members)
}

// Remove deletes the grant for the (user, event) pair. Removing an absent
// grant is a no-op, not an error.
func (r *teamMemberRepo) Remove(ctx context.Context, userID, eventID string) error {
	members, index, err := r.load(ctx)
	if err != nil {
		return err
	}
	i, ok := index[teamKey{userID, eventID}]
	if !ok {
		return nil
	}
	members = append(members[:i], members[i+1:]...)
	return saveSnapshot(ctx, r.cs, store.KeyTeamMembers, members)
}

// GetByUserAndEvent retrieves the grant for the pair, nil when absent
func (r *teamMemberRepo) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*models.TeamMember, error) {
	members, index, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if i, ok := index[teamKey{userID, eventID}]; ok {
		return members[i], nil
	}
	return nil, nil
}

// ListByEvent returns all grants for an event, order not significant
func (r *teamMemberRepo) ListByEvent(ctx context.Context, eventID string) ([]*models.TeamMember, error) {
	members, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var result []*models.TeamMember
	for _, m := range members {
		if m.EventID == eventID {
			result = append(result, m)
		}
	}
	return result, nil
}

// Count returns the total number of grants
func (r *teamMemberRepo) Count(ctx context.Context) (int, error) {
	members, _, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(members), nil
}
