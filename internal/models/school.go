package models

import (
	"time"
)

// School represents a participating school. Newer records carry EventIDs;
// older records carry a single LegacyEventID. Both are honored.
type School struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	EventIDs      []string  `json:"event_ids,omitempty"`
	LegacyEventID string    `json:"event_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LinkedEventIDs merges EventIDs and the legacy single event id into one
// de-duplicated list, preserving first-seen order. This is the only place
// the legacy field is interpreted; every business rule works off the
// normalized result.
func (s *School) LinkedEventIDs() []string {
	seen := make(map[string]bool, len(s.EventIDs)+1)
	ids := make([]string, 0, len(s.EventIDs)+1)
	for _, id := range s.EventIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if s.LegacyEventID != "" && !seen[s.LegacyEventID] {
		ids = append(ids, s.LegacyEventID)
	}
	return ids
}
