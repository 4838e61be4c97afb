package models

import (
	"time"
)

// EventRole is an event-scoped role tier. Owner and assistant may manage
// the event; observer may only view.
type EventRole string

const (
	EventRoleOwner     EventRole = "owner"
	EventRoleAssistant EventRole = "assistant"
	EventRoleObserver  EventRole = "observer"
	// EventRoleNone is the zero result of a role lookup, never stored.
	EventRoleNone EventRole = ""
)

// ValidEventRoles defines allowed event-scoped roles
var ValidEventRoles = map[EventRole]bool{
	EventRoleOwner:     true,
	EventRoleAssistant: true,
	EventRoleObserver:  true,
}

// CanManage reports whether the role tier allows managing the event.
func (r EventRole) CanManage() bool {
	return r == EventRoleOwner || r == EventRoleAssistant
}

// TeamMember is an event-scoped role grant. At most one record exists per
// (UserID, EventID) pair; a new grant replaces the prior one.
type TeamMember struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Role      EventRole `json:"role"`
	GrantedAt time.Time `json:"granted_at"`
}
