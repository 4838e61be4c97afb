// Package lifecycle derives an event's temporal status from its date range
// and resolves the display color and editability from the (temporal,
// administrative) status pair. All functions are pure; temporal status is
// time-dependent and must be recomputed on every read, never persisted.
package lifecycle

import (
	"time"

	"github.com/event-registry-api/internal/models"
)

// ResolveTimeStatus derives the temporal status of an event at the given
// instant. If either date is absent the status is AGENDADO by convention:
// without a full range there is no way to tell elapsed from active.
func ResolveTimeStatus(startDate, endDate *time.Time, now time.Time) models.TimeStatus {
	if startDate == nil || endDate == nil {
		return models.TimeStatusAgendado
	}
	if now.Before(*startDate) {
		return models.TimeStatusAgendado
	}
	if now.After(*endDate) {
		return models.TimeStatusEncerrado
	}
	return models.TimeStatusAtivo
}
