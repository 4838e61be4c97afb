package lifecycle_test

import (
	"testing"
	"time"

	"github.com/event-registry-api/internal/lifecycle"
	"github.com/event-registry-api/internal/models"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestResolveTimeStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-48 * time.Hour)
	after := now.Add(48 * time.Hour)

	tests := []struct {
		name      string
		startDate *time.Time
		endDate   *time.Time
		want      models.TimeStatus
	}{
		{"now strictly between dates", datePtr(before), datePtr(after), models.TimeStatusAtivo},
		{"now strictly before start", datePtr(after), datePtr(after.Add(time.Hour)), models.TimeStatusAgendado},
		{"now strictly after end", datePtr(before.Add(-time.Hour)), datePtr(before), models.TimeStatusEncerrado},
		{"start date missing", nil, datePtr(after), models.TimeStatusAgendado},
		{"end date missing", datePtr(before), nil, models.TimeStatusAgendado},
		{"both dates missing", nil, nil, models.TimeStatusAgendado},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lifecycle.ResolveTimeStatus(tt.startDate, tt.endDate, now)
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestResolveTimeStatus_MissingDateIgnoresClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Whatever instant is used, a missing end date pins the status
	for _, now := range []time.Time{
		start.Add(-365 * 24 * time.Hour),
		start,
		start.Add(365 * 24 * time.Hour),
	} {
		got := lifecycle.ResolveTimeStatus(&start, nil, now)
		if got != models.TimeStatusAgendado {
			t.Errorf("Expected AGENDADO at %v, got %s", now, got)
		}
	}
}

func TestResolveTimeStatus_Boundaries(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 18, 0, 0, 0, time.UTC)

	// The range is inclusive at both ends
	if got := lifecycle.ResolveTimeStatus(&start, &end, start); got != models.TimeStatusAtivo {
		t.Errorf("Expected ATIVO at start instant, got %s", got)
	}
	if got := lifecycle.ResolveTimeStatus(&start, &end, end); got != models.TimeStatusAtivo {
		t.Errorf("Expected ATIVO at end instant, got %s", got)
	}
}
