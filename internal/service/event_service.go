package service

import (
	"context"
	"time"

	"github.com/event-registry-api/internal/lifecycle"
	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// eventService is the concrete implementation of EventService
type eventService struct {
	repos *repository.Repositories
	team  TeamService
	log   zerolog.Logger
	now   func() time.Time
}

// newEventService creates a new EventService
func newEventService(repos *repository.Repositories, team TeamService, log zerolog.Logger) *eventService {
	return &eventService{
		repos: repos,
		team:  team,
		log:   log.With().Str("service", "event").Logger(),
		now:   time.Now,
	}
}

// Create stores a new event and grants its creator the owner role. This
// is the only automatic grant; all other grants are explicit. The two
// writes are sequential, not atomic: a reader between them observes an
// event with no owner, and a grant failure is surfaced to the caller.
func (s *eventService) Create(ctx context.Context, req *CreateEventRequest) (*models.Event, error) {
	if req.Name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if req.CreatorID == "" {
		return nil, &ValidationError{Message: "creator_id is required"}
	}

	adminStatus := models.AdminStatus(req.AdminStatus)
	if adminStatus == "" {
		adminStatus = models.AdminStatusRascunho
	}
	if !models.ValidAdminStatuses[adminStatus] {
		return nil, &ValidationError{Message: "invalid admin_status", InvalidIDs: []string{req.AdminStatus}}
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, &ValidationError{Message: "end_date must not precede start_date"}
	}

	now := s.now()
	event := &models.Event{
		ID:          uuid.New().String(),
		Name:        req.Name,
		AdminStatus: adminStatus,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repos.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	if _, err := s.team.AddMember(ctx, req.CreatorID, event.ID, models.EventRoleOwner); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("event_id", event.ID).
		Str("creator_id", req.CreatorID).
		Str("admin_status", string(adminStatus)).
		Msg("Event created")

	return event, nil
}

// Lifecycle derives the event's combined status. The temporal component
// depends on the wall clock and is recomputed on every call.
func (s *eventService) Lifecycle(ctx context.Context, eventID string) (*EventLifecycle, error) {
	event, err := s.repos.Event.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, &NotFoundError{Kind: "event", ID: eventID}
	}

	timeStatus := lifecycle.ResolveTimeStatus(event.StartDate, event.EndDate, s.now())
	color := lifecycle.ResolveColor(string(timeStatus), string(event.AdminStatus))

	return &EventLifecycle{
		EventID:     event.ID,
		TimeStatus:  timeStatus,
		AdminStatus: event.AdminStatus,
		Color:       string(color),
		Editable:    lifecycle.IsEditable(string(event.AdminStatus)),
	}, nil
}

// SetModalities replaces the modality set an event offers
func (s *eventService) SetModalities(ctx context.Context, eventID string, modalityIDs []string) error {
	event, err := s.repos.Event.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return &NotFoundError{Kind: "event", ID: eventID}
	}

	if err := s.repos.EventModalities.Set(ctx, eventID, dedupe(modalityIDs)); err != nil {
		return err
	}

	s.log.Info().
		Str("event_id", eventID).
		Int("modalities", len(modalityIDs)).
		Msg("Event modalities updated")

	return nil
}

// Counts returns record counts per collection, for the metrics endpoint
func (s *eventService) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 5)
	for name, count := range map[string]func(context.Context) (int, error){
		"events":       s.repos.Event.Count,
		"users":        s.repos.User.Count,
		"schools":      s.repos.School.Count,
		"team_members": s.repos.TeamMember.Count,
		"technicians":  s.repos.Technician.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}

// dedupe removes duplicate ids, preserving first-seen order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
