package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// technicianService is the concrete implementation of TechnicianService
type technicianService struct {
	schools     repository.SchoolRepository
	events      repository.EventRepository
	modalities  repository.EventModalitiesRepository
	technicians repository.TechnicianRepository
	log         zerolog.Logger
	// mu guards the check-then-write sequences (duplicate link check,
	// modality superset check) against concurrent writers.
	mu sync.Mutex
}

// newTechnicianService creates a new TechnicianService
func newTechnicianService(repos *repository.Repositories, log zerolog.Logger) *technicianService {
	return &technicianService{
		schools:     repos.School,
		events:      repos.Event,
		modalities:  repos.EventModalities,
		technicians: repos.Technician,
		log:         log.With().Str("service", "technician").Logger(),
	}
}

// Add links a technician to a school with an allowed-modality set. A
// non-empty set must be covered by the union of modalities offered by the
// school's linked events; an empty set needs no cross-check. A school may
// hold at most one active link per user.
func (s *technicianService) Add(ctx context.Context, schoolID, userID string, modalityIDs []string) (*models.SchoolTechnician, error) {
	if schoolID == "" || userID == "" {
		return nil, &ValidationError{Message: "school_id and user_id are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	modalityIDs = dedupe(modalityIDs)

	if len(modalityIDs) > 0 {
		if err := s.validateModalities(ctx, schoolID, modalityIDs); err != nil {
			return nil, err
		}
	}

	existing, err := s.technicians.GetBySchoolAndUser(ctx, schoolID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Message: fmt.Sprintf("user %s is already a technician of school %s", userID, schoolID)}
	}

	now := time.Now()
	link := &models.SchoolTechnician{
		ID:                 uuid.New().String(),
		SchoolID:           schoolID,
		UserID:             userID,
		AllowedModalityIDs: modalityIDs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.technicians.Create(ctx, link); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("link_id", link.ID).
		Str("school_id", schoolID).
		Str("user_id", userID).
		Int("modalities", len(modalityIDs)).
		Msg("Technician linked to school")

	return link, nil
}

// validateModalities checks the requested ids against the union of
// modalities offered by the school's linked events
func (s *technicianService) validateModalities(ctx context.Context, schoolID string, modalityIDs []string) error {
	school, err := s.schools.GetByID(ctx, schoolID)
	if err != nil {
		return err
	}
	if school == nil {
		return &NotFoundError{Kind: "school", ID: schoolID}
	}

	eventIDs := school.LinkedEventIDs()
	if len(eventIDs) == 0 {
		return &ValidationError{Message: "school has no linked events to validate modalities against"}
	}

	allowed := make(map[string]bool)
	for _, eventID := range eventIDs {
		assoc, err := s.modalities.GetByEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if assoc == nil {
			continue
		}
		for _, id := range assoc.ModalityIDs {
			allowed[id] = true
		}
	}

	var invalid []string
	for _, id := range modalityIDs {
		if !allowed[id] {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{
			Message:    "modalities not offered by the school's linked events",
			InvalidIDs: invalid,
		}
	}
	return nil
}

// UpdatePermissions overwrites the link's allowed-modality set. Unlike
// Add, the set is not re-checked against the school's linked events.
func (s *technicianService) UpdatePermissions(ctx context.Context, linkID string, modalityIDs []string) (*models.SchoolTechnician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, err := s.technicians.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, &NotFoundError{Kind: "technician link", ID: linkID}
	}

	link.AllowedModalityIDs = dedupe(modalityIDs)
	if err := s.technicians.Update(ctx, link); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("link_id", linkID).
		Int("modalities", len(link.AllowedModalityIDs)).
		Msg("Technician permissions updated")

	return link, nil
}

// Remove deletes the link. Removing an absent link is a no-op.
func (s *technicianService) Remove(ctx context.Context, linkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.technicians.Delete(ctx, linkID); err != nil {
		return err
	}

	s.log.Info().Str("link_id", linkID).Msg("Technician link removed")
	return nil
}

// LinkEvents merges the given event ids into the school's linked set.
// Every id must reference an existing event.
func (s *technicianService) LinkEvents(ctx context.Context, schoolID string, eventIDs []string) (*models.School, error) {
	if len(eventIDs) == 0 {
		return nil, &ValidationError{Message: "event_ids is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	school, err := s.schools.GetByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, &NotFoundError{Kind: "school", ID: schoolID}
	}

	var missing []string
	for _, id := range dedupe(eventIDs) {
		event, err := s.events.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if event == nil {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: "unknown events", InvalidIDs: missing}
	}

	// Merge into the normalized list; the legacy single-event field is
	// absorbed and cleared in the same write.
	school.EventIDs = dedupe(append(school.LinkedEventIDs(), eventIDs...))
	school.LegacyEventID = ""

	if err := s.schools.Update(ctx, school); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("school_id", schoolID).
		Int("linked_events", len(school.EventIDs)).
		Msg("School events linked")

	return school, nil
}
