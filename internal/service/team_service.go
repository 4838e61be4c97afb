package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/rs/zerolog"
)

// teamService is the concrete implementation of TeamService
type teamService struct {
	team repository.TeamMemberRepository
	log  zerolog.Logger
	// mu serializes read-modify-write sequences against the grant
	// snapshot; the store itself only serializes individual puts.
	mu sync.Mutex
}

// newTeamService creates a new TeamService
func newTeamService(repos *repository.Repositories, log zerolog.Logger) *teamService {
	return &teamService{
		team: repos.TeamMember,
		log:  log.With().Str("service", "team").Logger(),
	}
}

// AddMember grants a role on an event. A prior grant for the same
// (user, event) pair is replaced, never merged.
func (s *teamService) AddMember(ctx context.Context, userID, eventID string, role models.EventRole) (*models.TeamMember, error) {
	if userID == "" || eventID == "" {
		return nil, &ValidationError{Message: "user_id and event_id are required"}
	}
	if !models.ValidEventRoles[role] {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid role %q, must be one of: owner, assistant, observer", role)}
	}

	member := &models.TeamMember{
		UserID:    userID,
		EventID:   eventID,
		Role:      role,
		GrantedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.team.Upsert(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("event_id", eventID).
		Str("role", string(role)).
		Msg("Team member granted")

	return member, nil
}

// RemoveMember revokes the grant for the (user, event) pair. Revoking an
// absent grant is a no-op.
func (s *teamService) RemoveMember(ctx context.Context, userID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.team.Remove(ctx, userID, eventID); err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("event_id", eventID).
		Msg("Team member removed")

	return nil
}

// Members returns all grants for an event, order not significant
func (s *teamService) Members(ctx context.Context, eventID string) ([]*models.TeamMember, error) {
	return s.team.ListByEvent(ctx, eventID)
}
