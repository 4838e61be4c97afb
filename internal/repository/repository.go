package repository

import (
	"context"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// SchoolRepository defines the interface for school data operations
type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	Update(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id string) (*models.School, error)
	Count(ctx context.Context) (int, error)
}

// TeamMemberRepository defines the interface for event-scoped role grants.
// The store holds at most one record per (userID, eventID) pair.
type TeamMemberRepository interface {
	Upsert(ctx context.Context, member *models.TeamMember) error
	Remove(ctx context.Context, userID, eventID string) error
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*models.TeamMember, error)
	ListByEvent(ctx context.Context, eventID string) ([]*models.TeamMember, error)
	Count(ctx context.Context) (int, error)
}

// EventModalitiesRepository defines the interface for event↔modality
// associations
type EventModalitiesRepository interface {
	Set(ctx context.Context, eventID string, modalityIDs []string) error
	GetByEvent(ctx context.Context, eventID string) (*models.EventModalities, error)
}

// TechnicianRepository defines the interface for school↔technician links.
// The store holds at most one link per (schoolID, userID) pair.
type TechnicianRepository interface {
	Create(ctx context.Context, link *models.SchoolTechnician) error
	Update(ctx context.Context, link *models.SchoolTechnician) error
	GetByID(ctx context.Context, id string) (*models.SchoolTechnician, error)
	GetBySchoolAndUser(ctx context.Context, schoolID, userID string) (*models.SchoolTechnician, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Event           EventRepository
	User            UserRepository
	School          SchoolRepository
	TeamMember      TeamMemberRepository
	EventModalities EventModalitiesRepository
	Technician      TechnicianRepository
}

// New creates all repositories over the given collection store
func New(cs store.CollectionStore) *Repositories {
	return &Repositories{
		Event:           NewEventRepo(cs),
		User:            NewUserRepo(cs),
		School:          NewSchoolRepo(cs),
		TeamMember:      NewTeamMemberRepo(cs),
		EventModalities: NewEventModalitiesRepo(cs),
		Technician:      NewTechnicianRepo(cs),
	}
}
