package service

import (
	"context"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/rs/zerolog"
)

// PermissionService resolves what a user may do globally and on a
// specific event
type PermissionService interface {
	HasGlobalPermission(ctx context.Context, userID, permission string) (bool, error)
	GetEventRole(ctx context.Context, userID, eventID string) (models.EventRole, error)
	CanManageEvent(ctx context.Context, userID, eventID string) (bool, error)
}

// EventService manages events and their derived lifecycle state
type EventService interface {
	Create(ctx context.Context, req *CreateEventRequest) (*models.Event, error)
	Lifecycle(ctx context.Context, eventID string) (*EventLifecycle, error)
	SetModalities(ctx context.Context, eventID string, modalityIDs []string) error
	Counts(ctx context.Context) (map[string]int, error)
}

// TeamService manages event-scoped role grants
type TeamService interface {
	AddMember(ctx context.Context, userID, eventID string, role models.EventRole) (*models.TeamMember, error)
	RemoveMember(ctx context.Context, userID, eventID string) error
	Members(ctx context.Context, eventID string) ([]*models.TeamMember, error)
}

// TechnicianService manages school↔technician links and the school↔event
// associations they are validated against
type TechnicianService interface {
	Add(ctx context.Context, schoolID, userID string, modalityIDs []string) (*models.SchoolTechnician, error)
	UpdatePermissions(ctx context.Context, linkID string, modalityIDs []string) (*models.SchoolTechnician, error)
	Remove(ctx context.Context, linkID string) error
	LinkEvents(ctx context.Context, schoolID string, eventIDs []string) (*models.School, error)
}

// RegistryService registers the users and schools the policy services
// operate on
type RegistryService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	CreateSchool(ctx context.Context, school *models.School) (*models.School, error)
}

// CreateEventRequest carries the fields needed to create an event
type CreateEventRequest struct {
	Name        string     `json:"name"`
	CreatorID   string     `json:"creator_id"`
	AdminStatus string     `json:"admin_status,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// EventLifecycle is the UI-facing combined status of an event. TimeStatus
// is derived from the current wall clock at each call.
type EventLifecycle struct {
	EventID     string             `json:"event_id"`
	TimeStatus  models.TimeStatus  `json:"time_status"`
	AdminStatus models.AdminStatus `json:"admin_status"`
	Color       string             `json:"color"`
	Editable    bool               `json:"editable"`
}

// Services holds all service interfaces
type Services struct {
	Permission PermissionService
	Event      EventService
	Team       TeamService
	Technician TechnicianService
	Registry   RegistryService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	teamSvc := newTeamService(repos, log)
	return &Services{
		Permission: newPermissionService(repos, log),
		Event:      newEventService(repos, teamSvc, log),
		Team:       teamSvc,
		Technician: newTechnicianService(repos, log),
		Registry:   newRegistryService(repos, log),
	}
}
