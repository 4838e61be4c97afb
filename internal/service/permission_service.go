package service

import (
	"context"
	"strings"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/rs/zerolog"
)

// permissionService is the concrete implementation of PermissionService
type permissionService struct {
	users repository.UserRepository
	team  repository.TeamMemberRepository
	log   zerolog.Logger
}

// newPermissionService creates a new PermissionService
func newPermissionService(repos *repository.Repositories, log zerolog.Logger) *permissionService {
	return &permissionService{
		users: repos.User,
		team:  repos.TeamMember,
		log:   log.With().Str("service", "permission").Logger(),
	}
}

// HasGlobalPermission resolves whether the user holds a global capability.
// An unknown user holds nothing.
func (s *permissionService) HasGlobalPermission(ctx context.Context, userID, permission string) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return resolveGlobalPermission(user, permission), nil
}

// resolveGlobalPermission applies the global capability rules in fixed
// order: admin, legacy capability set, school_admin prefix rule, producer
// substring rule.
func resolveGlobalPermission(user *models.User, permission string) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	if user.HasPermission(permission) {
		return true
	}
	if user.Role == models.RoleSchoolAdmin && strings.HasPrefix(permission, "gerir_") {
		return true
	}
	if user.Role == models.RoleProducer && strings.Contains(permission, "evento") {
		return true
	}
	return false
}

// GetEventRole resolves the user's role on an event. Admins own every
// event implicitly; the owner role is computed, never stored. For everyone
// else the stored grant decides, or none.
func (s *permissionService) GetEventRole(ctx context.Context, userID, eventID string) (models.EventRole, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.EventRoleNone, err
	}
	if user == nil {
		return models.EventRoleNone, nil
	}
	if user.Role == models.RoleAdmin {
		return models.EventRoleOwner, nil
	}
	member, err := s.team.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return models.EventRoleNone, err
	}
	if member == nil {
		return models.EventRoleNone, nil
	}
	return member.Role, nil
}

// CanManageEvent reports whether the user's resolved role on the event is
// a managing tier (owner or assistant)
func (s *permissionService) CanManageEvent(ctx context.Context, userID, eventID string) (bool, error) {
	role, err := s.GetEventRole(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	return role.CanManage(), nil
}
