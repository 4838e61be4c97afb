package service

import (
	"context"
	"fmt"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// registryService is the concrete implementation of RegistryService
type registryService struct {
	users   repository.UserRepository
	schools repository.SchoolRepository
	log     zerolog.Logger
}

// newRegistryService creates a new RegistryService
func newRegistryService(repos *repository.Repositories, log zerolog.Logger) *registryService {
	return &registryService{
		users:   repos.User,
		schools: repos.School,
		log:     log.With().Str("service", "registry").Logger(),
	}
}

// CreateUser registers a new user
func (s *registryService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if !models.ValidRoles[user.Role] {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid role %q", user.Role)}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("User created")
	return user, nil
}

// CreateSchool registers a new school
func (s *registryService) CreateSchool(ctx context.Context, school *models.School) (*models.School, error) {
	if school.Name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if school.ID == "" {
		school.ID = uuid.New().String()
	}
	now := time.Now()
	school.CreatedAt = now
	school.UpdatedAt = now

	if err := s.schools.Create(ctx, school); err != nil {
		return nil, err
	}

	s.log.Info().Str("school_id", school.ID).Msg("School created")
	return school, nil
}
