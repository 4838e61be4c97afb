package repository

import (
	"context"
	"fmt"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	cs store.CollectionStore
}

// NewUserRepo creates a new user repository
func NewUserRepo(cs store.CollectionStore) UserRepository {
	return &userRepo{cs: cs}
}

// Create appends a new user to the collection
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	users, err := loadSnapshot[*models.User](ctx, r.cs, store.KeyUsers)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == user.ID {
			return fmt.Errorf("user %s already exists", user.ID)
		}
	}
	users = append(users, user)
	return saveSnapshot(ctx, r.cs, store.KeyUsers, users)
}

// GetByID retrieves a user by ID, nil when absent
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := loadSnapshot[*models.User](ctx, r.cs, store.KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	users, err := loadSnapshot[*models.User](ctx, r.cs, store.KeyUsers)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
