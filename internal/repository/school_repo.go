package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// schoolRepo is the concrete implementation of SchoolRepository
type schoolRepo struct {
	cs store.CollectionStore
}

// NewSchoolRepo creates a new school repository
func NewSchoolRepo(cs store.CollectionStore) SchoolRepository {
	return &schoolRepo{cs: cs}
}

// Create appends a new school to the collection
func (r *schoolRepo) Create(ctx context.Context, school *models.School) error {
	schools, err := loadSnapshot[*models.School](ctx, r.cs, store.KeySchools)
	if err != nil {
		return err
	}
	for _, s := range schools {
		if s.ID == school.ID {
			return fmt.Errorf("school %s already exists", school.ID)
		}
	}
	schools = append(schools, school)
	return saveSnapshot(ctx, r.cs, store.KeySchools, schools)
}

// Update replaces the stored school with the same ID
func (r *schoolRepo) Update(ctx context.Context, school *models.School) error {
	schools, err := loadSnapshot[*models.School](ctx, r.cs, store.KeySchools)
	if err != nil {
		return err
	}
	for i, s := range schools {
		if s.ID == school.ID {
			school.UpdatedAt = time.Now()
			schools[i] = school
			return saveSnapshot(ctx, r.cs, store.KeySchools, schools)
		}
	}
	return fmt.Errorf("school %s does not exist", school.ID)
}

// GetByID retrieves a school by ID, nil when absent
func (r *schoolRepo) GetByID(ctx context.Context, id string) (*models.School, error) {
	schools, err := loadSnapshot[*models.School](ctx, r.cs, store.KeySchools)
	if err != nil {
		return nil, err
	}
	for _, s := range schools {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// Count returns the total number of schools
func (r *schoolRepo) Count(ctx context.Context) (int, error) {
	schools, err := loadSnapshot[*models.School](ctx, r.cs, store.KeySchools)
	if err != nil {
		return 0, err
	}
	return len(schools), nil
}
