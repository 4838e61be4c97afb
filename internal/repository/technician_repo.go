package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/store"
)

// technicianRepo is the concrete implementation of TechnicianRepository
type technicianRepo struct {
	cs store.CollectionStore
}

// NewTechnicianRepo creates a new technician repository
func NewTechnicianRepo(cs store.CollectionStore) TechnicianRepository {
	return &technicianRepo{cs: cs}
}

// Create appends a new school↔technician link
func (r *technicianRepo) Create(ctx context.Context, link *models.SchoolTechnician) error {
	links, err := loadSnapshot[*models.SchoolTechnician](ctx, r.cs, store.KeyTechnicians)
	if err != nil {
		return err
	}
	for _, l := range links {
		if l.ID == link.ID {
			return fmt.Errorf("technician link %s already exists", link.ID)
		}
	}
	links = append(links, link)
	return saveSnapshot(ctx, r.cs, store.KeyTechnicians, links)
}

// Update replaces the stored link with the same ID
func (r *technicianRepo) Update(ctx context.Context, link *models.SchoolTechnician) error {
	links, err := loadSnapshot[*models.SchoolTechnician](ctx, r.cs, store.KeyTechnicians)
	if err != nil {
		return err
	}
	for i, l := range links {
		if l.ID == link.ID {
			link.UpdatedAt = time.Now()
			links[i] = link
			return saveSnapshot(ctx, r.cs, store.KeyTechnicians, links)
		}
	}
	return fmt.Errorf("technician link %s does not exist", link.ID)
}

// GetByID retrieves a link by ID, nil when absent
func (r *technicianRepo) GetByID(ctx context.Context, id string) (*models.SchoolTechnician, error) {
	links, err := loadSnapshot[*models.SchoolTechnician](ctx, r.cs, store.KeyTechnicians)
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

// GetBySchoolAndUser retrieves the link for a (school, user) pair, nil
// when absent. At most one such link exists.
func (r *technicianRepo) GetBySchoolAndUser(ctx context.Context, schoolID, userID string) (*models.SchoolTechnician, error) {
	links, err := loadSnapshot[*models.SchoolTechnician](ctx, r.cs, store.KeyTechnicians)
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		if l.SchoolID == schoolID && l.UserID == userID {
			return l, nil
		}
	}
	return nil, nil
}

// Delete removes a link by ID. Deleting an absent link is a no-op.
func (r *technicianRepo) Delete(ctx context.Context, id string) error {
	links, err := loadSnapshot[*models.SchoolTechnician](ctx, r.cs, store.KeyTechnicians)
	if err != nil {
		return err
	}
	for i, l := range links {
		if l.ID == id {
			links = append(links[:i], links[i+1:]...)
			return saveSnapshot(ctx, r.cs, store.KeyTechnicians, links)
		}
	}
	return nil
}

// Count returns the total number of links
func (r *technicianRepo) Count(ctx context.Context) (int, error) {
	links, err := loadSnapshot[*models.SchoolTechnician](ctx, r.cs, store.KeyTechnicians)
	if err != nil {
		return 0, err
	}
	return len(links), nil
}
