package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/repository"
	"github.com/event-registry-api/internal/service"
)

// asValidation unwraps err into a typed validation error
func asValidation(err error, target **service.ValidationError) bool {
	return errors.As(err, target)
}

// seedSchoolWithEvents stores a school linked to the given events, each
// offering the listed modalities.
func seedSchoolWithEvents(t *testing.T, repos *repository.Repositories, schoolID string, modalitiesByEvent map[string][]string) {
	t.Helper()
	ctx := context.Background()

	school := &models.School{ID: schoolID, Name: "Escola " + schoolID}
	for eventID, modalityIDs := range modalitiesByEvent {
		school.EventIDs = append(school.EventIDs, eventID)
		event := &models.Event{ID: eventID, Name: eventID, AdminStatus: models.AdminStatusPublicado, CreatedAt: time.Now()}
		if err := repos.Event.Create(ctx, event); err != nil {
			t.Fatalf("seeding event %s failed: %v", eventID, err)
		}
		if err := repos.EventModalities.Set(ctx, eventID, modalityIDs); err != nil {
			t.Fatalf("seeding modalities for %s failed: %v", eventID, err)
		}
	}
	if err := repos.School.Create(ctx, school); err != nil {
		t.Fatalf("seeding school failed: %v", err)
	}
}

func TestTechnicianService_AddValidatesAgainstEventUnion(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	// S1 linked to E1 {m1, m2} and E2 {m3}
	seedSchoolWithEvents(t, repos, "school-1", map[string][]string{
		"event-1": {"m1", "m2"},
		"event-2": {"m3"},
	})

	// The union covers m1 and m3
	link, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m1", "m3"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if link.ID == "" {
		t.Error("Expected a fresh link id")
	}
	if !reflect.DeepEqual(link.AllowedModalityIDs, []string{"m1", "m3"}) {
		t.Errorf("Expected [m1 m3], got %v", link.AllowedModalityIDs)
	}

	// m9 is offered by no linked event; the error names it verbatim
	_, err = services.Technician.Add(ctx, "school-1", "user-2", []string{"m1", "m9"})
	var ve *service.ValidationError
	if !asValidation(err, &ve) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if !reflect.DeepEqual(ve.InvalidIDs, []string{"m9"}) {
		t.Errorf("Expected invalid ids [m9], got %v", ve.InvalidIDs)
	}
}

func TestTechnicianService_AddDuplicatePair(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	seedSchoolWithEvents(t, repos, "school-1", map[string][]string{
		"event-1": {"m1", "m2"},
	})

	if _, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m1"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Second link for the same pair is rejected, whatever the modalities
	_, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m2"})
	if !service.IsConflict(err) {
		t.Errorf("Expected conflict, got %v", err)
	}

	// A different user at the same school is fine
	if _, err := services.Technician.Add(ctx, "school-1", "user-2", []string{"m2"}); err != nil {
		t.Errorf("Expected success for distinct pair, got %v", err)
	}
}

func TestTechnicianService_AddEmptyModalitiesSkipsValidation(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	// No school record exists at all; an empty permission set needs no
	// cross-check, so the add still succeeds.
	link, err := services.Technician.Add(ctx, "school-ghost", "user-1", nil)
	if err != nil {
		t.Fatalf("Add with empty modalities failed: %v", err)
	}
	if len(link.AllowedModalityIDs) != 0 {
		t.Errorf("Expected empty modality set, got %v", link.AllowedModalityIDs)
	}
}

func TestTechnicianService_AddUnknownSchool(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	_, err := services.Technician.Add(ctx, "school-ghost", "user-1", []string{"m1"})
	if !service.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestTechnicianService_AddSchoolWithoutEvents(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	school := &models.School{ID: "school-1", Name: "Escola Isolada"}
	if err := repos.School.Create(ctx, school); err != nil {
		t.Fatalf("seeding school failed: %v", err)
	}

	_, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m1"})
	if !service.IsValidation(err) {
		t.Errorf("Expected validation error for school with no linked events, got %v", err)
	}
}

func TestTechnicianService_LegacyEventIDHonored(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	event := &models.Event{ID: "event-legacy", Name: "Legacy", AdminStatus: models.AdminStatusPublicado, CreatedAt: time.Now()}
	if err := repos.Event.Create(ctx, event); err != nil {
		t.Fatalf("seeding event failed: %v", err)
	}
	if err := repos.EventModalities.Set(ctx, "event-legacy", []string{"m7"}); err != nil {
		t.Fatalf("seeding modalities failed: %v", err)
	}
	school := &models.School{ID: "school-1", Name: "Escola Antiga", LegacyEventID: "event-legacy"}
	if err := repos.School.Create(ctx, school); err != nil {
		t.Fatalf("seeding school failed: %v", err)
	}

	if _, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m7"}); err != nil {
		t.Errorf("Expected legacy event link to be honored, got %v", err)
	}
}

func TestTechnicianService_UpdateSkipsCrossEventValidation(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	seedSchoolWithEvents(t, repos, "school-1", map[string][]string{
		"event-1": {"m1"},
	})

	link, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m1"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// m99 would never pass the create-time check; update overwrites the
	// set without re-running it.
	updated, err := services.Technician.UpdatePermissions(ctx, link.ID, []string{"m99"})
	if err != nil {
		t.Fatalf("UpdatePermissions failed: %v", err)
	}
	if !reflect.DeepEqual(updated.AllowedModalityIDs, []string{"m99"}) {
		t.Errorf("Expected overwritten set [m99], got %v", updated.AllowedModalityIDs)
	}

	_, err = services.Technician.UpdatePermissions(ctx, "link-ghost", []string{"m1"})
	if !service.IsNotFound(err) {
		t.Errorf("Expected not found for unknown link, got %v", err)
	}
}

func TestTechnicianService_Remove(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	seedSchoolWithEvents(t, repos, "school-1", map[string][]string{
		"event-1": {"m1"},
	})

	link, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m1"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := services.Technician.Remove(ctx, link.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := services.Technician.Remove(ctx, link.ID); err != nil {
		t.Errorf("Removing an absent link should be a no-op, got %v", err)
	}

	// The pair is free again after removal
	if _, err := services.Technician.Add(ctx, "school-1", "user-1", []string{"m1"}); err != nil {
		t.Errorf("Expected re-add after removal, got %v", err)
	}
}

func TestTechnicianService_LinkEvents(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	for _, id := range []string{"event-1", "event-2"} {
		if err := repos.Event.Create(ctx, &models.Event{ID: id, Name: id, AdminStatus: models.AdminStatusPublicado}); err != nil {
			t.Fatalf("seeding event failed: %v", err)
		}
	}
	school := &models.School{ID: "school-1", Name: "Escola Azul", LegacyEventID: "event-1"}
	if err := repos.School.Create(ctx, school); err != nil {
		t.Fatalf("seeding school failed: %v", err)
	}

	updated, err := services.Technician.LinkEvents(ctx, "school-1", []string{"event-2"})
	if err != nil {
		t.Fatalf("LinkEvents failed: %v", err)
	}

	// The legacy link is absorbed into the normalized list
	if !reflect.DeepEqual(updated.EventIDs, []string{"event-1", "event-2"}) {
		t.Errorf("Expected [event-1 event-2], got %v", updated.EventIDs)
	}
	if updated.LegacyEventID != "" {
		t.Errorf("Expected legacy field cleared, got %q", updated.LegacyEventID)
	}

	// Unknown events are rejected and named
	_, err = services.Technician.LinkEvents(ctx, "school-1", []string{"event-9"})
	var ve *service.ValidationError
	if !asValidation(err, &ve) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if !reflect.DeepEqual(ve.InvalidIDs, []string{"event-9"}) {
		t.Errorf("Expected invalid ids [event-9], got %v", ve.InvalidIDs)
	}

	_, err = services.Technician.LinkEvents(ctx, "school-ghost", []string{"event-1"})
	if !service.IsNotFound(err) {
		t.Errorf("Expected not found for unknown school, got %v", err)
	}
}
