package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/service"
)

func TestEventService_CreateGrantsOwner(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	event, err := services.Event.Create(ctx, &service.CreateEventRequest{
		Name:      "Copa Colegial",
		CreatorID: "user-1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if event.ID == "" {
		t.Fatal("Expected a fresh event id")
	}
	if event.AdminStatus != models.AdminStatusRascunho {
		t.Errorf("Expected default RASCUNHO, got %s", event.AdminStatus)
	}

	// The creator received the only automatic grant in the system
	member, err := repos.TeamMember.GetByUserAndEvent(ctx, "user-1", event.ID)
	if err != nil {
		t.Fatalf("GetByUserAndEvent failed: %v", err)
	}
	if member == nil || member.Role != models.EventRoleOwner {
		t.Errorf("Expected owner grant for creator, got %+v", member)
	}
}

func TestEventService_CreateValidation(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	if _, err := services.Event.Create(ctx, &service.CreateEventRequest{CreatorID: "user-1"}); !service.IsValidation(err) {
		t.Errorf("Expected validation error for missing name, got %v", err)
	}
	if _, err := services.Event.Create(ctx, &service.CreateEventRequest{Name: "X"}); !service.IsValidation(err) {
		t.Errorf("Expected validation error for missing creator, got %v", err)
	}
	if _, err := services.Event.Create(ctx, &service.CreateEventRequest{
		Name: "X", CreatorID: "user-1", AdminStatus: "INVENTADO",
	}); !service.IsValidation(err) {
		t.Errorf("Expected validation error for unknown admin status, got %v", err)
	}

	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	if _, err := services.Event.Create(ctx, &service.CreateEventRequest{
		Name: "X", CreatorID: "user-1", StartDate: &start, EndDate: &end,
	}); !service.IsValidation(err) {
		t.Errorf("Expected validation error for inverted date range, got %v", err)
	}
}

func TestEventService_Lifecycle(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	start := time.Now().Add(-24 * time.Hour)
	end := time.Now().Add(24 * time.Hour)
	event, err := services.Event.Create(ctx, &service.CreateEventRequest{
		Name:        "Campeonato",
		CreatorID:   "user-1",
		AdminStatus: string(models.AdminStatusPublicado),
		StartDate:   &start,
		EndDate:     &end,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	lc, err := services.Event.Lifecycle(ctx, event.ID)
	if err != nil {
		t.Fatalf("Lifecycle failed: %v", err)
	}
	if lc.TimeStatus != models.TimeStatusAtivo {
		t.Errorf("Expected ATIVO, got %s", lc.TimeStatus)
	}
	if lc.Color != "green" {
		t.Errorf("Expected green, got %s", lc.Color)
	}
	if !lc.Editable {
		t.Error("Expected PUBLICADO event to be editable")
	}
}

func TestEventService_LifecycleNoDates(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	event, err := services.Event.Create(ctx, &service.CreateEventRequest{
		Name:      "Sem Datas",
		CreatorID: "user-1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	lc, err := services.Event.Lifecycle(ctx, event.ID)
	if err != nil {
		t.Fatalf("Lifecycle failed: %v", err)
	}
	if lc.TimeStatus != models.TimeStatusAgendado {
		t.Errorf("Expected AGENDADO without dates, got %s", lc.TimeStatus)
	}
	if lc.Color != "gray" {
		t.Errorf("Expected gray for AGENDADO/RASCUNHO, got %s", lc.Color)
	}
}

func TestEventService_LifecycleUnknownEvent(t *testing.T) {
	services, _ := setupServices(t)

	_, err := services.Event.Lifecycle(context.Background(), "ghost")
	if !service.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestEventService_SetModalities(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	event, err := services.Event.Create(ctx, &service.CreateEventRequest{Name: "X", CreatorID: "user-1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := services.Event.SetModalities(ctx, event.ID, []string{"m1", "m1", "m2"}); err != nil {
		t.Fatalf("SetModalities failed: %v", err)
	}

	assoc, err := repos.EventModalities.GetByEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetByEvent failed: %v", err)
	}
	if assoc == nil || len(assoc.ModalityIDs) != 2 {
		t.Errorf("Expected de-duplicated set of 2, got %+v", assoc)
	}

	if err := services.Event.SetModalities(ctx, "ghost", []string{"m1"}); !service.IsNotFound(err) {
		t.Errorf("Expected not found for unknown event, got %v", err)
	}
}

func TestEventService_Counts(t *testing.T) {
	services, repos := setupServices(t)
	ctx := context.Background()

	seedUser(t, repos, &models.User{ID: "user-1", Name: "User", Role: models.RoleProducer})
	if _, err := services.Event.Create(ctx, &service.CreateEventRequest{Name: "X", CreatorID: "user-1"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	counts, err := services.Event.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts["events"] != 1 {
		t.Errorf("Expected 1 event, got %d", counts["events"])
	}
	if counts["users"] != 1 {
		t.Errorf("Expected 1 user, got %d", counts["users"])
	}
	if counts["team_members"] != 1 {
		t.Errorf("Expected 1 grant, got %d", counts["team_members"])
	}
}
