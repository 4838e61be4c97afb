package models

import (
	"time"
)

// AdminStatus is the manually set administrative lifecycle state of an event.
type AdminStatus string

const (
	AdminStatusRascunho  AdminStatus = "RASCUNHO"
	AdminStatusPublicado AdminStatus = "PUBLICADO"
	AdminStatusReaberto  AdminStatus = "REABERTO"
	AdminStatusSuspenso  AdminStatus = "SUSPENSO"
	AdminStatusCancelado AdminStatus = "CANCELADO"
	AdminStatusArquivado AdminStatus = "ARQUIVADO"
)

// TimeStatus is the temporal state of an event, derived from its date range
// at read time. It is never stored.
type TimeStatus string

const (
	TimeStatusAgendado  TimeStatus = "AGENDADO"
	TimeStatusAtivo     TimeStatus = "ATIVO"
	TimeStatusEncerrado TimeStatus = "ENCERRADO"
)

// ValidAdminStatuses defines allowed administrative statuses
var ValidAdminStatuses = map[AdminStatus]bool{
	AdminStatusRascunho:  true,
	AdminStatusPublicado: true,
	AdminStatusReaberto:  true,
	AdminStatusSuspenso:  true,
	AdminStatusCancelado: true,
	AdminStatusArquivado: true,
}

// Event represents a registrable event. StartDate and EndDate are optional;
// an event with either date missing has no determinable temporal state.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AdminStatus AdminStatus `json:"admin_status"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EventModalities maps an event to the set of modality ids it offers.
// Maintained independently per event.
type EventModalities struct {
	EventID     string   `json:"event_id"`
	ModalityIDs []string `json:"modality_ids"`
}
