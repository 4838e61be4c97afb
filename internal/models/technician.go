package models

import (
	"time"
)

// SchoolTechnician links a technician user to a school with the set of
// modalities they may operate in. At most one active link exists per
// (SchoolID, UserID) pair.
type SchoolTechnician struct {
	ID                 string    `json:"id"`
	SchoolID           string    `json:"school_id"`
	UserID             string    `json:"user_id"`
	AllowedModalityIDs []string  `json:"allowed_modality_ids"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
