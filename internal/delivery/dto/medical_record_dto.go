package dto

import "time"

type CreateMedicalRecordRequest struct {
	Type          string `json:"type" validate:"required,oneof=allergy medication condition"`
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Description   string `json:"description"`
	Severity      string `json:"severity"`
	DiagnosedDate string `json:"diagnosed_date"`
}

type UpdateMedicalRecordRequest struct {
	Name          string `json:"name" validate:"omitempty,min=2,max=100"`
	Description   string `json:"description"`
	Severity      string `json:"severity"`
	DiagnosedDate string `json:"diagnosed_date"`
}

type MedicalRecordResponse struct {
	ID            int        `json:"id"`
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Severity      string     `json:"severity,omitempty"`
	DiagnosedDate *time.Time `json:"diagnosed_date,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MedicalRecordsResponse groups active entries the way the profile
// screen renders them.
type MedicalRecordsResponse struct {
	Allergies   []MedicalRecordResponse `json:"allergies"`
	Medications []MedicalRecordResponse `json:"medications"`
	Conditions  []MedicalRecordResponse `json:"conditions"`
}
