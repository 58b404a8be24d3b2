package dto

import "time"

type CreateExperienceRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=100"`
	Organization string `json:"organization" validate:"required,min=2,max=100"`
	StartYear    int    `json:"start_year" validate:"required,gte=1950,lte=2100"`
	EndYear      *int   `json:"end_year" validate:"omitempty,gte=1950,lte=2100"`
	Description  string `json:"description"`
}

type UpdateExperienceRequest struct {
	Title        string `json:"title" validate:"omitempty,min=2,max=100"`
	Organization string `json:"organization" validate:"omitempty,min=2,max=100"`
	StartYear    int    `json:"start_year" validate:"omitempty,gte=1950,lte=2100"`
	EndYear      *int   `json:"end_year" validate:"omitempty,gte=1950,lte=2100"`
	Description  string `json:"description"`
}

type ExperienceResponse struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	StartYear    int    `json:"start_year"`
	EndYear      *int   `json:"end_year,omitempty"`
	Description  string `json:"description,omitempty"`
}

type CreatePrescriptionRequest struct {
	UserID       int    `json:"user_id" validate:"required,gte=1"`
	Medication   string `json:"medication" validate:"required,min=2,max=100"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type UpdatePrescriptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active expired cancelled"`
}

type PrescriptionResponse struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	PatientName  string    `json:"patient_name,omitempty"`
	Medication   string    `json:"medication"`
	Dosage       string    `json:"dosage,omitempty"`
	Frequency    string    `json:"frequency,omitempty"`
	Duration     string    `json:"duration,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	IssuedDate   string    `json:"issued_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateReferralRequest struct {
	UserID     int    `json:"user_id" validate:"required,gte=1"`
	Specialist string `json:"specialist" validate:"required,min=2,max=100"`
	Facility   string `json:"facility"`
	Reason     string `json:"reason" validate:"required,min=5"`
	Urgency    string `json:"urgency" validate:"omitempty,oneof=routine urgent emergency"`
}

type UpdateReferralStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted completed"`
}

type ReferralResponse struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	PatientName  string    `json:"patient_name,omitempty"`
	Specialist   string    `json:"specialist"`
	Facility     string    `json:"facility,omitempty"`
	Reason       string    `json:"reason"`
	Urgency      string    `json:"urgency"`
	ReferralDate string    `json:"referral_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
