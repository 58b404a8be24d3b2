package dto

import "time"

type CreateAppointmentRequest struct {
	DoctorID        int    `json:"doctor_id" validate:"required,gte=1"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Type            string `json:"type"`
	Notes           string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Type            string `json:"type"`
	Notes           string `json:"notes"`
}

type CompleteAppointmentRequest struct {
	Diagnosis string `json:"diagnosis"`
}

type AppointmentResponse struct {
	ID              int       `json:"id"`
	DoctorID        int       `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	Specialty       string    `json:"specialty,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Type            string    `json:"type"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CanReschedule   bool      `json:"can_reschedule"`
	HoursUntil      *float64  `json:"hours_until,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type VisitResponse struct {
	ID         int    `json:"id"`
	DoctorID   int    `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	VisitDate  string `json:"visit_date"`
	TimeStart  string `json:"time_start,omitempty"`
	TimeEnd    string `json:"time_end,omitempty"`
	Diagnosis  string `json:"diagnosis,omitempty"`
	Type       string `json:"type,omitempty"`
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status"`
}

type VisitStatistics struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type VisitListResponse struct {
	Visits     []VisitResponse `json:"visits"`
	Statistics VisitStatistics `json:"statistics"`
}
