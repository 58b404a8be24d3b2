package dto

type DoctorResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	Avatar       string `json:"avatar,omitempty"`
	Rating       string `json:"rating"`
	ReviewsCount int    `json:"reviews_count"`
	IsAvailable  bool   `json:"is_available"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type CreateAvailabilityRequest struct {
	DayOfWeek           int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime           string `json:"start_time" validate:"required"`
	EndTime             string `json:"end_time" validate:"required"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"omitempty,gte=5,lte=240"`
}

type UpdateAvailabilityRequest struct {
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"omitempty,gte=5,lte=240"`
	IsActive            *bool  `json:"is_active"`
}

type AvailabilityResponse struct {
	ID                  int    `json:"id"`
	DayOfWeek           int    `json:"day_of_week"`
	DayName             string `json:"day_name"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	IsActive            bool   `json:"is_active"`
}

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailableSlotsResponse struct {
	DoctorID            int           `json:"doctor_id"`
	DoctorName          string        `json:"doctor_name"`
	Date                string        `json:"date"`
	Available           []string      `json:"available"`
	Booked              []string      `json:"booked"`
	WorkingHours        *WorkingHours `json:"working_hours,omitempty"`
	SlotDurationMinutes int           `json:"slot_duration_minutes,omitempty"`
	Message             string        `json:"message,omitempty"`
}

type AvailabilitySummaryDay struct {
	DayOfWeek    int    `json:"day_of_week"`
	DayName      string `json:"day_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotCapacity int    `json:"slot_capacity"`
}

type AvailabilitySummaryResponse struct {
	DoctorID   int                      `json:"doctor_id"`
	DoctorName string                   `json:"doctor_name"`
	Days       []AvailabilitySummaryDay `json:"days"`
}
