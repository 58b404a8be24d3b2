package dto

import "time"

type CreateEmergencyRequest struct {
	Type        string   `json:"type"`
	Description string   `json:"description" validate:"required,min=5"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high critical"`
}

type EmergencyRequestResponse struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	UserName    string     `json:"user_name,omitempty"`
	UserPhone   string     `json:"user_phone,omitempty"`
	Type        string     `json:"type,omitempty"`
	Description string     `json:"description"`
	Location    string     `json:"location,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type EmergencyListResponse struct {
	Requests []EmergencyRequestResponse `json:"requests"`
	Total    int                        `json:"total"`
}

type NurseResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Station  string `json:"station,omitempty"`
	Shift    string `json:"shift,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsOnDuty bool   `json:"is_on_duty"`
}

type NurseListResponse struct {
	Nurses []NurseResponse `json:"nurses"`
	Total  int             `json:"total"`
}
