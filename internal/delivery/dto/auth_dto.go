package dto

import "time"

type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Role           string `json:"role" validate:"omitempty,oneof=student doctor nurse admin"`
	StudentID      string `json:"student_id"`
	Institution    string `json:"institution"`
	Department     string `json:"department"`
	Major          string `json:"major"`
	AcademicYear   string `json:"academic_year"`
	YearLevel      string `json:"year_level"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	LicenseNumber  string `json:"license_number"`
	Specialization string `json:"specialization"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

type UserResponse struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	StudentID    string     `json:"student_id,omitempty"`
	Institution  string     `json:"institution,omitempty"`
	Department   string     `json:"department,omitempty"`
	Major        string     `json:"major,omitempty"`
	AcademicYear string     `json:"academic_year,omitempty"`
	YearLevel    string     `json:"year_level,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
}
