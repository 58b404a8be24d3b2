package dto

type UpdateProfileRequest struct {
	FullName     string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Department   string `json:"department"`
	Major        string `json:"major"`
	AcademicYear string `json:"academic_year"`
	YearLevel    string `json:"year_level"`
	Phone        string `json:"phone"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"date_of_birth"`
}

type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type EmergencyContactResponse struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
}

type DoctorProfileBlock struct {
	DoctorID      int    `json:"doctor_id"`
	LicenseNumber string `json:"license_number"`
	Specialty     string `json:"specialty"`
	Avatar        string `json:"avatar,omitempty"`
	Rating        string `json:"rating"`
	ReviewsCount  int    `json:"reviews_count"`
	IsAvailable   bool   `json:"is_available"`
}

type ProfileResponse struct {
	User             *UserResponse             `json:"user"`
	EmergencyContact *EmergencyContactResponse `json:"emergency_contact,omitempty"`
	DoctorProfile    *DoctorProfileBlock       `json:"doctor_profile,omitempty"`
}
