package entity

import (
	"time"
)

// User represents the centralized account table. Every actor (student,
// doctor, nurse, admin) authenticates through this table; role-specific
// data lives in the Doctor and Nurse tables.
type User struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	FullName     string     `gorm:"type:varchar(100);not null" json:"full_name"`
	StudentID    string     `gorm:"type:varchar(50);uniqueIndex" json:"student_id"`
	Institution  string     `gorm:"type:varchar(100)" json:"institution,omitempty"`
	Department   string     `gorm:"type:varchar(50)" json:"department,omitempty"`
	Major        string     `gorm:"type:varchar(100)" json:"major,omitempty"`
	AcademicYear string     `gorm:"type:varchar(20)" json:"academic_year,omitempty"`
	YearLevel    string     `gorm:"type:varchar(20)" json:"year_level,omitempty"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender       string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null;default:'student';index" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalRecords    []MedicalRecord    `gorm:"foreignKey:UserID" json:"medical_records,omitempty"`
	Appointments      []Appointment      `gorm:"foreignKey:UserID" json:"appointments,omitempty"`
	EmergencyRequests []EmergencyRequest `gorm:"foreignKey:UserID" json:"emergency_requests,omitempty"`
	EmergencyContact  *EmergencyContact  `gorm:"foreignKey:UserID" json:"emergency_contact,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RoleStudent = "student"
	RoleDoctor  = "doctor"
	RoleNurse   = "nurse"
	RoleAdmin   = "admin"
)

// Student departments recognized by the university.
var ValidDepartments = []string{"SSE", "SBA", "SSAH"}

// IsValidDepartment reports whether dept is a recognized school code.
func IsValidDepartment(dept string) bool {
	for _, d := range ValidDepartments {
		if d == dept {
			return true
		}
	}
	return false
}
