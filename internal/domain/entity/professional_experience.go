package entity

import "time"

// ProfessionalExperience is a CV entry owned by a doctor.
type ProfessionalExperience struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int       `gorm:"not null;index" json:"doctor_id"`
	Title        string    `gorm:"type:varchar(100);not null" json:"title"`
	Organization string    `gorm:"type:varchar(100);not null" json:"organization"`
	StartYear    int       `gorm:"not null" json:"start_year"`
	EndYear      *int      `json:"end_year,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (ProfessionalExperience) TableName() string {
	return "professional_experiences"
}
