package entity

import "time"

// Prescription statuses
const (
	PrescriptionStatusActive    = "active"
	PrescriptionStatusExpired   = "expired"
	PrescriptionStatusCancelled = "cancelled"
)

// Prescription is issued by a doctor for a patient.
type Prescription struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int       `gorm:"not null;index" json:"doctor_id"`
	UserID       int       `gorm:"not null;index" json:"user_id"`
	Medication   string    `gorm:"type:varchar(100);not null" json:"medication"`
	Dosage       string    `gorm:"type:varchar(50)" json:"dosage,omitempty"`
	Frequency    string    `gorm:"type:varchar(50)" json:"frequency,omitempty"`
	Duration     string    `gorm:"type:varchar(50)" json:"duration,omitempty"`
	Instructions string    `gorm:"type:text" json:"instructions,omitempty"`
	IssuedDate   time.Time `gorm:"type:date;not null" json:"issued_date"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
