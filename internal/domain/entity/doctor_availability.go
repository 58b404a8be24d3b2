package entity

import "time"

// DoctorAvailability is a recurring weekly working window for a doctor.
// DayOfWeek uses the Monday=0 .. Sunday=6 convention. Start and end times are
// 12-hour wall-clock strings ("09:00 AM"); slot boundaries are derived from
// SlotDurationMinutes. At most one row per (doctor, weekday) — enforced by
// the composite unique index so bulk seeding can't bypass it.
type DoctorAvailability struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID            int       `gorm:"not null;uniqueIndex:idx_doctor_weekday" json:"doctor_id"`
	DayOfWeek           int       `gorm:"not null;uniqueIndex:idx_doctor_weekday" json:"day_of_week"`
	StartTime           string    `gorm:"type:varchar(10);not null" json:"start_time"`
	EndTime             string    `gorm:"type:varchar(10);not null" json:"end_time"`
	SlotDurationMinutes int       `gorm:"not null;default:30" json:"slot_duration_minutes"`
	IsActive            bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}
