package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked consultation slot. Slot uniqueness per
// (doctor, date, time) for non-cancelled rows is enforced by a partial
// unique index created during migration, so two concurrent bookings of the
// same slot resolve at the storage layer rather than by pre-checking.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int               `gorm:"not null;index" json:"user_id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(10);not null" json:"appointment_time"`
	Type            string            `gorm:"type:varchar(50);default:'General Consultation'" json:"type"`
	Location        string            `gorm:"type:varchar(100)" json:"location,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'upcoming';index" json:"status"`
	CanReschedule   bool              `gorm:"not null;default:true" json:"can_reschedule"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsUpcoming checks if the appointment is still scheduled
func (a *Appointment) IsUpcoming() bool {
	return a.Status == AppointmentStatusUpcoming
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Cancel transitions the appointment to cancelled. There is no un-cancel.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
	a.CanReschedule = false
}
