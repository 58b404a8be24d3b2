package repository

import (
	"time"

	"careconnect-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByIDAndUser(db *gorm.DB, id, userID int) (*entity.Appointment, error)
	FindByUser(db *gorm.DB, userID int) ([]entity.Appointment, error)
	FindUpcomingByUser(db *gorm.DB, userID int, from time.Time) ([]entity.Appointment, error)
	FindBookedByDoctorAndDate(db *gorm.DB, doctorID int, date time.Time) ([]entity.Appointment, error)
	FindUpcomingByDoctor(db *gorm.DB, doctorID int) ([]entity.Appointment, error)
	FindByDoctorOnDate(db *gorm.DB, doctorID int, date time.Time, status entity.AppointmentStatus) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// CompleteIfUpcoming flips an upcoming appointment to completed.
	// Returns affected rows: 0 means it was not in the upcoming state,
	// which keeps the complete operation idempotent under races.
	CompleteIfUpcoming(db *gorm.DB, id int) (int64, error)
}

type VisitRepository interface {
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByUser(db *gorm.DB, userID int) ([]entity.Visit, error)
	FindRecentCompletedByUser(db *gorm.DB, userID, limit int) ([]entity.Visit, error)
}
