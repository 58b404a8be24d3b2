package repository

import (
	"careconnect-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, availability *entity.DoctorAvailability) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorAvailability, error)
	FindActiveByDoctorAndDay(db *gorm.DB, doctorID, dayOfWeek int) (*entity.DoctorAvailability, error)
	FindActiveByDoctor(db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error)
	Update(db *gorm.DB, availability *entity.DoctorAvailability) error
	Delete(db *gorm.DB, id int) (int64, error)
}
