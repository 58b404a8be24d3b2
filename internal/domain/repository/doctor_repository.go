package repository

import (
	"careconnect-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindAvailableByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID int) (*entity.Doctor, error)
	FindByLicenseNumber(db *gorm.DB, license string) (*entity.Doctor, error)
	FindAllAvailable(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}

type NurseRepository interface {
	Create(db *gorm.DB, nurse *entity.Nurse) error
	FindByUserID(db *gorm.DB, userID int) (*entity.Nurse, error)
	FindOnDuty(db *gorm.DB) ([]entity.Nurse, error)
}
