package repository

import (
	"errors"

	"careconnect-backend/internal/domain/entity"
	domainRepo "careconnect-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, availability *entity.DoctorAvailability) error {
	return db.Create(availability).Error
}

func (r *availabilityRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorAvailability, error) {
	var availability entity.DoctorAvailability
	err := db.Where("id = ?", id).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindActiveByDoctorAndDay(db *gorm.DB, doctorID, dayOfWeek int) (*entity.DoctorAvailability, error) {
	var availability entity.DoctorAvailability
	err := db.Where("doctor_id = ? AND day_of_week = ? AND is_active = ?", doctorID, dayOfWeek, true).
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindActiveByDoctor(db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.Where("doctor_id = ? AND is_active = ?", doctorID, true).
		Order("day_of_week ASC").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) Update(db *gorm.DB, availability *entity.DoctorAvailability) error {
	return db.Omit("Doctor").Save(availability).Error
}

func (r *availabilityRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DoctorAvailability{})
	return result.RowsAffected, result.Error
}
