package repository

import (
	"errors"

	"careconnect-backend/internal/domain/entity"
	domainRepo "careconnect-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAvailableByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ? AND is_available = ?", id, true).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByLicenseNumber(db *gorm.DB, license string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("license_number = ?", license).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAllAvailable(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("is_available = ?", true).Order("name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("User", "Availabilities", "Appointments", "Experiences").Save(doctor).Error
}

type nurseRepository struct{}

func NewNurseRepository() domainRepo.NurseRepository {
	return &nurseRepository{}
}

func (r *nurseRepository) Create(db *gorm.DB, nurse *entity.Nurse) error {
	return db.Create(nurse).Error
}

func (r *nurseRepository) FindByUserID(db *gorm.DB, userID int) (*entity.Nurse, error) {
	var nurse entity.Nurse
	err := db.Where("user_id = ?", userID).First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}

func (r *nurseRepository) FindOnDuty(db *gorm.DB) ([]entity.Nurse, error) {
	var nurses []entity.Nurse
	err := db.Where("is_on_duty = ?", true).Order("name ASC").Find(&nurses).Error
	if err != nil {
		return nil, err
	}
	return nurses, nil
}
