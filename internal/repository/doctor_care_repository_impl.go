package repository

import (
	"errors"

	"careconnect-backend/internal/domain/entity"
	domainRepo "careconnect-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type experienceRepository struct{}

func NewExperienceRepository() domainRepo.ExperienceRepository {
	return &experienceRepository{}
}

func (r *experienceRepository) Create(db *gorm.DB, exp *entity.ProfessionalExperience) error {
	return db.Create(exp).Error
}

func (r *experienceRepository) FindByIDAndDoctor(db *gorm.DB, id, doctorID int) (*entity.ProfessionalExperience, error) {
	var exp entity.ProfessionalExperience
	err := db.Where("id = ? AND doctor_id = ?", id, doctorID).First(&exp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepository) FindByDoctor(db *gorm.DB, doctorID int) ([]entity.ProfessionalExperience, error) {
	var exps []entity.ProfessionalExperience
	err := db.Where("doctor_id = ?", doctorID).Order("start_year DESC").Find(&exps).Error
	if err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *experienceRepository) Update(db *gorm.DB, exp *entity.ProfessionalExperience) error {
	return db.Omit("Doctor").Save(exp).Error
}

func (r *experienceRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ProfessionalExperience{})
	return result.RowsAffected, result.Error
}

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, p *entity.Prescription) error {
	return db.Create(p).Error
}

func (r *prescriptionRepository) FindByIDAndDoctor(db *gorm.DB, id, doctorID int) (*entity.Prescription, error) {
	var p entity.Prescription
	err := db.Where("id = ? AND doctor_id = ?", id, doctorID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *prescriptionRepository) FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("User").
		Where("doctor_id = ?", doctorID).
		Order("issued_date DESC, id DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, p *entity.Prescription) error {
	return db.Omit("Doctor", "User").Save(p).Error
}

type referralRepository struct{}

func NewReferralRepository() domainRepo.ReferralRepository {
	return &referralRepository{}
}

func (r *referralRepository) Create(db *gorm.DB, ref *entity.Referral) error {
	return db.Create(ref).Error
}

func (r *referralRepository) FindByIDAndDoctor(db *gorm.DB, id, doctorID int) (*entity.Referral, error) {
	var ref entity.Referral
	err := db.Where("id = ? AND doctor_id = ?", id, doctorID).First(&ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ref, nil
}

func (r *referralRepository) FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Referral, error) {
	var referrals []entity.Referral
	err := db.Preload("User").
		Where("doctor_id = ?", doctorID).
		Order("referral_date DESC, id DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

func (r *referralRepository) Update(db *gorm.DB, ref *entity.Referral) error {
	return db.Omit("Doctor", "User").Save(ref).Error
}
