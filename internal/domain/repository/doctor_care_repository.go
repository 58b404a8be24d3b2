package repository

import (
	"careconnect-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ExperienceRepository interface {
	Create(db *gorm.DB, exp *entity.ProfessionalExperience) error
	FindByIDAndDoctor(db *gorm.DB, id, doctorID int) (*entity.ProfessionalExperience, error)
	FindByDoctor(db *gorm.DB, doctorID int) ([]entity.ProfessionalExperience, error)
	Update(db *gorm.DB, exp *entity.ProfessionalExperience) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type PrescriptionRepository interface {
	Create(db *gorm.DB, p *entity.Prescription) error
	FindByIDAndDoctor(db *gorm.DB, id, doctorID int) (*entity.Prescription, error)
	FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Prescription, error)
	Update(db *gorm.DB, p *entity.Prescription) error
}

type ReferralRepository interface {
	Create(db *gorm.DB, r *entity.Referral) error
	FindByIDAndDoctor(db *gorm.DB, id, doctorID int) (*entity.Referral, error)
	FindByDoctor(db *gorm.DB, doctorID int) ([]entity.Referral, error)
	Update(db *gorm.DB, r *entity.Referral) error
}
