package repository

import (
	"errors"

	"careconnect-backend/internal/domain/entity"
	domainRepo "careconnect-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByIDAndUser(db *gorm.DB, id, userID int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindActiveByUser(db *gorm.DB, userID int) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Where("user_id = ? AND status = ?", userID, entity.MedicalRecordStatusActive).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Omit("User").Save(record).Error
}

func (r *medicalRecordRepository) HardDelete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.MedicalRecord{})
	return result.RowsAffected, result.Error
}
