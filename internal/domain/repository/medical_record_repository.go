package repository

import (
	"careconnect-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByIDAndUser(db *gorm.DB, id, userID int) (*entity.MedicalRecord, error)
	FindActiveByUser(db *gorm.DB, userID int) ([]entity.MedicalRecord, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	// HardDelete removes the row permanently. Callers must only pass
	// archived records; the purge rule lives in the usecase.
	HardDelete(db *gorm.DB, id int) (int64, error)
}
