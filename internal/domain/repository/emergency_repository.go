package repository

import (
	"careconnect-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type EmergencyContactRepository interface {
	FindByUserID(db *gorm.DB, userID int) (*entity.EmergencyContact, error)
	Create(db *gorm.DB, contact *entity.EmergencyContact) error
	Update(db *gorm.DB, contact *entity.EmergencyContact) error
}

type EmergencyRequestRepository interface {
	Create(db *gorm.DB, request *entity.EmergencyRequest) error
	FindByID(db *gorm.DB, id int) (*entity.EmergencyRequest, error)
	FindActive(db *gorm.DB) ([]entity.EmergencyRequest, error)
	// ResolveIfActive stamps the resolved state only when the request is
	// still active. Returns affected rows; 0 means already resolved.
	ResolveIfActive(db *gorm.DB, id int) (int64, error)
}
