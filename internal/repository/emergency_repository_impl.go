package repository

import (
	"errors"
	"time"

	"careconnect-backend/internal/domain/entity"
	domainRepo "careconnect-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type emergencyContactRepository struct{}

func NewEmergencyContactRepository() domainRepo.EmergencyContactRepository {
	return &emergencyContactRepository{}
}

func (r *emergencyContactRepository) FindByUserID(db *gorm.DB, userID int) (*entity.EmergencyContact, error) {
	var contact entity.EmergencyContact
	err := db.Where("user_id = ?", userID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *emergencyContactRepository) Create(db *gorm.DB, contact *entity.EmergencyContact) error {
	return db.Create(contact).Error
}

func (r *emergencyContactRepository) Update(db *gorm.DB, contact *entity.EmergencyContact) error {
	return db.Save(contact).Error
}

type emergencyRequestRepository struct{}

func NewEmergencyRequestRepository() domainRepo.EmergencyRequestRepository {
	return &emergencyRequestRepository{}
}

func (r *emergencyRequestRepository) Create(db *gorm.DB, request *entity.EmergencyRequest) error {
	return db.Create(request).Error
}

func (r *emergencyRequestRepository) FindByID(db *gorm.DB, id int) (*entity.EmergencyRequest, error) {
	var request entity.EmergencyRequest
	err := db.Preload("User").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *emergencyRequestRepository) FindActive(db *gorm.DB) ([]entity.EmergencyRequest, error) {
	var requests []entity.EmergencyRequest
	err := db.Preload("User").
		Where("status = ?", entity.EmergencyStatusActive).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ResolveIfActive atomically flips active -> resolved and stamps the time.
// 0 affected rows means the request was already resolved.
func (r *emergencyRequestRepository) ResolveIfActive(db *gorm.DB, id int) (int64, error) {
	now := time.Now().UTC()
	result := db.Model(&entity.EmergencyRequest{}).
		Where("id = ? AND status = ?", id, entity.EmergencyStatusActive).
		Updates(map[string]interface{}{
			"status":      entity.EmergencyStatusResolved,
			"resolved_at": now,
		})
	return result.RowsAffected, result.Error
}
