package usecase

import (
	"context"
	"errors"
	"time"

	"careconnect-backend/internal/converter"
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/delivery/http/middleware"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrInvalidRecordType     = errors.New("type must be one of allergy, medication, condition")
	ErrRecordNotArchived     = errors.New("only archived records can be permanently deleted")
	ErrRecordNotActive       = errors.New("record is not active")
	ErrRecordAlreadyActive   = errors.New("record is already active")
)

type MedicalRecordUsecase interface {
	GetMyRecords(ctx context.Context) (*dto.MedicalRecordsResponse, error)
	AddEntry(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	UpdateEntry(ctx context.Context, recordID int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	ArchiveEntry(ctx context.Context, recordID int) error
	RestoreEntry(ctx context.Context, recordID int) (*dto.MedicalRecordResponse, error)
	PurgeEntry(ctx context.Context, recordID int) error
}

type medicalRecordUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
	}
}

func (u *medicalRecordUsecase) GetMyRecords(ctx context.Context) (*dto.MedicalRecordsResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	records, err := u.recordRepo.FindActiveByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list medical records for user %d: %+v", userID, err)
		return nil, err
	}

	return converter.MedicalRecordsToGrouped(records), nil
}

func (u *medicalRecordUsecase) AddEntry(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !entity.IsValidMedicalRecordType(req.Type) {
		return nil, ErrInvalidRecordType
	}

	var diagnosed *time.Time
	if req.DiagnosedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DiagnosedDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		diagnosed = &parsed
	}

	record := &entity.MedicalRecord{
		UserID:        userID,
		Type:          req.Type,
		Name:          req.Name,
		Description:   req.Description,
		Severity:      req.Severity,
		DiagnosedDate: diagnosed,
		Status:        entity.MedicalRecordStatusActive,
	}

	if err := u.recordRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to create medical record for user %d: %+v", userID, err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) UpdateEntry(ctx context.Context, recordID int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByIDAndUser(db, recordID, userID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %d: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if record.Status != entity.MedicalRecordStatusActive {
		return nil, ErrRecordNotActive
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.Severity != "" {
		record.Severity = req.Severity
	}
	if req.DiagnosedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DiagnosedDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		record.DiagnosedDate = &parsed
	}

	if err := u.recordRepo.Update(db, record); err != nil {
		u.log.Warnf("Failed to update medical record %d: %+v", recordID, err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// ArchiveEntry is the reversible soft delete.
func (u *medicalRecordUsecase) ArchiveEntry(ctx context.Context, recordID int) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByIDAndUser(db, recordID, userID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}
	if record.Status == entity.MedicalRecordStatusArchived {
		return ErrRecordNotActive
	}

	record.Status = entity.MedicalRecordStatusArchived
	if err := u.recordRepo.Update(db, record); err != nil {
		u.log.Warnf("Failed to archive medical record %d: %+v", recordID, err)
		return err
	}
	return nil
}

func (u *medicalRecordUsecase) RestoreEntry(ctx context.Context, recordID int) (*dto.MedicalRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByIDAndUser(db, recordID, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if record.Status == entity.MedicalRecordStatusActive {
		return nil, ErrRecordAlreadyActive
	}

	record.Status = entity.MedicalRecordStatusActive
	if err := u.recordRepo.Update(db, record); err != nil {
		u.log.Warnf("Failed to restore medical record %d: %+v", recordID, err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// PurgeEntry removes an archived record permanently. Active records must
// be archived first so a stray delete can still be undone.
func (u *medicalRecordUsecase) PurgeEntry(ctx context.Context, recordID int) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByIDAndUser(db, recordID, userID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrMedicalRecordNotFound
	}
	if record.Status != entity.MedicalRecordStatusArchived {
		return ErrRecordNotArchived
	}

	affected, err := u.recordRepo.HardDelete(db, record.ID)
	if err != nil {
		u.log.Warnf("Failed to purge medical record %d: %+v", recordID, err)
		return err
	}
	if affected == 0 {
		return ErrMedicalRecordNotFound
	}

	u.log.Infof("Medical record purged: id=%d, user=%d", recordID, userID)
	return nil
}
