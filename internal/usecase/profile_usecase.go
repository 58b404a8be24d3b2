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

var ErrUserNotFound = errors.New("user not found")

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UpsertEmergencyContact(ctx context.Context, req *dto.EmergencyContactRequest) (*dto.EmergencyContactResponse, error)
}

type profileUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	contactRepo repository.EmergencyContactRepository
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	contactRepo repository.EmergencyContactRepository,
) ProfileUsecase {
	return &profileUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		contactRepo: contactRepo,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := &dto.ProfileResponse{
		User: converter.UserToResponse(user),
	}

	contact, err := u.contactRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to load emergency contact for user %d: %+v", userID, err)
		return nil, err
	}
	resp.EmergencyContact = converter.EmergencyContactToResponse(contact)

	if user.Role == entity.RoleDoctor {
		doctor, err := u.doctorRepo.FindByUserID(db, userID)
		if err != nil {
			u.log.Warnf("Failed to load doctor row for user %d: %+v", userID, err)
			return nil, err
		}
		resp.DoctorProfile = converter.DoctorToProfileBlock(doctor)
	}

	return resp, nil
}

// UpdateProfile applies partial updates: empty fields leave the stored
// value untouched. A full-name change re-derives the institutional
// email (with collision suffixing) and keeps a linked doctor row in sync.
func (u *profileUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Department != "" {
		if user.Role == entity.RoleStudent && !entity.IsValidDepartment(req.Department) {
			return nil, ErrInvalidDepartment
		}
		user.Department = req.Department
	}
	if req.Major != "" {
		user.Major = req.Major
	}
	if req.AcademicYear != "" {
		user.AcademicYear = req.AcademicYear
	}
	if req.YearLevel != "" {
		user.YearLevel = req.YearLevel
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		user.DateOfBirth = &dob
	}

	nameChanged := req.FullName != "" && req.FullName != user.FullName
	if nameChanged {
		user.FullName = req.FullName

		var lookupErr error
		user.Email = DeriveEmail(req.FullName, func(candidate string) bool {
			existing, err := u.userRepo.FindByEmail(tx, candidate)
			if err != nil {
				lookupErr = err
				return false
			}
			return existing != nil && existing.ID != userID
		})
		if lookupErr != nil {
			return nil, lookupErr
		}
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user %d: %+v", userID, err)
		return nil, err
	}

	if nameChanged && user.Role == entity.RoleDoctor {
		doctor, err := u.doctorRepo.FindByUserID(tx, userID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			doctor.Name = user.FullName
			doctor.Email = user.Email
			doctor.Avatar = avatarInitials(user.FullName)
			if err := u.doctorRepo.Update(tx, doctor); err != nil {
				u.log.Warnf("Failed to sync doctor row for user %d: %+v", userID, err)
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit profile update: %+v", err)
		return nil, err
	}

	return u.GetProfile(ctx)
}

func (u *profileUsecase) UpsertEmergencyContact(ctx context.Context, req *dto.EmergencyContactRequest) (*dto.EmergencyContactResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	contact, err := u.contactRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to load emergency contact for user %d: %+v", userID, err)
		return nil, err
	}

	if contact == nil {
		contact = &entity.EmergencyContact{
			UserID:       userID,
			Name:         req.Name,
			Relationship: req.Relationship,
			Phone:        req.Phone,
			Email:        req.Email,
		}
		if err := u.contactRepo.Create(tx, contact); err != nil {
			u.log.Warnf("Failed to create emergency contact for user %d: %+v", userID, err)
			return nil, err
		}
	} else {
		contact.Name = req.Name
		contact.Relationship = req.Relationship
		contact.Phone = req.Phone
		contact.Email = req.Email
		if err := u.contactRepo.Update(tx, contact); err != nil {
			u.log.Warnf("Failed to update emergency contact for user %d: %+v", userID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.EmergencyContactToResponse(contact), nil
}
