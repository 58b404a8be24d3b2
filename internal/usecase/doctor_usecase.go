package usecase

import (
	"context"
	"errors"
	"time"

	"careconnect-backend/internal/converter"
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/domain/repository"
	"careconnect-backend/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrExperienceNotFound   = errors.New("experience entry not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrReferralNotFound     = errors.New("referral not found")
	ErrPatientNotFound      = errors.New("patient not found")
)

type DoctorUsecase interface {
	GetTodaysPatients(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetSchedule(ctx context.Context) (*dto.AppointmentListResponse, error)

	AddExperience(ctx context.Context, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error)
	ListExperience(ctx context.Context) ([]dto.ExperienceResponse, error)
	UpdateExperience(ctx context.Context, experienceID int, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error)
	DeleteExperience(ctx context.Context, experienceID int) error

	IssuePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	ListPrescriptions(ctx context.Context) ([]dto.PrescriptionResponse, error)
	UpdatePrescriptionStatus(ctx context.Context, prescriptionID int, req *dto.UpdatePrescriptionStatusRequest) (*dto.PrescriptionResponse, error)

	CreateReferral(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error)
	ListReferrals(ctx context.Context) ([]dto.ReferralResponse, error)
	UpdateReferralStatus(ctx context.Context, referralID int, req *dto.UpdateReferralStatusRequest) (*dto.ReferralResponse, error)
}

type doctorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	userRepo         repository.UserRepository
	appointmentRepo  repository.AppointmentRepository
	experienceRepo   repository.ExperienceRepository
	prescriptionRepo repository.PrescriptionRepository
	referralRepo     repository.ReferralRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	experienceRepo repository.ExperienceRepository,
	prescriptionRepo repository.PrescriptionRepository,
	referralRepo repository.ReferralRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		userRepo:         userRepo,
		appointmentRepo:  appointmentRepo,
		experienceRepo:   experienceRepo,
		prescriptionRepo: prescriptionRepo,
		referralRepo:     referralRepo,
	}
}

func (u *doctorUsecase) GetTodaysPatients(ctx context.Context) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	today := startOfDay(time.Now())
	appointments, err := u.appointmentRepo.FindByDoctorOnDate(db, doctor.ID, today, entity.AppointmentStatusUpcoming)
	if err != nil {
		u.log.Warnf("Failed to list today's patients for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *doctorUsecase) GetSchedule(ctx context.Context) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindUpcomingByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to load schedule for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *doctorUsecase) AddExperience(ctx context.Context, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	exp := &entity.ProfessionalExperience{
		DoctorID:     doctor.ID,
		Title:        req.Title,
		Organization: req.Organization,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
		Description:  req.Description,
	}

	if err := u.experienceRepo.Create(db, exp); err != nil {
		u.log.Warnf("Failed to add experience for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return converter.ExperienceToResponse(exp), nil
}

func (u *doctorUsecase) ListExperience(ctx context.Context) ([]dto.ExperienceResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	exps, err := u.experienceRepo.FindByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list experience for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return converter.ExperiencesToResponses(exps), nil
}

func (u *doctorUsecase) UpdateExperience(ctx context.Context, experienceID int, req *dto.UpdateExperienceRequest) (*dto.ExperienceResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	exp, err := u.experienceRepo.FindByIDAndDoctor(db, experienceID, doctor.ID)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, ErrExperienceNotFound
	}

	if req.Title != "" {
		exp.Title = req.Title
	}
	if req.Organization != "" {
		exp.Organization = req.Organization
	}
	if req.StartYear != 0 {
		exp.StartYear = req.StartYear
	}
	if req.EndYear != nil {
		exp.EndYear = req.EndYear
	}
	if req.Description != "" {
		exp.Description = req.Description
	}

	if err := u.experienceRepo.Update(db, exp); err != nil {
		u.log.Warnf("Failed to update experience %d: %+v", experienceID, err)
		return nil, err
	}

	return converter.ExperienceToResponse(exp), nil
}

func (u *doctorUsecase) DeleteExperience(ctx context.Context, experienceID int) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return err
	}

	exp, err := u.experienceRepo.FindByIDAndDoctor(db, experienceID, doctor.ID)
	if err != nil {
		return err
	}
	if exp == nil {
		return ErrExperienceNotFound
	}

	affected, err := u.experienceRepo.Delete(db, exp.ID)
	if err != nil {
		u.log.Warnf("Failed to delete experience %d: %+v", experienceID, err)
		return err
	}
	if affected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

func (u *doctorUsecase) IssuePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	patient, err := u.userRepo.FindByID(db, req.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		DoctorID:     doctor.ID,
		UserID:       patient.ID,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Duration:     req.Duration,
		Instructions: req.Instructions,
		IssuedDate:   startOfDay(time.Now()),
		Status:       entity.PrescriptionStatusActive,
	}

	if err := u.prescriptionRepo.Create(db, prescription); err != nil {
		u.log.Warnf("Failed to issue prescription for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	u.log.Infof("Prescription issued: id=%d, doctor=%d, patient=%d", prescription.ID, doctor.ID, patient.ID)
	prescription.User = *patient
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *doctorUsecase) ListPrescriptions(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *doctorUsecase) UpdatePrescriptionStatus(ctx context.Context, prescriptionID int, req *dto.UpdatePrescriptionStatusRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByIDAndDoctor(db, prescriptionID, doctor.ID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	prescription.Status = req.Status
	if err := u.prescriptionRepo.Update(db, prescription); err != nil {
		u.log.Warnf("Failed to update prescription %d: %+v", prescriptionID, err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *doctorUsecase) CreateReferral(ctx context.Context, req *dto.CreateReferralRequest) (*dto.ReferralResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	patient, err := u.userRepo.FindByID(db, req.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = "routine"
	}

	referral := &entity.Referral{
		DoctorID:     doctor.ID,
		UserID:       patient.ID,
		Specialist:   req.Specialist,
		Facility:     req.Facility,
		Reason:       req.Reason,
		Urgency:      urgency,
		ReferralDate: startOfDay(time.Now()),
		Status:       entity.ReferralStatusPending,
	}

	if err := u.referralRepo.Create(db, referral); err != nil {
		u.log.Warnf("Failed to create referral for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	u.log.Infof("Referral created: id=%d, doctor=%d, patient=%d", referral.ID, doctor.ID, patient.ID)
	referral.User = *patient
	return converter.ReferralToResponse(referral), nil
}

func (u *doctorUsecase) ListReferrals(ctx context.Context) ([]dto.ReferralResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	referrals, err := u.referralRepo.FindByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list referrals for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return converter.ReferralsToResponses(referrals), nil
}

func (u *doctorUsecase) UpdateReferralStatus(ctx context.Context, referralID int, req *dto.UpdateReferralStatusRequest) (*dto.ReferralResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.resolveDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	referral, err := u.referralRepo.FindByIDAndDoctor(db, referralID, doctor.ID)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}

	referral.Status = req.Status
	if err := u.referralRepo.Update(db, referral); err != nil {
		u.log.Warnf("Failed to update referral %d: %+v", referralID, err)
		return nil, err
	}

	return converter.ReferralToResponse(referral), nil
}

func (u *doctorUsecase) resolveDoctor(ctx context.Context, db *gorm.DB) (*entity.Doctor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor for user %d: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
