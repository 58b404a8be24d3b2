package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careconnect-backend/internal/converter"
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/delivery/http/middleware"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/domain/repository"
	"careconnect-backend/internal/schedule"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrWeekdayTaken         = errors.New("an availability window already exists for this weekday")
	ErrInvalidWindow        = errors.New("start time must be before end time")
)

type AvailabilityUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetAvailableSlots(ctx context.Context, doctorID int, date string) (*dto.AvailableSlotsResponse, error)
	GetAvailabilitySummary(ctx context.Context, doctorID int) (*dto.AvailabilitySummaryResponse, error)
	ListMyAvailability(ctx context.Context) ([]dto.AvailabilityResponse, error)
	CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	UpdateAvailability(ctx context.Context, availabilityID int, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	DeleteAvailability(ctx context.Context, availabilityID int) error
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	availabilityRepo repository.AvailabilityRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
	}
}

func (u *availabilityUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllAvailable(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// GetAvailableSlots computes the bookable slots for a doctor on a date:
// the weekday's active window expanded into slot boundaries, minus the
// times already taken by non-cancelled appointments. The result is
// deterministic for a fixed database state.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID int, date string) (*dto.AvailableSlotsResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindAvailableByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	resp := &dto.AvailableSlotsResponse{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       day.Format("2006-01-02"),
		Available:  []string{},
		Booked:     []string{},
	}

	weekday := schedule.WeekdayIndex(day)
	window, err := u.availabilityRepo.FindActiveByDoctorAndDay(db, doctorID, weekday)
	if err != nil {
		u.log.Warnf("Failed to load availability for doctor %d day %d: %+v", doctorID, weekday, err)
		return nil, err
	}
	if window == nil {
		dayName, _ := schedule.DayName(weekday)
		resp.Message = fmt.Sprintf("Dr. %s is not available on %s", doctor.Name, dayName)
		return resp, nil
	}

	slots, err := schedule.GenerateSlots(window.StartTime, window.EndTime, window.SlotDurationMinutes)
	if err != nil {
		u.log.Warnf("Stored availability %d has an invalid window: %+v", window.ID, err)
		return nil, err
	}

	booked, err := u.appointmentRepo.FindBookedByDoctorAndDate(db, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to load bookings for doctor %d on %s: %+v", doctorID, date, err)
		return nil, err
	}

	bookedTimes := make(map[string]struct{}, len(booked))
	for _, appointment := range booked {
		bookedTimes[appointment.AppointmentTime] = struct{}{}
		resp.Booked = append(resp.Booked, appointment.AppointmentTime)
	}

	for _, slot := range slots {
		if _, taken := bookedTimes[slot]; !taken {
			resp.Available = append(resp.Available, slot)
		}
	}

	resp.WorkingHours = &dto.WorkingHours{Start: window.StartTime, End: window.EndTime}
	resp.SlotDurationMinutes = window.SlotDurationMinutes
	return resp, nil
}

func (u *availabilityUsecase) GetAvailabilitySummary(ctx context.Context, doctorID int) (*dto.AvailabilitySummaryResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	windows, err := u.availabilityRepo.FindActiveByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to load availability for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	days := make([]dto.AvailabilitySummaryDay, 0, len(windows))
	for _, window := range windows {
		dayName, err := schedule.DayName(window.DayOfWeek)
		if err != nil {
			continue
		}
		capacity, err := schedule.Capacity(window.StartTime, window.EndTime, window.SlotDurationMinutes)
		if err != nil {
			continue
		}
		days = append(days, dto.AvailabilitySummaryDay{
			DayOfWeek:    window.DayOfWeek,
			DayName:      dayName,
			StartTime:    window.StartTime,
			EndTime:      window.EndTime,
			SlotCapacity: capacity,
		})
	}

	return &dto.AvailabilitySummaryResponse{
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Days:       days,
	}, nil
}

func (u *availabilityUsecase) ListMyAvailability(ctx context.Context) ([]dto.AvailabilityResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.requireDoctor(ctx, db)
	if err != nil {
		return nil, err
	}

	windows, err := u.availabilityRepo.FindActiveByDoctor(db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list availability for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return converter.AvailabilitiesToResponses(windows), nil
}

func (u *availabilityUsecase) CreateAvailability(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if err := validateWindow(req.StartTime, req.EndTime, req.SlotDurationMinutes); err != nil {
		return nil, err
	}
	if _, err := schedule.DayName(req.DayOfWeek); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.requireDoctor(ctx, tx)
	if err != nil {
		return nil, err
	}

	duration := req.SlotDurationMinutes
	if duration == 0 {
		duration = 30
	}

	window := &entity.DoctorAvailability{
		DoctorID:            doctor.ID,
		DayOfWeek:           req.DayOfWeek,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotDurationMinutes: duration,
		IsActive:            true,
	}

	if err := u.availabilityRepo.Create(tx, window); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_weekday") {
			return nil, ErrWeekdayTaken
		}
		u.log.Warnf("Failed to create availability for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Availability created: doctor=%d, day=%d, window=%s-%s", doctor.ID, window.DayOfWeek, window.StartTime, window.EndTime)
	return converter.AvailabilityToResponse(window), nil
}

func (u *availabilityUsecase) UpdateAvailability(ctx context.Context, availabilityID int, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.requireDoctor(ctx, tx)
	if err != nil {
		return nil, err
	}

	window, err := u.availabilityRepo.FindByID(tx, availabilityID)
	if err != nil {
		return nil, err
	}
	if window == nil || window.DoctorID != doctor.ID {
		return nil, ErrAvailabilityNotFound
	}

	if req.StartTime != "" {
		window.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		window.EndTime = req.EndTime
	}
	if req.SlotDurationMinutes != 0 {
		window.SlotDurationMinutes = req.SlotDurationMinutes
	}
	if req.IsActive != nil {
		window.IsActive = *req.IsActive
	}

	if err := validateWindow(window.StartTime, window.EndTime, window.SlotDurationMinutes); err != nil {
		return nil, err
	}

	if err := u.availabilityRepo.Update(tx, window); err != nil {
		u.log.Warnf("Failed to update availability %d: %+v", availabilityID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.AvailabilityToResponse(window), nil
}

func (u *availabilityUsecase) DeleteAvailability(ctx context.Context, availabilityID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.requireDoctor(ctx, tx)
	if err != nil {
		return err
	}

	window, err := u.availabilityRepo.FindByID(tx, availabilityID)
	if err != nil {
		return err
	}
	if window == nil || window.DoctorID != doctor.ID {
		return ErrAvailabilityNotFound
	}

	affected, err := u.availabilityRepo.Delete(tx, availabilityID)
	if err != nil {
		u.log.Warnf("Failed to delete availability %d: %+v", availabilityID, err)
		return err
	}
	if affected == 0 {
		return ErrAvailabilityNotFound
	}

	return tx.Commit().Error
}

// requireDoctor resolves the doctor row for the authenticated user.
func (u *availabilityUsecase) requireDoctor(ctx context.Context, db *gorm.DB) (*entity.Doctor, error) {
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

// validateWindow checks the clock strings parse and describe a
// non-empty window with a sane slot duration.
func validateWindow(startTime, endTime string, durationMinutes int) error {
	start, err := schedule.ParseClock(startTime)
	if err != nil {
		return err
	}
	end, err := schedule.ParseClock(endTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidWindow
	}
	if durationMinutes < 0 {
		return schedule.ErrInvalidDuration
	}
	return nil
}
