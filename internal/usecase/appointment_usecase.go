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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSlotTaken            = errors.New("this time slot is already booked")
	ErrAppointmentCancelled = errors.New("appointment has been cancelled")
	ErrAlreadyCompleted     = errors.New("appointment is not in an upcoming state")
	ErrRescheduleTooLate    = errors.New("appointments can only be changed up to 12 hours in advance")
)

// rescheduleCutoff is the minimum lead time for rescheduling an
// upcoming appointment. Cancellation has no cutoff: a freed slot close
// to the start is still better than a no-show.
const rescheduleCutoff = 12 * time.Hour

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentID int) error
	Complete(ctx context.Context, appointmentID int, req *dto.CompleteAppointmentRequest) (*dto.VisitResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	visitRepo       repository.VisitRepository
	doctorRepo      repository.DoctorRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	visitRepo repository.VisitRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
		doctorRepo:      doctorRepo,
	}
}

// Create books a slot. Slot collisions are resolved by the partial
// unique index on (doctor, date, time) for non-cancelled rows, so two
// concurrent bookings of the same slot cannot both succeed.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := schedule.ParseClock(req.AppointmentTime); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindAvailableByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointmentType := req.Type
	if appointmentType == "" {
		appointmentType = "General Consultation"
	}

	appointment := &entity.Appointment{
		UserID:          userID,
		DoctorID:        doctor.ID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Type:            appointmentType,
		Location:        fmt.Sprintf("Campus Health Center, Room %d01", doctor.ID),
		Notes:           req.Notes,
		Status:          entity.AppointmentStatusUpcoming,
		CanReschedule:   true,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_slot") {
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment for user %d: %+v", userID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	u.log.Infof("Appointment booked: id=%d, user=%d, doctor=%d, slot=%s %s",
		appointment.ID, userID, doctor.ID, req.AppointmentDate, req.AppointmentTime)
	return converter.AppointmentToResponse(appointment, nil), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %d: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	now := time.Now()
	today := startOfDay(now)

	appointments, err := u.appointmentRepo.FindUpcomingByUser(u.db.WithContext(ctx), userID, today)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments for user %d: %+v", userID, err)
		return nil, err
	}

	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		hours, err := HoursUntil(now, appointment.AppointmentDate, appointment.AppointmentTime)
		if err != nil {
			responses = append(responses, *converter.AppointmentToResponse(appointment, nil))
			continue
		}
		resp := converter.AppointmentToResponse(appointment, &hours)
		resp.CanReschedule = appointment.CanReschedule && hours >= rescheduleCutoff.Hours()
		responses = append(responses, *resp)
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, appointmentID int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByIDAndUser(tx, appointmentID, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	if err := u.checkRescheduleWindow(appointment); err != nil {
		return nil, err
	}

	if req.AppointmentDate != "" {
		date, err := time.Parse("2006-01-02", req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.AppointmentDate = date
	}
	if req.AppointmentTime != "" {
		if _, err := schedule.ParseClock(req.AppointmentTime); err != nil {
			return nil, err
		}
		appointment.AppointmentTime = req.AppointmentTime
	}
	if req.Type != "" {
		appointment.Type = req.Type
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Appointment rescheduled: id=%d, slot=%s %s",
		appointment.ID, appointment.AppointmentDate.Format("2006-01-02"), appointment.AppointmentTime)
	return converter.AppointmentToResponse(appointment, nil), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, appointmentID int) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByIDAndUser(tx, appointmentID, userID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return ErrAppointmentCancelled
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d, user=%d", appointmentID, userID)
	return nil
}

// Complete transitions an upcoming appointment to completed and writes
// its Visit row. The guarded status update makes the operation
// idempotent: a second completion attempt changes nothing and creates
// no second visit.
func (u *appointmentUsecase) Complete(ctx context.Context, appointmentID int, req *dto.CompleteAppointmentRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.CompleteIfUpcoming(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAlreadyCompleted
	}

	diagnosis := req.Diagnosis
	if diagnosis == "" {
		diagnosis = "General Consultation"
	}

	endTime := appointment.AppointmentTime
	if start, err := schedule.ParseClock(appointment.AppointmentTime); err == nil {
		endTime = schedule.FormatClock(start + 30)
	}

	visit := &entity.Visit{
		UserID:    appointment.UserID,
		DoctorID:  appointment.DoctorID,
		VisitDate: appointment.AppointmentDate,
		TimeStart: appointment.AppointmentTime,
		TimeEnd:   endTime,
		Diagnosis: diagnosis,
		Type:      appointment.Type,
		Location:  appointment.Location,
		Notes:     appointment.Notes,
		Status:    "completed",
	}

	if err := u.visitRepo.Create(tx, visit); err != nil {
		u.log.Warnf("Failed to create visit for appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Appointment completed: id=%d, visit=%d", appointmentID, visit.ID)
	visit.Doctor = appointment.Doctor
	return converter.VisitToResponse(visit), nil
}

func (u *appointmentUsecase) checkRescheduleWindow(appointment *entity.Appointment) error {
	hours, err := HoursUntil(time.Now(), appointment.AppointmentDate, appointment.AppointmentTime)
	if err != nil {
		// An unparsable stored time should not lock the user out of
		// their own appointment.
		u.log.Warnf("Appointment %d has unparsable time %q: %+v", appointment.ID, appointment.AppointmentTime, err)
		return nil
	}
	if hours < rescheduleCutoff.Hours() {
		return ErrRescheduleTooLate
	}
	return nil
}

// startOfDay returns midnight of t's day in t's own location.
// Truncating to 24h buckets would give UTC midnight instead, which
// shifts the day boundary by the zone offset.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HoursUntil measures the time from now until the appointment start,
// combining the stored date with the 12-hour wall-clock time.
func HoursUntil(now, date time.Time, clock string) (float64, error) {
	minutes, err := schedule.ParseClock(clock)
	if err != nil {
		return 0, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, now.Location())
	return start.Sub(now).Hours(), nil
}
