package repository

import (
	"errors"
	"time"

	"careconnect-backend/internal/domain/entity"
	domainRepo "careconnect-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByIDAndUser(db *gorm.DB, id, userID int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Where("id = ? AND user_id = ?", id, userID).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByUser(db *gorm.DB, userID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, id DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByUser(db *gorm.DB, userID int, from time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("user_id = ? AND appointment_date >= ? AND status != ?",
			userID, from, entity.AppointmentStatusCancelled).
		Order("appointment_date ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedByDoctorAndDate(db *gorm.DB, doctorID int, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND appointment_date = ? AND status != ?",
		doctorID, date, entity.AppointmentStatusCancelled).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByDoctor(db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("User").
		Where("doctor_id = ? AND status = ?", doctorID, entity.AppointmentStatusUpcoming).
		Order("appointment_date ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorOnDate(db *gorm.DB, doctorID int, date time.Time, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("User").
		Where("doctor_id = ? AND appointment_date = ? AND status = ?", doctorID, date, status).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("User", "Doctor").Save(appointment).Error
}

// CompleteIfUpcoming atomically transitions upcoming -> completed.
// 0 affected rows means the appointment was already completed or cancelled,
// which makes double-completion impossible even under concurrent calls.
func (r *appointmentRepository) CompleteIfUpcoming(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusUpcoming).
		Update("status", entity.AppointmentStatusCompleted)
	return result.RowsAffected, result.Error
}

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	return db.Create(visit).Error
}

func (r *visitRepository) FindByUser(db *gorm.DB, userID int) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Preload("Doctor").
		Where("user_id = ?", userID).
		Order("visit_date DESC, id DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) FindRecentCompletedByUser(db *gorm.DB, userID, limit int) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.Preload("Doctor").
		Where("user_id = ? AND status = ?", userID, "completed").
		Order("visit_date DESC, id DESC").
		Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
