package usecase

import (
	"context"
	"errors"

	"careconnect-backend/internal/converter"
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/delivery/http/middleware"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultRecentVisits = 3

type VisitUsecase interface {
	GetAllVisits(ctx context.Context) (*dto.VisitListResponse, error)
	GetRecentVisits(ctx context.Context, limit int) ([]dto.VisitResponse, error)
}

type visitUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	visitRepo       repository.VisitRepository
	appointmentRepo repository.AppointmentRepository
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	appointmentRepo repository.AppointmentRepository,
) VisitUsecase {
	return &visitUsecase{
		db:              db,
		log:             log,
		visitRepo:       visitRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetAllVisits returns the visit history newest first, together with
// counters spanning both visits and bookings.
func (u *visitUsecase) GetAllVisits(ctx context.Context) (*dto.VisitListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	visits, err := u.visitRepo.FindByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list visits for user %d: %+v", userID, err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %d: %+v", userID, err)
		return nil, err
	}

	stats := dto.VisitStatistics{Completed: len(visits)}
	for _, a := range appointments {
		switch a.Status {
		case entity.AppointmentStatusUpcoming:
			stats.Upcoming++
		case entity.AppointmentStatusCancelled:
			stats.Cancelled++
		}
	}
	stats.Total = stats.Completed + stats.Upcoming + stats.Cancelled

	return &dto.VisitListResponse{
		Visits:     converter.VisitsToResponses(visits),
		Statistics: stats,
	}, nil
}

func (u *visitUsecase) GetRecentVisits(ctx context.Context, limit int) ([]dto.VisitResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if limit <= 0 {
		limit = defaultRecentVisits
	}

	visits, err := u.visitRepo.FindRecentCompletedByUser(u.db.WithContext(ctx), userID, limit)
	if err != nil {
		u.log.Warnf("Failed to list recent visits for user %d: %+v", userID, err)
		return nil, err
	}

	return converter.VisitsToResponses(visits), nil
}
