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

var (
	ErrEmergencyNotFound = errors.New("emergency request not found")
	ErrAlreadyResolved   = errors.New("emergency request is already resolved")
)

type EmergencyUsecase interface {
	CreateRequest(ctx context.Context, req *dto.CreateEmergencyRequest) (*dto.EmergencyRequestResponse, error)
	GetActiveRequests(ctx context.Context) (*dto.EmergencyListResponse, error)
	ResolveRequest(ctx context.Context, requestID int) error
	GetOnDutyNurses(ctx context.Context) (*dto.NurseListResponse, error)
}

type emergencyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	requestRepo repository.EmergencyRequestRepository
	nurseRepo   repository.NurseRepository
}

func NewEmergencyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.EmergencyRequestRepository,
	nurseRepo repository.NurseRepository,
) EmergencyUsecase {
	return &emergencyUsecase{
		db:          db,
		log:         log,
		requestRepo: requestRepo,
		nurseRepo:   nurseRepo,
	}
}

func (u *emergencyUsecase) CreateRequest(ctx context.Context, req *dto.CreateEmergencyRequest) (*dto.EmergencyRequestResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	priority := req.Priority
	if priority == "" {
		priority = entity.EmergencyPriorityHigh
	}

	request := &entity.EmergencyRequest{
		UserID:      userID,
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      entity.EmergencyStatusActive,
		Priority:    priority,
	}

	if err := u.requestRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create emergency request for user %d: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Emergency request created: id=%d, user=%d, priority=%s", request.ID, userID, priority)
	return converter.EmergencyRequestToResponse(request), nil
}

func (u *emergencyUsecase) GetActiveRequests(ctx context.Context) (*dto.EmergencyListResponse, error) {
	requests, err := u.requestRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active emergencies: %+v", err)
		return nil, err
	}

	return &dto.EmergencyListResponse{
		Requests: converter.EmergencyRequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}

// ResolveRequest stamps the resolved state through a guarded update:
// resolving an already-resolved request is rejected rather than
// silently re-stamping the timestamp.
func (u *emergencyUsecase) ResolveRequest(ctx context.Context, requestID int) error {
	db := u.db.WithContext(ctx)

	request, err := u.requestRepo.FindByID(db, requestID)
	if err != nil {
		u.log.Warnf("Failed to find emergency request %d: %+v", requestID, err)
		return err
	}
	if request == nil {
		return ErrEmergencyNotFound
	}

	affected, err := u.requestRepo.ResolveIfActive(db, requestID)
	if err != nil {
		u.log.Warnf("Failed to resolve emergency request %d: %+v", requestID, err)
		return err
	}
	if affected == 0 {
		return ErrAlreadyResolved
	}

	u.log.Infof("Emergency request resolved: id=%d", requestID)
	return nil
}

func (u *emergencyUsecase) GetOnDutyNurses(ctx context.Context) (*dto.NurseListResponse, error) {
	nurses, err := u.nurseRepo.FindOnDuty(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list on-duty nurses: %+v", err)
		return nil, err
	}

	return &dto.NurseListResponse{
		Nurses: converter.NursesToResponses(nurses),
		Total:  len(nurses),
	}, nil
}
