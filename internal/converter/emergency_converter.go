package converter

import (
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
)

// EmergencyRequestToResponse converts an EmergencyRequest entity to its DTO
func EmergencyRequestToResponse(r *entity.EmergencyRequest) *dto.EmergencyRequestResponse {
	if r == nil {
		return nil
	}

	resp := &dto.EmergencyRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        r.Type,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Status:      string(r.Status),
		Priority:    r.Priority,
		CreatedAt:   r.CreatedAt,
		ResolvedAt:  r.ResolvedAt,
	}

	if r.User.ID != 0 {
		resp.UserName = r.User.FullName
		resp.UserPhone = r.User.Phone
	}

	return resp
}

// EmergencyRequestsToResponses converts a slice of requests to DTOs
func EmergencyRequestsToResponses(requests []entity.EmergencyRequest) []dto.EmergencyRequestResponse {
	responses := make([]dto.EmergencyRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = *EmergencyRequestToResponse(&r)
	}
	return responses
}
