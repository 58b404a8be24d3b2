package converter

import (
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to its DTO.
// hoursUntil is optional; pass nil for list views that do not compute it.
func AppointmentToResponse(a *entity.Appointment, hoursUntil *float64) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate.Format(dateLayout),
		AppointmentTime: a.AppointmentTime,
		Type:            a.Type,
		Location:        a.Location,
		Notes:           a.Notes,
		Status:          string(a.Status),
		CanReschedule:   a.CanReschedule,
		HoursUntil:      hoursUntil,
		CreatedAt:       a.CreatedAt,
	}

	if a.Doctor.ID != 0 {
		resp.DoctorName = a.Doctor.Name
		resp.Specialty = a.Doctor.Specialty
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = *AppointmentToResponse(&a, nil)
	}
	return responses
}

// VisitToResponse converts a Visit entity to VisitResponse DTO
func VisitToResponse(v *entity.Visit) *dto.VisitResponse {
	if v == nil {
		return nil
	}

	resp := &dto.VisitResponse{
		ID:        v.ID,
		DoctorID:  v.DoctorID,
		VisitDate: v.VisitDate.Format(dateLayout),
		TimeStart: v.TimeStart,
		TimeEnd:   v.TimeEnd,
		Diagnosis: v.Diagnosis,
		Type:      v.Type,
		Location:  v.Location,
		Notes:     v.Notes,
		Status:    v.Status,
	}

	if v.Doctor.ID != 0 {
		resp.DoctorName = v.Doctor.Name
	}

	return resp
}

// VisitsToResponses converts a slice of Visit entities to DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i, v := range visits {
		responses[i] = *VisitToResponse(&v)
	}
	return responses
}
