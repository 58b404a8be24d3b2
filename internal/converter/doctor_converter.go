package converter

import (
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/schedule"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Avatar:       doctor.Avatar,
		Rating:       doctor.Rating.StringFixed(1),
		ReviewsCount: doctor.ReviewsCount,
		IsAvailable:  doctor.IsAvailable,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}

// DoctorToProfileBlock builds the doctor-specific profile section
func DoctorToProfileBlock(doctor *entity.Doctor) *dto.DoctorProfileBlock {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorProfileBlock{
		DoctorID:      doctor.ID,
		LicenseNumber: doctor.LicenseNumber,
		Specialty:     doctor.Specialty,
		Avatar:        doctor.Avatar,
		Rating:        doctor.Rating.StringFixed(1),
		ReviewsCount:  doctor.ReviewsCount,
		IsAvailable:   doctor.IsAvailable,
	}
}

// AvailabilityToResponse converts a DoctorAvailability entity to its DTO
func AvailabilityToResponse(a *entity.DoctorAvailability) *dto.AvailabilityResponse {
	if a == nil {
		return nil
	}

	dayName, _ := schedule.DayName(a.DayOfWeek)

	return &dto.AvailabilityResponse{
		ID:                  a.ID,
		DayOfWeek:           a.DayOfWeek,
		DayName:             dayName,
		StartTime:           a.StartTime,
		EndTime:             a.EndTime,
		SlotDurationMinutes: a.SlotDurationMinutes,
		IsActive:            a.IsActive,
	}
}

// AvailabilitiesToResponses converts a slice of availabilities to DTOs
func AvailabilitiesToResponses(availabilities []entity.DoctorAvailability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(availabilities))
	for i, a := range availabilities {
		responses[i] = *AvailabilityToResponse(&a)
	}
	return responses
}

// NurseToResponse converts a Nurse entity to NurseResponse DTO
func NurseToResponse(nurse *entity.Nurse) *dto.NurseResponse {
	if nurse == nil {
		return nil
	}

	return &dto.NurseResponse{
		ID:       nurse.ID,
		Name:     nurse.Name,
		Station:  nurse.Station,
		Shift:    nurse.Shift,
		Phone:    nurse.Phone,
		IsOnDuty: nurse.IsOnDuty,
	}
}

// NursesToResponses converts a slice of Nurse entities to DTOs
func NursesToResponses(nurses []entity.Nurse) []dto.NurseResponse {
	responses := make([]dto.NurseResponse, len(nurses))
	for i, nurse := range nurses {
		responses[i] = *NurseToResponse(&nurse)
	}
	return responses
}
