package converter

import (
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		StudentID:    user.StudentID,
		Institution:  user.Institution,
		Department:   user.Department,
		Major:        user.Major,
		AcademicYear: user.AcademicYear,
		YearLevel:    user.YearLevel,
		Phone:        user.Phone,
		DateOfBirth:  user.DateOfBirth,
		Gender:       user.Gender,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}
}

// EmergencyContactToResponse converts an EmergencyContact entity to its DTO
func EmergencyContactToResponse(contact *entity.EmergencyContact) *dto.EmergencyContactResponse {
	if contact == nil {
		return nil
	}

	return &dto.EmergencyContactResponse{
		Name:         contact.Name,
		Relationship: contact.Relationship,
		Phone:        contact.Phone,
		Email:        contact.Email,
	}
}
