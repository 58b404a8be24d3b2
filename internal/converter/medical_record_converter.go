package converter

import (
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(r *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if r == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:            r.ID,
		Type:          r.Type,
		Name:          r.Name,
		Description:   r.Description,
		Severity:      r.Severity,
		DiagnosedDate: r.DiagnosedDate,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

// MedicalRecordsToGrouped splits active records into the grouped response
// the profile screen expects.
func MedicalRecordsToGrouped(records []entity.MedicalRecord) *dto.MedicalRecordsResponse {
	grouped := &dto.MedicalRecordsResponse{
		Allergies:   []dto.MedicalRecordResponse{},
		Medications: []dto.MedicalRecordResponse{},
		Conditions:  []dto.MedicalRecordResponse{},
	}

	for i := range records {
		resp := *MedicalRecordToResponse(&records[i])
		switch records[i].Type {
		case entity.MedicalRecordTypeAllergy:
			grouped.Allergies = append(grouped.Allergies, resp)
		case entity.MedicalRecordTypeMedication:
			grouped.Medications = append(grouped.Medications, resp)
		case entity.MedicalRecordTypeCondition:
			grouped.Conditions = append(grouped.Conditions, resp)
		}
	}

	return grouped
}
