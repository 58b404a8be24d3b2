package converter

import (
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/domain/entity"
)

// ExperienceToResponse converts a ProfessionalExperience entity to its DTO
func ExperienceToResponse(e *entity.ProfessionalExperience) *dto.ExperienceResponse {
	if e == nil {
		return nil
	}

	return &dto.ExperienceResponse{
		ID:           e.ID,
		Title:        e.Title,
		Organization: e.Organization,
		StartYear:    e.StartYear,
		EndYear:      e.EndYear,
		Description:  e.Description,
	}
}

// ExperiencesToResponses converts a slice of experiences to DTOs
func ExperiencesToResponses(exps []entity.ProfessionalExperience) []dto.ExperienceResponse {
	responses := make([]dto.ExperienceResponse, len(exps))
	for i, e := range exps {
		responses[i] = *ExperienceToResponse(&e)
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity to its DTO
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	resp := &dto.PrescriptionResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Medication:   p.Medication,
		Dosage:       p.Dosage,
		Frequency:    p.Frequency,
		Duration:     p.Duration,
		Instructions: p.Instructions,
		IssuedDate:   p.IssuedDate.Format(dateLayout),
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}

	if p.User.ID != 0 {
		resp.PatientName = p.User.FullName
	}

	return resp
}

// PrescriptionsToResponses converts a slice of prescriptions to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		responses[i] = *PrescriptionToResponse(&p)
	}
	return responses
}

// ReferralToResponse converts a Referral entity to its DTO
func ReferralToResponse(r *entity.Referral) *dto.ReferralResponse {
	if r == nil {
		return nil
	}

	resp := &dto.ReferralResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Specialist:   r.Specialist,
		Facility:     r.Facility,
		Reason:       r.Reason,
		Urgency:      r.Urgency,
		ReferralDate: r.ReferralDate.Format(dateLayout),
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}

	if r.User.ID != 0 {
		resp.PatientName = r.User.FullName
	}

	return resp
}

// ReferralsToResponses converts a slice of referrals to DTOs
func ReferralsToResponses(referrals []entity.Referral) []dto.ReferralResponse {
	responses := make([]dto.ReferralResponse, len(referrals))
	for i, r := range referrals {
		responses[i] = *ReferralToResponse(&r)
	}
	return responses
}
