package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/usecase"
	"careconnect-backend/pkg/response"
	"careconnect-backend/pkg/validator"
)

type DoctorDashboardHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorDashboardHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorDashboardHandler {
	return &DoctorDashboardHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// TodaysPatients lists the doctor's upcoming appointments for today
// @Summary Today's patients
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/patients [get]
func (h *DoctorDashboardHandler) TodaysPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.doctorUsecase.GetTodaysPatients(r.Context())
	if err != nil {
		h.writeDashboardError(w, err, "Failed to list today's patients")
		return
	}

	response.Success(w, http.StatusOK, "Today's patients retrieved", patients)
}

// Schedule lists the doctor's upcoming appointments
// @Summary Doctor schedule
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/schedule [get]
func (h *DoctorDashboardHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.doctorUsecase.GetSchedule(r.Context())
	if err != nil {
		h.writeDashboardError(w, err, "Failed to load schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved", schedule)
}

// AddExperience creates a CV entry
// @Summary Add professional experience
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateExperienceRequest true "Create Experience Request"
// @Success 201 {object} response.Response
// @Router /doctor/experience [post]
func (h *DoctorDashboardHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exp, err := h.doctorUsecase.AddExperience(r.Context(), &req)
	if err != nil {
		h.writeDashboardError(w, err, "Failed to add experience")
		return
	}

	response.Success(w, http.StatusCreated, "Experience added", exp)
}

// ListExperience lists the doctor's CV entries
// @Summary List professional experience
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/experience [get]
func (h *DoctorDashboardHandler) ListExperience(w http.ResponseWriter, r *http.Request) {
	exps, err := h.doctorUsecase.ListExperience(r.Context())
	if err != nil {
		h.writeDashboardError(w, err, "Failed to list experience")
		return
	}

	response.Success(w, http.StatusOK, "Experience retrieved", exps)
}

// UpdateExperience edits a CV entry
// @Summary Update professional experience
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Experience ID"
// @Param request body dto.UpdateExperienceRequest true "Update Experience Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/experience/{id} [put]
func (h *DoctorDashboardHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	experienceID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid experience ID", nil)
		return
	}

	var req dto.UpdateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exp, err := h.doctorUsecase.UpdateExperience(r.Context(), experienceID, &req)
	if err != nil {
		h.writeDashboardError(w, err, "Failed to update experience")
		return
	}

	response.Success(w, http.StatusOK, "Experience updated", exp)
}

// DeleteExperience removes a CV entry
// @Summary Delete professional experience
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/experience/{id} [delete]
func (h *DoctorDashboardHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	experienceID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid experience ID", nil)
		return
	}

	if err := h.doctorUsecase.DeleteExperience(r.Context(), experienceID); err != nil {
		h.writeDashboardError(w, err, "Failed to delete experience")
		return
	}

	response.Success(w, http.StatusOK, "Experience deleted", nil)
}

// IssuePrescription creates a prescription for a patient
// @Summary Issue prescription
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePrescriptionRequest true "Create Prescription Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/prescriptions [post]
func (h *DoctorDashboardHandler) IssuePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.doctorUsecase.IssuePrescription(r.Context(), &req)
	if err != nil {
		h.writeDashboardError(w, err, "Failed to issue prescription")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription issued", prescription)
}

// ListPrescriptions lists prescriptions issued by the doctor
// @Summary List prescriptions
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/prescriptions [get]
func (h *DoctorDashboardHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.doctorUsecase.ListPrescriptions(r.Context())
	if err != nil {
		h.writeDashboardError(w, err, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved", prescriptions)
}

// UpdatePrescriptionStatus changes a prescription's status
// @Summary Update prescription status
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Prescription ID"
// @Param request body dto.UpdatePrescriptionStatusRequest true "Update Prescription Status Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/prescriptions/{id}/status [put]
func (h *DoctorDashboardHandler) UpdatePrescriptionStatus(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	var req dto.UpdatePrescriptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.doctorUsecase.UpdatePrescriptionStatus(r.Context(), prescriptionID, &req)
	if err != nil {
		h.writeDashboardError(w, err, "Failed to update prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated", prescription)
}

// CreateReferral refers a patient to a specialist
// @Summary Create referral
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReferralRequest true "Create Referral Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/referrals [post]
func (h *DoctorDashboardHandler) CreateReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.doctorUsecase.CreateReferral(r.Context(), &req)
	if err != nil {
		h.writeDashboardError(w, err, "Failed to create referral")
		return
	}

	response.Success(w, http.StatusCreated, "Referral created", referral)
}

// ListReferrals lists referrals created by the doctor
// @Summary List referrals
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/referrals [get]
func (h *DoctorDashboardHandler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.doctorUsecase.ListReferrals(r.Context())
	if err != nil {
		h.writeDashboardError(w, err, "Failed to list referrals")
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved", referrals)
}

// UpdateReferralStatus changes a referral's status
// @Summary Update referral status
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Referral ID"
// @Param request body dto.UpdateReferralStatusRequest true "Update Referral Status Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/referrals/{id}/status [put]
func (h *DoctorDashboardHandler) UpdateReferralStatus(w http.ResponseWriter, r *http.Request) {
	referralID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	var req dto.UpdateReferralStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.doctorUsecase.UpdateReferralStatus(r.Context(), referralID, &req)
	if err != nil {
		h.writeDashboardError(w, err, "Failed to update referral")
		return
	}

	response.Success(w, http.StatusOK, "Referral updated", referral)
}

func (h *DoctorDashboardHandler) writeDashboardError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor profile not found")
	case errors.Is(err, usecase.ErrExperienceNotFound):
		response.NotFound(w, "Experience entry not found")
	case errors.Is(err, usecase.ErrPrescriptionNotFound):
		response.NotFound(w, "Prescription not found")
	case errors.Is(err, usecase.ErrReferralNotFound):
		response.NotFound(w, "Referral not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
