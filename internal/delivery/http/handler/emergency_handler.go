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

type EmergencyHandler struct {
	emergencyUsecase usecase.EmergencyUsecase
	validator        *validator.CustomValidator
}

func NewEmergencyHandler(emergencyUsecase usecase.EmergencyUsecase, validator *validator.CustomValidator) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUsecase: emergencyUsecase,
		validator:        validator,
	}
}

// Create logs an emergency request
// @Summary Create emergency request
// @Tags Emergency
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEmergencyRequest true "Create Emergency Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /emergency [post]
func (h *EmergencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.emergencyUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create emergency request")
		return
	}

	response.Success(w, http.StatusCreated, "Emergency request created", request)
}

// ActiveRequests lists unresolved emergencies for nursing staff
// @Summary List active emergencies
// @Tags Nurse
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /nurse/emergencies [get]
func (h *EmergencyHandler) ActiveRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.emergencyUsecase.GetActiveRequests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list emergency requests")
		return
	}

	response.Success(w, http.StatusOK, "Active emergencies retrieved", requests)
}

// Resolve closes an active emergency request
// @Summary Resolve emergency
// @Tags Nurse
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /nurse/emergencies/{id}/resolve [put]
func (h *EmergencyHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	if err := h.emergencyUsecase.ResolveRequest(r.Context(), requestID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmergencyNotFound):
			response.NotFound(w, "Emergency request not found")
		case errors.Is(err, usecase.ErrAlreadyResolved):
			response.Error(w, http.StatusBadRequest, "Emergency request is already resolved", nil)
		default:
			response.InternalServerError(w, "Failed to resolve emergency request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Emergency request resolved", nil)
}

// OnDutyNurses lists nurses currently on duty
// @Summary List on-duty nurses
// @Tags Nurse
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /nurse/on-duty [get]
func (h *EmergencyHandler) OnDutyNurses(w http.ResponseWriter, r *http.Request) {
	nurses, err := h.emergencyUsecase.GetOnDutyNurses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list on-duty nurses")
		return
	}

	response.Success(w, http.StatusOK, "On-duty nurses retrieved", nurses)
}
