package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/schedule"
	"careconnect-backend/internal/usecase"
	"careconnect-backend/pkg/response"
	"careconnect-backend/pkg/validator"
)

type DoctorHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewDoctorHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// ListDoctors returns all available doctors
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.availabilityUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved", doctors)
}

// GetAvailableSlots returns the bookable slots for a doctor on a date
// @Summary Get available slots
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/available-slots [get]
func (h *DoctorHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case errors.Is(err, schedule.ErrInvalidClock), errors.Is(err, schedule.ErrInvalidDuration):
			response.InternalServerError(w, "Doctor availability is misconfigured")
		default:
			response.InternalServerError(w, "Failed to compute available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved", slots)
}

// GetAvailabilitySummary returns the doctor's weekly working windows
// @Summary Get availability summary
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/availability-summary [get]
func (h *DoctorHandler) GetAvailabilitySummary(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	summary, err := h.availabilityUsecase.GetAvailabilitySummary(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to load availability summary")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability summary retrieved", summary)
}

// ListMyAvailability returns the authenticated doctor's windows
// @Summary List own availability
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/availability [get]
func (h *DoctorHandler) ListMyAvailability(w http.ResponseWriter, r *http.Request) {
	windows, err := h.availabilityUsecase.ListMyAvailability(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to list availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved", windows)
}

// CreateAvailability adds a weekly working window
// @Summary Create availability window
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Create Availability Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/availability [post]
func (h *DoctorHandler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.CreateAvailability(r.Context(), &req)
	if err != nil {
		h.writeAvailabilityError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Availability created", window)
}

// UpdateAvailability edits an existing window
// @Summary Update availability window
// @Tags DoctorDashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Availability ID"
// @Param request body dto.UpdateAvailabilityRequest true "Update Availability Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/availability/{id} [put]
func (h *DoctorHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid availability ID", nil)
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.UpdateAvailability(r.Context(), availabilityID, &req)
	if err != nil {
		h.writeAvailabilityError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability updated", window)
}

// DeleteAvailability removes a window
// @Summary Delete availability window
// @Tags DoctorDashboard
// @Security BearerAuth
// @Produce json
// @Param id path int true "Availability ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/availability/{id} [delete]
func (h *DoctorHandler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid availability ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeleteAvailability(r.Context(), availabilityID); err != nil {
		h.writeAvailabilityError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted", nil)
}

func (h *DoctorHandler) writeAvailabilityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor profile not found")
	case errors.Is(err, usecase.ErrAvailabilityNotFound):
		response.NotFound(w, "Availability not found")
	case errors.Is(err, usecase.ErrWeekdayTaken):
		response.Conflict(w, "An availability window already exists for this weekday")
	case errors.Is(err, usecase.ErrInvalidWindow),
		errors.Is(err, schedule.ErrInvalidClock),
		errors.Is(err, schedule.ErrInvalidDuration),
		errors.Is(err, schedule.ErrInvalidDayOfWeek):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "Failed to process availability")
	}
}
