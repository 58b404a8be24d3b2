package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/schedule"
	"careconnect-backend/internal/usecase"
	"careconnect-backend/pkg/response"
	"careconnect-backend/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	visitUsecase       usecase.VisitUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	visitUsecase usecase.VisitUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		visitUsecase:       visitUsecase,
		validator:          validator,
	}
}

// Create books an appointment
// @Summary Book appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "This time slot is already booked")
		case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, schedule.ErrInvalidClock):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", appointment)
}

// List returns all the user's appointments
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", appointments)
}

// Upcoming returns future non-cancelled appointments with lead times
// @Summary List upcoming appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/upcoming [get]
func (h *AppointmentHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetUpcoming(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list upcoming appointments")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming appointments retrieved", appointments)
}

// Update reschedules or edits an appointment
// @Summary Update appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), appointmentID, &req)
	if err != nil {
		h.writeAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated", appointment)
}

// Cancel cancels an appointment (irreversible)
// @Summary Cancel appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), appointmentID); err != nil {
		h.writeAppointmentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", nil)
}

// Complete marks an appointment as completed and records the visit
// @Summary Complete appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.CompleteAppointmentRequest false "Complete Appointment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CompleteAppointmentRequest
	if r.Body != nil {
		// Body is optional; decode errors on an empty body are fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	visit, err := h.appointmentUsecase.Complete(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrAlreadyCompleted):
			response.Error(w, http.StatusBadRequest, "Appointment is not in an upcoming state", nil)
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed", visit)
}

// AllVisits returns the visit history with statistics
// @Summary List all visits
// @Tags Visits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /visits/all [get]
func (h *AppointmentHandler) AllVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.visitUsecase.GetAllVisits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved", visits)
}

// RecentVisits returns the latest completed visits
// @Summary List recent visits
// @Tags Visits
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries (default 3)"
// @Success 200 {object} response.Response
// @Router /visits/recent [get]
func (h *AppointmentHandler) RecentVisits(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	visits, err := h.visitUsecase.GetRecentVisits(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list recent visits")
		return
	}

	response.Success(w, http.StatusOK, "Recent visits retrieved", visits)
}

func (h *AppointmentHandler) writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrAppointmentCancelled):
		response.Error(w, http.StatusBadRequest, "Appointment has been cancelled", nil)
	case errors.Is(err, usecase.ErrRescheduleTooLate):
		response.Error(w, http.StatusBadRequest, "Appointments can only be changed up to 12 hours in advance", nil)
	case errors.Is(err, usecase.ErrSlotTaken):
		response.Conflict(w, "This time slot is already booked")
	case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, schedule.ErrInvalidClock):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "Failed to process appointment")
	}
}
