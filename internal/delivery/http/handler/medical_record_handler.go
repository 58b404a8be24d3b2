package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/usecase"
	"careconnect-backend/pkg/response"
	"careconnect-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// GetRecords lists the user's active records grouped by type
// @Summary List medical records
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /medical-records [get]
func (h *MedicalRecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetMyRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved", records)
}

// AddEntry creates a new medical record entry
// @Summary Add medical record entry
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicalRecordRequest true "Create Medical Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /medical-records/entry [post]
func (h *MedicalRecordHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.AddEntry(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRecordType, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to add medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record added", record)
}

// UpdateEntry applies partial updates to an active record
// @Summary Update medical record entry
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Medical Record Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [put]
func (h *MedicalRecordHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.UpdateEntry(r.Context(), recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotActive:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated", record)
}

// ArchiveEntry soft-deletes a record (reversible)
// @Summary Archive medical record entry
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [delete]
func (h *MedicalRecordHandler) ArchiveEntry(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.ArchiveEntry(r.Context(), recordID); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotActive:
			response.Error(w, http.StatusBadRequest, "Record is already archived", nil)
		default:
			response.InternalServerError(w, "Failed to archive medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record archived", nil)
}

// RestoreEntry brings an archived record back to active
// @Summary Restore medical record entry
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id}/restore [post]
func (h *MedicalRecordHandler) RestoreEntry(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.recordUsecase.RestoreEntry(r.Context(), recordID)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordAlreadyActive:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to restore medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record restored", record)
}

// PurgeEntry permanently deletes an archived record
// @Summary Permanently delete medical record entry
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id}/permanent [delete]
func (h *MedicalRecordHandler) PurgeEntry(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.PurgeEntry(r.Context(), recordID); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotArchived:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record permanently deleted", nil)
}

// pathID parses a numeric {name} path variable.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}
