package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/usecase"
	"vet-clinic-api/pkg/response"
	"vet-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

func (h *TreatmentHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list treatments")
		return
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", treatments)
}

func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeTreatmentError(w, err, "Failed to create treatment")
		return
	}

	response.Success(w, http.StatusCreated, "Treatment created successfully", treatment)
}

func (h *TreatmentHandler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	treatmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.Update(r.Context(), treatmentID, &req)
	if err != nil {
		h.writeTreatmentError(w, err, "Failed to update treatment")
		return
	}

	response.Success(w, http.StatusOK, "Treatment updated successfully", treatment)
}

func (h *TreatmentHandler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	treatmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	if err := h.treatmentUsecase.Delete(r.Context(), treatmentID); err != nil {
		if err == usecase.ErrTreatmentNotFound {
			response.NotFound(w, "Treatment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete treatment")
		return
	}

	response.Success(w, http.StatusOK, "Treatment deleted successfully", nil)
}

func (h *TreatmentHandler) writeTreatmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTreatmentNotFound:
		response.NotFound(w, "Treatment not found")
	case usecase.ErrPetNotFound:
		response.Conflict(w, "Referenced pet does not exist")
	case usecase.ErrVetNotFound:
		response.Conflict(w, "Referenced veterinarian does not exist")
	case usecase.ErrAppointmentNotFound:
		response.Conflict(w, "Referenced appointment does not exist")
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, "Invalid treatment date, use YYYY-MM-DD", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
