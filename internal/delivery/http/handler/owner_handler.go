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

type OwnerHandler struct {
	ownerUsecase usecase.OwnerUsecase
	validator    *validator.CustomValidator
}

func NewOwnerHandler(ownerUsecase usecase.OwnerUsecase, validator *validator.CustomValidator) *OwnerHandler {
	return &OwnerHandler{
		ownerUsecase: ownerUsecase,
		validator:    validator,
	}
}

func (h *OwnerHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.ownerUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list owners")
		return
	}

	response.Success(w, http.StatusOK, "Owners retrieved successfully", owners)
}

func (h *OwnerHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create owner")
		return
	}

	response.Success(w, http.StatusCreated, "Owner created successfully", owner)
}

func (h *OwnerHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}

	var req dto.UpdateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	owner, err := h.ownerUsecase.Update(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to update owner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Owner updated successfully", owner)
}

func (h *OwnerHandler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}

	if err := h.ownerUsecase.Delete(r.Context(), ownerID); err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		case usecase.ErrOwnerHasPets:
			response.Conflict(w, "Owner still has pets registered")
		default:
			response.InternalServerError(w, "Failed to delete owner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Owner deleted successfully", nil)
}
