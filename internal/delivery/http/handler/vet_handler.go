package handler

import (
	"net/http"

	"vet-clinic-api/internal/usecase"
	"vet-clinic-api/pkg/response"
)

type VetHandler struct {
	vetUsecase usecase.VetUsecase
}

func NewVetHandler(vetUsecase usecase.VetUsecase) *VetHandler {
	return &VetHandler{
		vetUsecase: vetUsecase,
	}
}

func (h *VetHandler) ListVets(w http.ResponseWriter, r *http.Request) {
	vets, err := h.vetUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", vets)
}
