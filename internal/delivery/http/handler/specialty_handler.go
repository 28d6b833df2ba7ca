package handler

import (
	"net/http"

	"citamed-backend/internal/usecase"
	"citamed-backend/pkg/response"
)

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase) *SpecialtyHandler {
	return &SpecialtyHandler{specialtyUsecase: specialtyUsecase}
}

// ListSpecialties serves the public specialty directory
func (h *SpecialtyHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	result, err := h.specialtyUsecase.ListSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", result)
}
