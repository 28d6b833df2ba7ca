package converter

import (
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
)

func SpecialtyToResponse(specialty *entity.Specialty) dto.SpecialtyResponse {
	return dto.SpecialtyResponse{
		ID:   specialty.ID,
		Name: specialty.Name,
	}
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, 0, len(specialties))
	for i := range specialties {
		responses = append(responses, SpecialtyToResponse(&specialties[i]))
	}
	return responses
}
