package converter

import (
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
)

// ProfessionalToResponse maps a professional profile to its response form.
// The Specialty relation must be loaded on the entity.
func ProfessionalToResponse(professional *entity.HealthcareProfessional) *dto.ProfessionalResponse {
	resp := &dto.ProfessionalResponse{
		Specialty:  professional.Specialty.Name,
		Experience: professional.Experience,
		Status:     professional.Status,
	}

	if professional.LicenseNumber != nil {
		resp.LicenseNumber = *professional.LicenseNumber
	}
	if professional.Education != nil {
		resp.Education = *professional.Education
	}
	if professional.ConsultationFee != nil {
		resp.ConsultationFee = professional.ConsultationFee.String()
	}

	return resp
}
