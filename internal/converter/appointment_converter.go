package converter

import (
	"time"

	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
)

func PatientAppointmentToResponse(appointment *entity.PatientAppointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		AppointmentDate: appointment.AppointmentDate.Format(time.RFC3339),
		Status:          string(appointment.Status),
		Type:            appointment.Type,
		SpecialtyName:   appointment.SpecialtyName,
	}
}

// PatientAppointmentsToResponses always returns a non-nil slice so an empty
// history serializes as [] rather than null.
func PatientAppointmentsToResponses(appointments []entity.PatientAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, PatientAppointmentToResponse(&appointments[i]))
	}
	return responses
}
