package repository

import (
	"citamed-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// FindByPatientID returns the patient's appointments enriched with the
	// linked professional's specialty name.
	FindByPatientID(db *gorm.DB, userID uint) ([]entity.PatientAppointment, error)
}
