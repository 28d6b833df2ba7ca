package repository

import (
	"citamed-backend/internal/domain/entity"
	domainRepo "citamed-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// FindByPatientID left-joins the professional and specialty so appointments
// with missing professional rows still come back, with a null specialty name.
func (r *appointmentRepository) FindByPatientID(db *gorm.DB, userID uint) ([]entity.PatientAppointment, error) {
	var appointments []entity.PatientAppointment
	err := db.Table("appointments").
		Select("appointments.appointment_date, appointments.status, appointments.type, specialties.name AS specialty_name").
		Joins("LEFT JOIN healthcare_professionals ON healthcare_professionals.id = appointments.professional_id").
		Joins("LEFT JOIN specialties ON specialties.id = healthcare_professionals.specialty_id").
		Where("appointments.user_id = ?", userID).
		Order("appointments.appointment_date DESC").
		Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
