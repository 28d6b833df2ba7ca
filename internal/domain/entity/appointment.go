package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "No-Show"
)

// Appointment links a patient User and a HealthcareProfessional. The
// professional reference is nullable to tolerate legacy rows.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint              `gorm:"not null;index" json:"user_id"`
	ProfessionalID  *uint             `gorm:"index" json:"professional_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`
	Type            string            `gorm:"type:varchar(50)" json:"type,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User                    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Professional *HealthcareProfessional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// PatientAppointment is the dashboard projection of an appointment joined
// with the professional's specialty. SpecialtyName is nil when the
// professional or specialty row is absent.
type PatientAppointment struct {
	AppointmentDate time.Time         `json:"appointment_date"`
	Status          AppointmentStatus `json:"status"`
	Type            string            `json:"type,omitempty"`
	SpecialtyName   *string           `json:"specialty_name"`
}
