package entity

import "github.com/shopspring/decimal"

// HealthcareProfessional extends a User with role "Healthcare Professional".
// It must never exist without its parent User row committed.
type HealthcareProfessional struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint             `gorm:"uniqueIndex;not null" json:"user_id"`
	SpecialtyID     uint             `gorm:"not null;index" json:"specialty_id"`
	Experience      *int             `json:"experience,omitempty"`
	LicenseNumber   *string          `gorm:"type:varchar(50);uniqueIndex" json:"license_number,omitempty"`
	Education       *string          `gorm:"type:text" json:"education,omitempty"`
	ConsultationFee *decimal.Decimal `gorm:"type:numeric(10,2)" json:"consultation_fee,omitempty"`
	Status          string           `gorm:"type:varchar(15);not null;default:'Available'" json:"status"`

	// Relationships
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (HealthcareProfessional) TableName() string {
	return "healthcare_professionals"
}

// Availability status constants, distinct from the account status on User
const (
	AvailabilityAvailable   = "Available"
	AvailabilityUnavailable = "Unavailable"
)
