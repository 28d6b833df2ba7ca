package entity

import "time"

// User represents the centralized account table for patients and
// healthcare professionals alike. Email uniqueness is enforced by the
// case-insensitive index uni_users_email in the schema.
type User struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string     `gorm:"type:varchar(100);not null" json:"email"`
	PasswordHash   string     `gorm:"type:text;not null" json:"-"`
	FirstName      string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string     `gorm:"type:varchar(100);not null" json:"last_name"`
	PhoneNumber    *string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"type:varchar(10);not null" json:"gender"`
	GenderIdentity *string    `gorm:"type:varchar(100)" json:"gender_identity,omitempty"`
	Role           string     `gorm:"type:varchar(30);not null;index" json:"role"`
	Status         string     `gorm:"type:varchar(10);not null;default:'Active'" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional *HealthcareProfessional `gorm:"foreignKey:UserID" json:"professional,omitempty"`
	Appointments []Appointment           `gorm:"foreignKey:UserID" json:"appointments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RolePatient      = "Patient"
	RoleProfessional = "Healthcare Professional"
)

// Account status constants
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
