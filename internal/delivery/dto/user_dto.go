package dto

// UserResponse is the sanitized user profile. The password hash never
// crosses this boundary.
type UserResponse struct {
	UserID      uint   `json:"userID"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Role        string `json:"role"`
}

// ProfessionalResponse is the practice block returned to accounts with the
// professional role.
type ProfessionalResponse struct {
	Specialty       string `json:"specialty"`
	Experience      *int   `json:"experience,omitempty"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	Education       string `json:"education,omitempty"`
	ConsultationFee string `json:"consultationFee,omitempty"`
	Status          string `json:"status"`
}

type AppointmentResponse struct {
	AppointmentDate string  `json:"appointmentDate"`
	Status          string  `json:"status"`
	Type            string  `json:"type,omitempty"`
	SpecialtyName   *string `json:"specialtyName"`
}

// ProfileResponse is the authenticated dashboard payload: the profile plus
// the user's appointments. An empty appointment list is valid. Professional
// is only set for professional accounts.
type ProfileResponse struct {
	UserResponse
	Professional *ProfessionalResponse `json:"professional,omitempty"`
	Appointments []AppointmentResponse `json:"appointments"`
}
