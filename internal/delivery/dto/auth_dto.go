package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RegisterPatientRequest carries the patient sign-up form. DateOfBirth uses
// format YYYY-MM-DD. CustomGender is only honored when Gender is "other".
type RegisterPatientRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=1,max=100"`
	LastName     string `json:"lastName" validate:"required,min=1,max=100"`
	Email        string `json:"email" validate:"required,email,max=100"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber  string `json:"phoneNumber" validate:"omitempty,e164"`
	DateOfBirth  string `json:"dateOfBirth" validate:"omitempty"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	CustomGender string `json:"customGender" validate:"omitempty,max=100"`
}

// RegisterProfessionalRequest extends the patient form with the professional
// profile fields. ConsultationFee arrives as a string from the form and is
// parsed as a non-negative number.
type RegisterProfessionalRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=1,max=100"`
	LastName        string `json:"lastName" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email,max=100"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber     string `json:"phoneNumber" validate:"omitempty,e164"`
	DateOfBirth     string `json:"dateOfBirth" validate:"omitempty"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	CustomGender    string `json:"customGender" validate:"omitempty,max=100"`
	Specialty       string `json:"specialty" validate:"required,min=1,max=100"`
	Experience      *int   `json:"experience" validate:"omitempty,gte=0"`
	LicenseNumber   string `json:"licenseNumber" validate:"omitempty,max=50"`
	Education       string `json:"education" validate:"omitempty"`
	ConsultationFee string `json:"consultationFee" validate:"omitempty"`
}

// Response DTOs

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type RegisterResponse struct {
	UserID uint `json:"userId"`
}
