package dto

import "strings"

// normalizeGender maps the Spanish form values the legacy client still
// sends onto the stored gender enum.
func normalizeGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "masculino":
		return "male"
	case "femenino":
		return "female"
	case "otro":
		return "other"
	default:
		return strings.ToLower(strings.TrimSpace(gender))
	}
}

// Normalize must run before validation so legacy gender values pass the
// oneof check.
func (r *RegisterPatientRequest) Normalize() {
	r.Gender = normalizeGender(r.Gender)
}

func (r *RegisterProfessionalRequest) Normalize() {
	r.Gender = normalizeGender(r.Gender)
	r.Specialty = strings.TrimSpace(r.Specialty)
}
