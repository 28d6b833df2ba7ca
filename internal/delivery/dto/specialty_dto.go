package dto

type SpecialtyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}
