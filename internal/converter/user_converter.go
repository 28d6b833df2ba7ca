package converter

import (
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
)

// UserToResponse maps a user entity to its sanitized response form. The
// password hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}

	if user.PhoneNumber != nil {
		resp.PhoneNumber = *user.PhoneNumber
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	return resp
}
