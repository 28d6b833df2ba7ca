package handler

import (
	"net/http"

	"citamed-backend/internal/delivery/http/middleware"
	"citamed-backend/internal/usecase"
	"citamed-backend/pkg/response"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GetProfile returns the authenticated user's profile and appointments.
// Every failure on this path carries removeToken: the client cannot tell a
// stale token apart from a stale account, so it discards and re-logs in.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.AuthError(w, http.StatusForbidden, "Invalid token")
		return
	}

	profile, err := h.userUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.AuthError(w, http.StatusNotFound, "User not found")
		default:
			response.AuthError(w, http.StatusInternalServerError, "Failed to fetch user data")
		}
		return
	}

	response.Success(w, http.StatusOK, "User data fetched successfully", profile)
}
