package usecase

import (
	"context"

	"citamed-backend/internal/converter"
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
	"citamed-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uint) (*dto.ProfileResponse, error)
}

type userUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalRepository,
	appointmentRepo repository.AppointmentRepository,
) UserUsecase {
	return &userUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// GetProfile returns the user's profile and appointment history for the
// dashboard. An empty appointment list is a valid result. Professional
// accounts additionally get their practice details.
func (u *userUsecase) GetProfile(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %d: %+v", userID, err)
		return nil, err
	}

	resp := &dto.ProfileResponse{
		UserResponse: *converter.UserToResponse(user),
		Appointments: converter.PatientAppointmentsToResponses(appointments),
	}

	if user.Role == entity.RoleProfessional {
		professional, err := u.professionalRepo.FindByUserID(u.db.WithContext(ctx), userID)
		if err != nil {
			u.log.Warnf("Failed to find professional profile for user %d: %+v", userID, err)
			return nil, err
		}
		if professional != nil {
			resp.Professional = converter.ProfessionalToResponse(professional)
		}
	}

	return resp, nil
}
