package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"citamed-backend/internal/converter"
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
	"citamed-backend/internal/domain/repository"
	"citamed-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrLicenseAlreadyExists   = errors.New("license number already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidConsultationFee = errors.New("consultation fee must be a non-negative number")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error)
	RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RecoverPassword(ctx context.Context, email string) error
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	specialtyRepo    repository.SpecialtyRepository
	professionalRepo repository.ProfessionalRepository
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	specialtyRepo repository.SpecialtyRepository,
	professionalRepo repository.ProfessionalRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		specialtyRepo:    specialtyRepo,
		professionalRepo: professionalRepo,
		jwtService:       jwtService,
		redisClient:      redisClient,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:          req.Email,
		PasswordHash:   string(hashedPassword),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    optionalString(req.PhoneNumber),
		DateOfBirth:    dob,
		Gender:         req.Gender,
		GenderIdentity: genderIdentity(req.Gender, req.CustomGender),
		Role:           entity.RolePatient,
		Status:         entity.StatusActive,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient user: %+v", err)
		return nil, err
	}

	return &dto.RegisterResponse{UserID: user.ID}, nil
}

// RegisterProfessional performs the three-step registration as a single
// transaction: insert the user, resolve or create the specialty, insert the
// professional row. The deferred rollback is a no-op once the commit
// succeeds, so no partial record survives any exit path.
func (u *authUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	fee, err := parseConsultationFee(req.ConsultationFee)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	user := &entity.User{
		Email:          req.Email,
		PasswordHash:   string(hashedPassword),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    optionalString(req.PhoneNumber),
		DateOfBirth:    dob,
		Gender:         req.Gender,
		GenderIdentity: genderIdentity(req.Gender, req.CustomGender),
		Role:           entity.RoleProfessional,
		Status:         entity.StatusActive,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create professional user: %+v", err)
		return nil, err
	}

	specialty, err := u.specialtyRepo.ResolveOrCreate(tx, req.Specialty)
	if err != nil {
		u.log.Warnf("Failed to resolve specialty %q: %+v", req.Specialty, err)
		return nil, err
	}

	professional := &entity.HealthcareProfessional{
		UserID:          user.ID,
		SpecialtyID:     specialty.ID,
		Experience:      req.Experience,
		LicenseNumber:   optionalString(req.LicenseNumber),
		Education:       optionalString(req.Education),
		ConsultationFee: fee,
		Status:          entity.AvailabilityAvailable,
	}

	if err := u.professionalRepo.Create(tx, professional); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create professional profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// A new specialty may have been created, refresh the public directory
	if err := u.redisClient.Del(ctx, SpecialtyCacheKey).Err(); err != nil {
		u.log.Warnf("Failed to invalidate specialty cache: %+v", err)
	}

	return &dto.RegisterResponse{UserID: user.ID}, nil
}

// Login verifies credentials and issues the session token. Unknown email
// and wrong password return the same error so accounts cannot be
// enumerated.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  converter.UserToResponse(user),
	}, nil
}

// RecoverPassword only confirms whether the email is registered. No reset
// token is issued yet.
func (u *authUsecase) RecoverPassword(ctx context.Context, email string) error {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func parseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &dob, nil
}

func parseConsultationFee(value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	fee, err := decimal.NewFromString(value)
	if err != nil || fee.IsNegative() {
		return nil, ErrInvalidConsultationFee
	}
	return &fee, nil
}

// genderIdentity stores the free-text identity only for gender "other"
func genderIdentity(gender, customGender string) *string {
	if gender != entity.GenderOther {
		return nil
	}
	return optionalString(customGender)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
