package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"citamed-backend/config"
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/entity"
	"citamed-backend/internal/infrastructure/database"
	"citamed-backend/internal/repository"
	"citamed-backend/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupAuthDB starts a disposable PostgreSQL container, applies the schema
// and wires the registration flow against it with real repositories. Tests
// are skipped when no container runtime is available.
func setupAuthDB(t *testing.T) (*gorm.DB, AuthUsecase) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "citamed",
			"POSTGRES_PASSWORD": "citamed",
			"POSTGRES_DB":       "citamed_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("cannot start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://citamed:citamed@%s:%s/citamed_test?sslmode=disable", host, port.Port())
	require.NoError(t, database.RunMigrations(url))

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	uc := NewAuthUsecase(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewSpecialtyRepository(),
		repository.NewProfessionalRepository(),
		jwt.NewJWTService(config.JWTConfig{Secret: "db-test-secret", Expiry: time.Hour}),
		// the cache invalidation after commit is best-effort, an unreachable
		// redis must not fail registration
		redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
	)

	return db, uc
}

func patientRequest(email string) *dto.RegisterPatientRequest {
	return &dto.RegisterPatientRequest{
		FirstName:   "Ana",
		LastName:    "Ruiz",
		Email:       email,
		Password:    "longenough1",
		DateOfBirth: "1990-04-15",
		Gender:      entity.GenderFemale,
	}
}

func professionalRequest(email, license, specialty string) *dto.RegisterProfessionalRequest {
	return &dto.RegisterProfessionalRequest{
		FirstName:       "Luis",
		LastName:        "Marin",
		Email:           email,
		Password:        "longenough1",
		Gender:          entity.GenderMale,
		Specialty:       specialty,
		LicenseNumber:   license,
		ConsultationFee: "45.50",
	}
}

func TestRegistrationAgainstPostgres(t *testing.T) {
	db, uc := setupAuthDB(t)
	ctx := context.Background()

	t.Run("duplicate email is rejected regardless of case", func(t *testing.T) {
		_, err := uc.RegisterPatient(ctx, patientRequest("ana@citamed.test"))
		require.NoError(t, err)

		_, err = uc.RegisterPatient(ctx, patientRequest("Ana@Citamed.Test"))
		require.ErrorIs(t, err, ErrEmailAlreadyExists)

		var count int64
		require.NoError(t, db.Model(&entity.User{}).
			Where("LOWER(email) = ?", "ana@citamed.test").
			Count(&count).Error)
		require.EqualValues(t, 1, count)
	})

	t.Run("login accepts a differently cased email", func(t *testing.T) {
		resp, err := uc.Login(ctx, &dto.LoginRequest{
			Email:    "ANA@CITAMED.TEST",
			Password: "longenough1",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "ana@citamed.test", resp.User.Email)
	})

	t.Run("duplicate license leaves no partial rows", func(t *testing.T) {
		_, err := uc.RegisterProfessional(ctx, professionalRequest("leo@citamed.test", "LIC-100", "Cardiology"))
		require.NoError(t, err)

		_, err = uc.RegisterProfessional(ctx, professionalRequest("mia@citamed.test", "LIC-100", "Cardiology"))
		require.ErrorIs(t, err, ErrLicenseAlreadyExists)

		// the rejected registration's user insert must have been rolled back
		var users int64
		require.NoError(t, db.Model(&entity.User{}).
			Where("email = ?", "mia@citamed.test").
			Count(&users).Error)
		require.EqualValues(t, 0, users)

		var professionals int64
		require.NoError(t, db.Model(&entity.HealthcareProfessional{}).
			Where("license_number = ?", "LIC-100").
			Count(&professionals).Error)
		require.EqualValues(t, 1, professionals)
	})

	t.Run("registrations with the same specialty share one row", func(t *testing.T) {
		first, err := uc.RegisterProfessional(ctx, professionalRequest("nora@citamed.test", "LIC-200", "Dermatology"))
		require.NoError(t, err)
		second, err := uc.RegisterProfessional(ctx, professionalRequest("omar@citamed.test", "LIC-201", "Dermatology"))
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&entity.Specialty{}).
			Where("name = ?", "Dermatology").
			Count(&count).Error)
		require.EqualValues(t, 1, count)

		var a, b entity.HealthcareProfessional
		require.NoError(t, db.Where("user_id = ?", first.UserID).First(&a).Error)
		require.NoError(t, db.Where("user_id = ?", second.UserID).First(&b).Error)
		require.Equal(t, a.SpecialtyID, b.SpecialtyID)
	})

	t.Run("case variant of a taken email aborts the professional transaction", func(t *testing.T) {
		_, err := uc.RegisterProfessional(ctx, professionalRequest("ANA@citamed.test", "LIC-300", "Neurology"))
		require.ErrorIs(t, err, ErrEmailAlreadyExists)

		// the user insert failed first, so the specialty was never created
		var count int64
		require.NoError(t, db.Model(&entity.Specialty{}).
			Where("name = ?", "Neurology").
			Count(&count).Error)
		require.EqualValues(t, 0, count)
	})
}
