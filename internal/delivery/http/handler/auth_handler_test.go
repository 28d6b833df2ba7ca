package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/delivery/http/handler"
	"citamed-backend/internal/usecase"
	"citamed-backend/pkg/response"
	"citamed-backend/pkg/validator"

	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase satisfies usecase.AuthUsecase with per-test function fields.
type fakeAuthUsecase struct {
	registerPatient      func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error)
	registerProfessional func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error)
	login                func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	recoverPassword      func(ctx context.Context, email string) error
}

func (f *fakeAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
	return f.registerPatient(ctx, req)
}

func (f *fakeAuthUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
	return f.registerProfessional(ctx, req)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.login(ctx, req)
}

func (f *fakeAuthUsecase) RecoverPassword(ctx context.Context, email string) error {
	return f.recoverPassword(ctx, email)
}

func newAuthHandler(fake *fakeAuthUsecase) *handler.AuthHandler {
	return handler.NewAuthHandler(fake, validator.NewValidator())
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

const patientBody = `{
	"firstName": "Ana",
	"lastName": "Ruiz",
	"email": "ana@example.com",
	"password": "longenough1",
	"gender": "female"
}`

func TestLogin(t *testing.T) {
	t.Run("valid credentials return token and sanitized user", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			login: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
				return &dto.LoginResponse{
					Token: "signed-token",
					User: &dto.UserResponse{
						UserID:    42,
						Email:     req.Email,
						FirstName: "Ana",
						LastName:  "Ruiz",
						Role:      "Patient",
					},
				}, nil
			},
		})

		rec := postJSON(t, h.Login, "/auth/login", `{"email":"ana@example.com","password":"longenough1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode(t, rec)
		require.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		require.Equal(t, "signed-token", data["token"])
		user := data["user"].(map[string]interface{})
		require.Equal(t, "Patient", user["role"])
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			login: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
				return nil, usecase.ErrInvalidCredentials
			},
		})

		unknown := postJSON(t, h.Login, "/auth/login", `{"email":"ghost@example.com","password":"longenough1"}`)
		wrongPw := postJSON(t, h.Login, "/auth/login", `{"email":"ana@example.com","password":"wrongpassword"}`)

		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
		require.Equal(t, decode(t, unknown).Message, decode(t, wrongPw).Message)
	})

	t.Run("validation errors are rejected before the usecase runs", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			login: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
				t.Fatal("usecase must not run")
				return nil, nil
			},
		})

		rec := postJSON(t, h.Login, "/auth/login", `{"email":"not-an-email","password":"short"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure returns an opaque 500", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			login: func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
				return nil, errors.New("connection refused")
			},
		})

		rec := postJSON(t, h.Login, "/auth/login", `{"email":"ana@example.com","password":"longenough1"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestRegisterPatient(t *testing.T) {
	t.Run("valid payload returns 201 with the new user id", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			registerPatient: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
				return &dto.RegisterResponse{UserID: 7}, nil
			},
		})

		rec := postJSON(t, h.RegisterPatient, "/auth/register/patient", patientBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		data := decode(t, rec).Data.(map[string]interface{})
		require.Equal(t, float64(7), data["userId"])
	})

	t.Run("spanish gender values are normalized before validation", func(t *testing.T) {
		var gotGender string
		h := newAuthHandler(&fakeAuthUsecase{
			registerPatient: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
				gotGender = req.Gender
				return &dto.RegisterResponse{UserID: 1}, nil
			},
		})

		body := strings.Replace(patientBody, `"female"`, `"femenino"`, 1)
		rec := postJSON(t, h.RegisterPatient, "/auth/register/patient", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "female", gotGender)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			registerPatient: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
		})

		rec := postJSON(t, h.RegisterPatient, "/auth/register/patient", patientBody)
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid date of birth returns 400", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			registerPatient: func(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterResponse, error) {
				return nil, usecase.ErrInvalidDateFormat
			},
		})

		rec := postJSON(t, h.RegisterPatient, "/auth/register/patient", patientBody)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{})
		rec := postJSON(t, h.RegisterPatient, "/auth/register/patient", `{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegisterProfessional(t *testing.T) {
	const professionalBody = `{
		"firstName": "Luis",
		"lastName": "Mora",
		"email": "luis@example.com",
		"password": "longenough1",
		"gender": "male",
		"specialty": "Cardiology",
		"licenseNumber": "LIC-001",
		"consultationFee": "50.00"
	}`

	t.Run("valid payload returns 201", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			registerProfessional: func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
				require.Equal(t, "Cardiology", req.Specialty)
				return &dto.RegisterResponse{UserID: 9}, nil
			},
		})

		rec := postJSON(t, h.RegisterProfessional, "/auth/register/professional", professionalBody)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate email and duplicate license are distinguishable", func(t *testing.T) {
		emailConflict := newAuthHandler(&fakeAuthUsecase{
			registerProfessional: func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
		})
		licenseConflict := newAuthHandler(&fakeAuthUsecase{
			registerProfessional: func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
				return nil, usecase.ErrLicenseAlreadyExists
			},
		})

		emailRec := postJSON(t, emailConflict.RegisterProfessional, "/auth/register/professional", professionalBody)
		licenseRec := postJSON(t, licenseConflict.RegisterProfessional, "/auth/register/professional", professionalBody)

		require.Equal(t, http.StatusConflict, emailRec.Code)
		require.Equal(t, http.StatusConflict, licenseRec.Code)
		require.NotEqual(t, decode(t, emailRec).Message, decode(t, licenseRec).Message)
	})

	t.Run("invalid consultation fee returns 400", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			registerProfessional: func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
				return nil, usecase.ErrInvalidConsultationFee
			},
		})

		rec := postJSON(t, h.RegisterProfessional, "/auth/register/professional", professionalBody)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing specialty returns 400", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			registerProfessional: func(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.RegisterResponse, error) {
				t.Fatal("usecase must not run")
				return nil, nil
			},
		})

		body := strings.Replace(professionalBody, `"Cardiology"`, `""`, 1)
		rec := postJSON(t, h.RegisterProfessional, "/auth/register/professional", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecoverPassword(t *testing.T) {
	t.Run("registered email returns 200", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			recoverPassword: func(ctx context.Context, email string) error { return nil },
		})

		rec := postJSON(t, h.RecoverPassword, "/auth/recover-password", `{"email":"ana@example.com"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{
			recoverPassword: func(ctx context.Context, email string) error { return usecase.ErrUserNotFound },
		})

		rec := postJSON(t, h.RecoverPassword, "/auth/recover-password", `{"email":"ghost@example.com"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		h := newAuthHandler(&fakeAuthUsecase{})
		rec := postJSON(t, h.RecoverPassword, "/auth/recover-password", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
