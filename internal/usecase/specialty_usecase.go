package usecase

import (
	"context"
	"encoding/json"
	"time"

	"citamed-backend/internal/converter"
	"citamed-backend/internal/delivery/dto"
	"citamed-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SpecialtyCacheKey holds the cached public specialty directory. The key is
// invalidated when a professional registration creates a new specialty.
const SpecialtyCacheKey = "specialties:all"

const specialtyCacheTTL = 5 * time.Minute

type SpecialtyUsecase interface {
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	redisClient   *redis.Client
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	redisClient *redis.Client,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
		redisClient:   redisClient,
	}
}

// ListSpecialties serves the registration form's specialty picker. Reads go
// through the Redis cache; any cache failure falls back to the database.
func (u *specialtyUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	cached, err := u.redisClient.Get(ctx, SpecialtyCacheKey).Result()
	if err == nil {
		var resp dto.SpecialtyListResponse
		decodeErr := json.Unmarshal([]byte(cached), &resp)
		if decodeErr == nil {
			return &resp, nil
		}
		u.log.Warnf("Failed to decode cached specialties, falling back to DB: %+v", decodeErr)
	} else if err != redis.Nil {
		u.log.Warnf("Failed to read specialty cache: %+v", err)
	}

	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	resp := &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := u.redisClient.Set(ctx, SpecialtyCacheKey, payload, specialtyCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to store specialty cache: %+v", err)
		}
	}

	return resp, nil
}
