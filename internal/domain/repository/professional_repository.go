package repository

import (
	"citamed-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.HealthcareProfessional) error
	FindByUserID(db *gorm.DB, userID uint) (*entity.HealthcareProfessional, error)
}
