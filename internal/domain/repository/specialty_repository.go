package repository

import (
	"citamed-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	// ResolveOrCreate returns the specialty with the given name, creating it
	// if absent. Safe against concurrent first-time inserts of the same name.
	ResolveOrCreate(db *gorm.DB, name string) (*entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
}
