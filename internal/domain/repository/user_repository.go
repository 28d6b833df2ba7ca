package repository

import (
	"citamed-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository takes the *gorm.DB handle per call so the registration
// usecases can pass their transaction instead of the root connection.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
}
