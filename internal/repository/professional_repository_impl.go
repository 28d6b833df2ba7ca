package repository

import (
	"errors"

	"citamed-backend/internal/domain/entity"
	domainRepo "citamed-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.HealthcareProfessional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByUserID(db *gorm.DB, userID uint) (*entity.HealthcareProfessional, error) {
	var professional entity.HealthcareProfessional
	err := db.Preload("Specialty").Where("user_id = ?", userID).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}
