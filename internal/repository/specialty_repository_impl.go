package repository

import (
	"citamed-backend/internal/domain/entity"
	domainRepo "citamed-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

// ResolveOrCreate inserts with ON CONFLICT DO NOTHING on the unique name
// column and re-fetches when the insert was swallowed. A SELECT-then-INSERT
// would race under concurrent first-time registrations of the same name;
// letting the constraint arbitrate avoids duplicate rows without aborting
// the surrounding transaction.
func (r *specialtyRepository) ResolveOrCreate(db *gorm.DB, name string) (*entity.Specialty, error) {
	specialty := &entity.Specialty{Name: name}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(specialty).Error
	if err != nil {
		return nil, err
	}

	// Conflict path: no id was generated, the row already exists
	if specialty.ID == 0 {
		if err := db.Where("name = ?", name).First(specialty).Error; err != nil {
			return nil, err
		}
	}

	return specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}
