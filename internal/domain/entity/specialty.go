package entity

// Specialty is a shared, deduplicated medical specialty referenced by
// professional records. Rows are created lazily the first time a
// professional registers with a name not yet present.
type Specialty struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	// Relationships
	Professionals []HealthcareProfessional `gorm:"foreignKey:SpecialtyID" json:"professionals,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}
