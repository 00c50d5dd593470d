package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByPhone(db *gorm.DB, phone string, excludeID int) (*entity.Patient, error)
	Search(db *gorm.DB, search string, limit, offset int) ([]entity.Patient, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
