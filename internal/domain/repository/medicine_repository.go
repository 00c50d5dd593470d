package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id int) (*entity.Medicine, error)
	FindActiveByID(db *gorm.DB, id int) (*entity.Medicine, error)
	FindByNameAndUnit(db *gorm.DB, name, unit string, excludeID int) (*entity.Medicine, error)
	FindAll(db *gorm.DB, search string, activeOnly bool, limit, offset int) ([]entity.Medicine, int64, error)
	Update(db *gorm.DB, medicine *entity.Medicine) error
}
