package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UnitRepository interface {
	Create(db *gorm.DB, unit *entity.Unit) error
	FindByID(db *gorm.DB, id int) (*entity.Unit, error)
	FindAll(db *gorm.DB, activeOnly bool, limit, offset int) ([]entity.Unit, int64, error)
	Update(db *gorm.DB, unit *entity.Unit) error
}
