package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UsageMethodRepository interface {
	Create(db *gorm.DB, method *entity.UsageMethod) error
	FindByID(db *gorm.DB, id int) (*entity.UsageMethod, error)
	FindActiveByID(db *gorm.DB, id int) (*entity.UsageMethod, error)
	FindAll(db *gorm.DB, activeOnly bool, limit, offset int) ([]entity.UsageMethod, int64, error)
	Update(db *gorm.DB, method *entity.UsageMethod) error
}
