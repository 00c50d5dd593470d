package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DiseaseRepository interface {
	Create(db *gorm.DB, disease *entity.Disease) error
	FindByID(db *gorm.DB, id int) (*entity.Disease, error)
	FindActiveByID(db *gorm.DB, id int) (*entity.Disease, error)
	FindAll(db *gorm.DB, search string, activeOnly bool, limit, offset int) ([]entity.Disease, int64, error)
	Update(db *gorm.DB, disease *entity.Disease) error
}
