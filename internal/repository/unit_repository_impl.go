package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type unitRepository struct{}

func NewUnitRepository() domainRepo.UnitRepository {
	return &unitRepository{}
}

func (r *unitRepository) Create(db *gorm.DB, unit *entity.Unit) error {
	return db.Create(unit).Error
}

func (r *unitRepository) FindByID(db *gorm.DB, id int) (*entity.Unit, error) {
	var unit entity.Unit
	err := db.Where("id = ?", id).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindAll(db *gorm.DB, activeOnly bool, limit, offset int) ([]entity.Unit, int64, error) {
	var units []entity.Unit
	var total int64

	query := db.Model(&entity.Unit{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&units).Error
	if err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

func (r *unitRepository) Update(db *gorm.DB, unit *entity.Unit) error {
	return db.Save(unit).Error
}
