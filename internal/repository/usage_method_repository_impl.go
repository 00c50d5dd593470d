package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type usageMethodRepository struct{}

func NewUsageMethodRepository() domainRepo.UsageMethodRepository {
	return &usageMethodRepository{}
}

func (r *usageMethodRepository) Create(db *gorm.DB, method *entity.UsageMethod) error {
	return db.Create(method).Error
}

func (r *usageMethodRepository) FindByID(db *gorm.DB, id int) (*entity.UsageMethod, error) {
	var method entity.UsageMethod
	err := db.Where("id = ?", id).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *usageMethodRepository) FindActiveByID(db *gorm.DB, id int) (*entity.UsageMethod, error) {
	var method entity.UsageMethod
	err := db.Where("id = ? AND is_active = ?", id, true).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

func (r *usageMethodRepository) FindAll(db *gorm.DB, activeOnly bool, limit, offset int) ([]entity.UsageMethod, int64, error) {
	var methods []entity.UsageMethod
	var total int64

	query := db.Model(&entity.UsageMethod{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&methods).Error
	if err != nil {
		return nil, 0, err
	}
	return methods, total, nil
}

func (r *usageMethodRepository) Update(db *gorm.DB, method *entity.UsageMethod) error {
	return db.Save(method).Error
}
