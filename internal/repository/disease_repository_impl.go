package repository

import (
	"errors"
	"strings"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type diseaseRepository struct{}

func NewDiseaseRepository() domainRepo.DiseaseRepository {
	return &diseaseRepository{}
}

func (r *diseaseRepository) Create(db *gorm.DB, disease *entity.Disease) error {
	return db.Create(disease).Error
}

func (r *diseaseRepository) FindByID(db *gorm.DB, id int) (*entity.Disease, error) {
	var disease entity.Disease
	err := db.Where("id = ?", id).First(&disease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}

func (r *diseaseRepository) FindActiveByID(db *gorm.DB, id int) (*entity.Disease, error) {
	var disease entity.Disease
	err := db.Where("id = ? AND is_active = ?", id, true).First(&disease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}

func (r *diseaseRepository) FindAll(db *gorm.DB, search string, activeOnly bool, limit, offset int) ([]entity.Disease, int64, error) {
	var diseases []entity.Disease
	var total int64

	query := db.Model(&entity.Disease{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&diseases).Error
	if err != nil {
		return nil, 0, err
	}
	return diseases, total, nil
}

func (r *diseaseRepository) Update(db *gorm.DB, disease *entity.Disease) error {
	return db.Save(disease).Error
}
