package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type settingRepository struct{}

func NewSettingRepository() domainRepo.SettingRepository {
	return &settingRepository{}
}

func (r *settingRepository) FindAll(db *gorm.DB) ([]entity.SystemSetting, error) {
	var settings []entity.SystemSetting
	err := db.Order("setting_key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) FindByKey(db *gorm.DB, key string) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) UpdateValue(db *gorm.DB, key, value string) (int64, error) {
	result := db.Model(&entity.SystemSetting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value)
	return result.RowsAffected, result.Error
}
