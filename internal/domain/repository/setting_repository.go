package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SettingRepository interface {
	FindAll(db *gorm.DB) ([]entity.SystemSetting, error)
	FindByKey(db *gorm.DB, key string) (*entity.SystemSetting, error)
	UpdateValue(db *gorm.DB, key, value string) (int64, error)
}
