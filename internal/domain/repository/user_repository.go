package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindAll(db *gorm.DB, role string, limit, offset int) ([]entity.User, int64, error)
	Update(db *gorm.DB, user *entity.User) error
}
