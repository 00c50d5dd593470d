package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	CreateDetail(db *gorm.DB, detail *entity.PrescriptionDetail) error
	FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error)
	FindByPatient(db *gorm.DB, patientID int, limit, offset int) ([]entity.MedicalRecord, int64, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.MedicalRecord, int64, error)
	FindDetails(db *gorm.DB, recordID int) ([]entity.PrescriptionDetail, error)
}
