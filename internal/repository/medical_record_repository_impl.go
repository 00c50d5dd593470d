package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Omit("Patient", "Doctor", "Disease", "Prescriptions").Create(record).Error
}

func (r *medicalRecordRepository) CreateDetail(db *gorm.DB, detail *entity.PrescriptionDetail) error {
	return db.Omit("Medicine", "UsageMethod").Create(detail).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Patient").
		Preload("Doctor").
		Preload("Disease").
		Preload("Prescriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescription_details.id ASC")
		}).
		Preload("Prescriptions.Medicine").
		Preload("Prescriptions.UsageMethod").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByPatient(db *gorm.DB, patientID int, limit, offset int) ([]entity.MedicalRecord, int64, error) {
	var records []entity.MedicalRecord
	var total int64

	if err := db.Model(&entity.MedicalRecord{}).
		Where("patient_id = ?", patientID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Disease").
		Preload("Doctor").
		Preload("Prescriptions.Medicine").
		Preload("Prescriptions.UsageMethod").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.MedicalRecord, int64, error) {
	var records []entity.MedicalRecord
	var total int64

	if err := db.Model(&entity.MedicalRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Patient").
		Preload("Disease").
		Preload("Doctor").
		Preload("Prescriptions.Medicine").
		Preload("Prescriptions.UsageMethod").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *medicalRecordRepository) FindDetails(db *gorm.DB, recordID int) ([]entity.PrescriptionDetail, error) {
	var details []entity.PrescriptionDetail
	err := db.Preload("Medicine").
		Preload("UsageMethod").
		Where("medical_record_id = ?", recordID).
		Order("id ASC").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
