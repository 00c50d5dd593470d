package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.DailyAppointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.DailyAppointment, error) {
	var appointment entity.DailyAppointment
	err := db.Preload("Patient").
		Preload("MedicalRecord").
		Preload("MedicalRecord.Disease").
		Preload("MedicalRecord.Doctor").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientAndDate(db *gorm.DB, patientID int, date string) (*entity.DailyAppointment, error) {
	var appointment entity.DailyAppointment
	err := db.Where("patient_id = ? AND appointment_date = ?", patientID, date).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CountForDate(db *gorm.DB, date string) (int64, error) {
	var count int64
	err := db.Model(&entity.DailyAppointment{}).
		Where("appointment_date = ?", date).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) ListForDate(db *gorm.DB, date string) ([]entity.DailyAppointment, error) {
	var appointments []entity.DailyAppointment
	err := db.Preload("Patient").
		Preload("MedicalRecord").
		Preload("MedicalRecord.Disease").
		Preload("MedicalRecord.Doctor").
		Where("appointment_date = ?", date).
		Order("created_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) error {
	return db.Model(&entity.DailyAppointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.DailyAppointment{}, id).Error
}

// AdvanceFirstWaiting targets status = waiting so it is a no-op when the
// patient has no queued visit that day. Uniqueness of (patient, date) means
// at most one row can match.
func (r *appointmentRepository) AdvanceFirstWaiting(db *gorm.DB, patientID int, date string, medicalRecordID int) (int64, error) {
	result := db.Model(&entity.DailyAppointment{}).
		Where("patient_id = ? AND appointment_date = ? AND status = ?",
			patientID, date, entity.AppointmentStatusWaiting).
		Updates(map[string]interface{}{
			"status":            entity.AppointmentStatusExamined,
			"medical_record_id": medicalRecordID,
		})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Complete(db *gorm.DB, id int) error {
	return db.Model(&entity.DailyAppointment{}).
		Where("id = ?", id).
		Update("status", entity.AppointmentStatusCompleted).Error
}
