package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.DailyAppointment) error
	FindByID(db *gorm.DB, id int) (*entity.DailyAppointment, error)
	FindByPatientAndDate(db *gorm.DB, patientID int, date string) (*entity.DailyAppointment, error)
	CountForDate(db *gorm.DB, date string) (int64, error)
	ListForDate(db *gorm.DB, date string) ([]entity.DailyAppointment, error)
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) error
	Delete(db *gorm.DB, id int) error

	// AdvanceFirstWaiting moves the patient's waiting entry for the given
	// date to examined and attaches the medical record. Returns affected
	// rows: 0 means the patient had no waiting entry that day.
	AdvanceFirstWaiting(db *gorm.DB, patientID int, date string, medicalRecordID int) (int64, error)

	// Complete marks an appointment completed (invoice payment side effect).
	Complete(db *gorm.DB, id int) error
}
