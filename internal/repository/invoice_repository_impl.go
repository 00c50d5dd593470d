package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type invoiceRepository struct{}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Omit("Patient", "MedicalRecord", "DailyAppointment").Create(invoice).Error
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id int) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Preload("Patient").
		Preload("DailyAppointment").
		Preload("MedicalRecord").
		Preload("MedicalRecord.Disease").
		Preload("MedicalRecord.Doctor").
		Preload("MedicalRecord.Prescriptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("prescription_details.id ASC")
		}).
		Preload("MedicalRecord.Prescriptions.Medicine").
		Preload("MedicalRecord.Prescriptions.UsageMethod").
		Where("id = ?", id).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Where("daily_appointment_id = ?", appointmentID).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindAll(db *gorm.DB, filter domainRepo.InvoiceFilter, limit, offset int) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := db.Model(&entity.Invoice{})
	if filter.PatientID > 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.StartDate != "" {
		query = query.Where("DATE(created_at) >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("DATE(created_at) <= ?", filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Patient").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// MarkPaid guards on payment_status = pending so a concurrent double-pay
// loses cleanly with zero affected rows.
func (r *invoiceRepository) MarkPaid(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Invoice{}).
		Where("id = ? AND payment_status = ?", id, entity.PaymentStatusPending).
		Update("payment_status", entity.PaymentStatusPaid)
	return result.RowsAffected, result.Error
}
