package repository

import (
	"clinic-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

// InvoiceFilter narrows the invoice listing. Zero values mean "no filter".
type InvoiceFilter struct {
	PatientID     int
	PaymentStatus string
	StartDate     string
	EndDate       string
}

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindByID(db *gorm.DB, id int) (*entity.Invoice, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Invoice, error)
	FindAll(db *gorm.DB, filter InvoiceFilter, limit, offset int) ([]entity.Invoice, int64, error)

	// MarkPaid flips payment_status to paid only while still pending.
	// Returns affected rows: 0 means the invoice was already paid.
	MarkPaid(db *gorm.DB, id int) (int64, error)
}
