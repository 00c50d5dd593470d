package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists for this appointment")
	ErrNotExamined          = errors.New("appointment has not been examined yet")
	ErrInvoiceAlreadyPaid   = errors.New("invoice has already been paid")
)

type InvoiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceDetailResponse, error)
	GetByID(ctx context.Context, id int) (*dto.InvoiceDetailResponse, error)
	List(ctx context.Context, filter repository.InvoiceFilter, page, limit int) ([]dto.InvoiceResponse, int64, error)
	Pay(ctx context.Context, id int) (*dto.InvoiceResponse, error)
}

type invoiceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	invoiceRepo     repository.InvoiceRepository
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
	settingRepo     repository.SettingRepository
	auditService    service.AuditService
}

func NewInvoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
	settingRepo repository.SettingRepository,
	auditService service.AuditService,
) InvoiceUsecase {
	return &invoiceUsecase{
		db:              db,
		log:             log,
		invoiceRepo:     invoiceRepo,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		settingRepo:     settingRepo,
		auditService:    auditService,
	}
}

// Create bills an examined visit.
//
// Flow:
// 1. Resolve the appointment for the given patient, examined and carrying the record
// 2. Reject a second invoice for the same appointment
// 3. Snapshot the consultation fee from settings
// 4. Sum the medicine fee from prescription lines at current prices
func (u *invoiceUsecase) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.DailyAppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.DailyAppointmentID, err)
		return nil, err
	}
	if appointment == nil || appointment.PatientID != req.PatientID {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsExamined() || appointment.MedicalRecordID == nil {
		return nil, ErrNotExamined
	}
	if *appointment.MedicalRecordID != req.MedicalRecordID {
		return nil, ErrMedicalRecordNotFound
	}

	existing, err := u.invoiceRepo.FindByAppointmentID(tx, req.DailyAppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing invoice: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrInvoiceAlreadyExists
	}

	fee := consultationFee(tx, u.settingRepo, u.log)

	lines, err := u.recordRepo.FindDetails(tx, *appointment.MedicalRecordID)
	if err != nil {
		u.log.Warnf("Failed to load prescription lines for record %d: %+v", *appointment.MedicalRecordID, err)
		return nil, err
	}

	medicineFee := decimal.Zero
	for i := range lines {
		medicineFee = medicineFee.Add(lines[i].LineTotal())
	}

	invoice := &entity.Invoice{
		PatientID:          appointment.PatientID,
		MedicalRecordID:    *appointment.MedicalRecordID,
		DailyAppointmentID: req.DailyAppointmentID,
		ConsultationFee:    fee,
		MedicineFee:        medicineFee,
		TotalAmount:        fee.Add(medicineFee),
		PaymentStatus:      entity.PaymentStatusPending,
	}

	if err := u.invoiceRepo.Create(tx, invoice); err != nil {
		if isDuplicateKeyError(err, "daily_appointment") {
			return nil, ErrInvoiceAlreadyExists
		}
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}

	actorID := actorIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, "invoice.create", "invoice", invoice.ID, map[string]interface{}{
		"daily_appointment_id": req.DailyAppointmentID,
		"total_amount":         invoice.TotalAmount.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), invoice.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload invoice %d: %+v", invoice.ID, err)
		return converter.InvoiceToDetailResponse(invoice), nil
	}

	u.log.Infof("Invoice created: id=%d, appointment=%d, total=%s", invoice.ID, req.DailyAppointmentID, invoice.TotalAmount)
	return converter.InvoiceToDetailResponse(full), nil
}

func (u *invoiceUsecase) GetByID(ctx context.Context, id int) (*dto.InvoiceDetailResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice %d: %+v", id, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToDetailResponse(invoice), nil
}

func (u *invoiceUsecase) List(ctx context.Context, filter repository.InvoiceFilter, page, limit int) ([]dto.InvoiceResponse, int64, error) {
	offset := (page - 1) * limit

	invoices, total, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list invoices: %+v", err)
		return nil, 0, err
	}

	return converter.InvoicesToResponses(invoices), total, nil
}

// Pay settles a pending invoice and completes the visit in one transaction.
// The guarded update makes double payment a no-op race, not a double charge.
func (u *invoiceUsecase) Pay(ctx context.Context, id int) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice %d: %+v", id, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	if invoice.IsPaid() {
		return nil, ErrInvoiceAlreadyPaid
	}

	affected, err := u.invoiceRepo.MarkPaid(tx, id)
	if err != nil {
		u.log.Warnf("Failed to mark invoice %d paid: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvoiceAlreadyPaid
	}

	if err := u.appointmentRepo.Complete(tx, invoice.DailyAppointmentID); err != nil {
		u.log.Warnf("Failed to complete appointment %d: %+v", invoice.DailyAppointmentID, err)
		return nil, err
	}

	actorID := actorIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, "invoice.pay", "invoice", id, string(entity.PaymentStatusPending), string(entity.PaymentStatusPaid)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	invoice.PaymentStatus = entity.PaymentStatusPaid
	u.log.Infof("Invoice paid: id=%d, appointment=%d, total=%s", id, invoice.DailyAppointmentID, invoice.TotalAmount)
	return converter.InvoiceToResponse(invoice), nil
}
