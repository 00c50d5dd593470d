package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// InvoiceToResponse converts an Invoice entity to InvoiceResponse DTO
func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	response := &dto.InvoiceResponse{
		ID:                 invoice.ID,
		PatientID:          invoice.PatientID,
		MedicalRecordID:    invoice.MedicalRecordID,
		DailyAppointmentID: invoice.DailyAppointmentID,
		ConsultationFee:    invoice.ConsultationFee,
		MedicineFee:        invoice.MedicineFee,
		TotalAmount:        invoice.TotalAmount,
		PaymentStatus:      string(invoice.PaymentStatus),
		CreatedAt:          invoice.CreatedAt,
		UpdatedAt:          invoice.UpdatedAt,
	}

	if invoice.Patient.ID != 0 {
		response.PatientName = invoice.Patient.FullName
		response.PhoneNumber = invoice.Patient.PhoneNumber
	}

	return response
}

// InvoiceToDetailResponse converts an Invoice entity with its loaded medical
// record into an InvoiceDetailResponse DTO including prescription line totals.
func InvoiceToDetailResponse(invoice *entity.Invoice) *dto.InvoiceDetailResponse {
	if invoice == nil {
		return nil
	}

	response := &dto.InvoiceDetailResponse{
		InvoiceResponse: *InvoiceToResponse(invoice),
		Diagnosis:       invoice.MedicalRecord.Diagnosis,
		Prescriptions:   PrescriptionsToResponses(invoice.MedicalRecord.Prescriptions),
	}

	if invoice.MedicalRecord.Disease != nil {
		response.DiseaseName = invoice.MedicalRecord.Disease.Name
	}

	return response
}

// InvoicesToResponses converts a slice of Invoice entities to slice of InvoiceResponse DTOs
func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		resp := InvoiceToResponse(&invoices[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
