package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PrescriptionToResponse converts a PrescriptionDetail entity to PrescriptionLineResponse DTO
func PrescriptionToResponse(line *entity.PrescriptionDetail) *dto.PrescriptionLineResponse {
	if line == nil {
		return nil
	}

	return &dto.PrescriptionLineResponse{
		ID:              line.ID,
		MedicineID:      line.MedicineID,
		MedicineName:    line.Medicine.Name,
		Unit:            line.Medicine.Unit,
		Price:           line.Medicine.Price,
		Quantity:        line.Quantity,
		UsageMethodID:   line.UsageMethodID,
		UsageMethodName: line.UsageMethod.Name,
		Total:           line.LineTotal(),
	}
}

// PrescriptionsToResponses converts a slice of PrescriptionDetail entities to slice of PrescriptionLineResponse DTOs
func PrescriptionsToResponses(lines []entity.PrescriptionDetail) []dto.PrescriptionLineResponse {
	responses := make([]dto.PrescriptionLineResponse, len(lines))
	for i := range lines {
		resp := PrescriptionToResponse(&lines[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		Symptoms:      record.Symptoms,
		DiseaseID:     record.DiseaseID,
		Diagnosis:     record.Diagnosis,
		Status:        string(record.Status),
		DoctorID:      record.DoctorID,
		Prescriptions: PrescriptionsToResponses(record.Prescriptions),
		CreatedAt:     record.CreatedAt,
	}

	if record.Patient.ID != 0 {
		response.PatientName = record.Patient.FullName
		response.PhoneNumber = record.Patient.PhoneNumber
	}
	if record.Disease != nil {
		response.DiseaseName = record.Disease.Name
	}
	if record.Doctor != nil {
		response.DoctorName = record.Doctor.Username
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to slice of MedicalRecordResponse DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		resp := MedicalRecordToResponse(&records[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
