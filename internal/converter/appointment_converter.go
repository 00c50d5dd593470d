package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// AppointmentToResponse converts a DailyAppointment entity to AppointmentResponse DTO.
// Patient identity is flattened into the response for queue display, and the
// examination fields are filled once a medical record is attached.
func AppointmentToResponse(appointment *entity.DailyAppointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          string(appointment.Status),
		MedicalRecordID: appointment.MedicalRecordID,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Patient.ID != 0 {
		response.FullName = appointment.Patient.FullName
		response.Gender = appointment.Patient.Gender
		response.BirthYear = appointment.Patient.BirthYear
		response.PhoneNumber = appointment.Patient.PhoneNumber
	}

	if record := appointment.MedicalRecord; record != nil {
		response.Symptoms = record.Symptoms
		response.Diagnosis = record.Diagnosis
		if record.Disease != nil {
			response.DiseaseName = record.Disease.Name
		}
		if record.Doctor != nil {
			response.DoctorName = record.Doctor.Username
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of DailyAppointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.DailyAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
