package entity

import (
	"strings"
	"time"
)

// RecordStatus represents the derived status of a medical record.
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

// MedicalRecord is the clinical note produced by a doctor's examination.
type MedicalRecord struct {
	ID        int          `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int          `gorm:"not null;index" json:"patient_id"`
	DoctorID  *int         `gorm:"index" json:"doctor_id,omitempty"`
	Symptoms  string       `gorm:"type:text;not null" json:"symptoms"`
	DiseaseID *int         `gorm:"index" json:"disease_id,omitempty"`
	Diagnosis string       `gorm:"type:text" json:"diagnosis,omitempty"`
	Status    RecordStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient              `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        *User                `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Disease       *Disease             `gorm:"foreignKey:DiseaseID" json:"disease,omitempty"`
	Prescriptions []PrescriptionDetail `gorm:"foreignKey:MedicalRecordID" json:"prescriptions,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// DeriveRecordStatus returns completed when a non-blank diagnosis is present.
func DeriveRecordStatus(diagnosis string) RecordStatus {
	if strings.TrimSpace(diagnosis) != "" {
		return RecordStatusCompleted
	}
	return RecordStatusPending
}
