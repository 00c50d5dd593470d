package entity

import "time"

// AppointmentStatus represents the lifecycle status of a daily queue entry.
type AppointmentStatus string

const (
	AppointmentStatusWaiting   AppointmentStatus = "waiting"
	AppointmentStatusExamined  AppointmentStatus = "examined"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// ValidAppointmentStatus reports whether s is one of the three known statuses.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusWaiting, AppointmentStatusExamined, AppointmentStatusCompleted:
		return true
	}
	return false
}

// DailyAppointment is one patient's slot in a specific day's visit queue.
// A patient may appear at most once per day (unique patient_id+appointment_date).
type DailyAppointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int               `gorm:"not null;uniqueIndex:idx_patient_date" json:"patient_id"`
	AppointmentDate string            `gorm:"type:date;not null;uniqueIndex:idx_patient_date;index" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'waiting';index" json:"status"`
	MedicalRecordID *int              `gorm:"index" json:"medical_record_id,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	MedicalRecord *MedicalRecord `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
}

func (DailyAppointment) TableName() string {
	return "daily_appointments"
}

// IsWaiting checks if the entry has not been examined yet.
func (a *DailyAppointment) IsWaiting() bool {
	return a.Status == AppointmentStatusWaiting
}

// IsExamined checks if a medical record has been recorded for the entry.
func (a *DailyAppointment) IsExamined() bool {
	return a.Status == AppointmentStatusExamined
}

// IsCompleted checks if the visit has been invoiced and paid.
func (a *DailyAppointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
