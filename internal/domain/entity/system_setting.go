package entity

import "time"

// Setting keys consumed by the workflow core, with their fallback defaults
// used when the row is absent.
const (
	SettingMaxPatientsPerDay = "max_patients_per_day"
	SettingConsultationFee   = "consultation_fee"

	DefaultMaxPatientsPerDay = 50
	DefaultConsultationFee   = "100000"
)

// SystemSetting is a key/value tunable read fresh on every workflow call.
type SystemSetting struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SettingKey   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"setting_key"`
	SettingValue string    `gorm:"type:text;not null" json:"setting_value"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
