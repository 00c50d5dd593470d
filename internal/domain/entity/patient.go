package entity

import "time"

// Gender values accepted for a patient.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient is registered once by reception staff and never hard-deleted.
type Patient struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName    string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Gender      string    `gorm:"type:varchar(10);not null" json:"gender"`
	BirthYear   int       `gorm:"not null" json:"birth_year"`
	Address     string    `gorm:"type:text" json:"address"`
	PhoneNumber string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"phone_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
