package usecase

import (
	"io"
	"testing"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/repository"
	"clinic-management-api/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Medicine{},
		&entity.Disease{},
		&entity.Unit{},
		&entity.UsageMethod{},
		&entity.MedicalRecord{},
		&entity.PrescriptionDetail{},
		&entity.DailyAppointment{},
		&entity.Invoice{},
		&entity.SystemSetting{},
		&entity.AuditLog{},
	))

	seedSettings(t, db)

	return db
}

func seedSettings(t *testing.T, db *gorm.DB) {
	t.Helper()

	settings := []entity.SystemSetting{
		{SettingKey: entity.SettingMaxPatientsPerDay, SettingValue: "50"},
		{SettingKey: entity.SettingConsultationFee, SettingValue: "100000"},
	}
	require.NoError(t, db.Create(&settings).Error)
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func createTestPatient(t *testing.T, db *gorm.DB, name, phone string) *entity.Patient {
	t.Helper()

	patient := &entity.Patient{
		FullName:    name,
		Gender:      entity.GenderFemale,
		BirthYear:   1990,
		PhoneNumber: phone,
	}
	require.NoError(t, db.Create(patient).Error)
	return patient
}

func createTestMedicine(t *testing.T, db *gorm.DB, name, unit, price string) *entity.Medicine {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	medicine := &entity.Medicine{
		Name:     name,
		Unit:     unit,
		Price:    p,
		IsActive: true,
	}
	require.NoError(t, db.Create(medicine).Error)
	return medicine
}

func createTestUsageMethod(t *testing.T, db *gorm.DB, name string) *entity.UsageMethod {
	t.Helper()

	method := &entity.UsageMethod{Name: name, IsActive: true}
	require.NoError(t, db.Create(method).Error)
	return method
}

func createTestDisease(t *testing.T, db *gorm.DB, name string) *entity.Disease {
	t.Helper()

	disease := &entity.Disease{Name: name, IsActive: true}
	require.NoError(t, db.Create(disease).Error)
	return disease
}

func setSetting(t *testing.T, db *gorm.DB, key, value string) {
	t.Helper()

	err := db.Model(&entity.SystemSetting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value).Error
	require.NoError(t, err)
}
