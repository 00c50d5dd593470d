package usecase

import (
	"context"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPatientUsecase(db *gorm.DB) PatientUsecase {
	return NewPatientUsecase(db, newTestLogger(), repository.NewPatientRepository())
}

func TestCreatePatient(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)

	resp, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FullName:    "Jane Roe",
		Gender:      "female",
		BirthYear:   1987,
		Address:     "12 Clinic Street",
		PhoneNumber: "0811111111",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Jane Roe", resp.FullName)
	assert.Equal(t, "0811111111", resp.PhoneNumber)
}

func TestCreatePatientRejectsDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()

	createTestPatient(t, db, "Jane Roe", "0811111111")

	_, err := uc.Create(ctx, &dto.CreatePatientRequest{
		FullName:    "John Doe",
		Gender:      "male",
		BirthYear:   1990,
		PhoneNumber: "0811111111",
	})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestGetPatientNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestSearchPatients(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()

	createTestPatient(t, db, "Jane Roe", "0811111111")
	createTestPatient(t, db, "John Doe", "0822222222")
	createTestPatient(t, db, "Janet Smith", "0833333333")

	results, total, err := uc.Search(ctx, "jan", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, results, 2)

	// Phone number lookup is part of the same search box
	results, total, err = uc.Search(ctx, "0822222222", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "John Doe", results[0].FullName)

	_, total, err = uc.Search(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestUpdatePatientMergesFields(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()

	patient := createTestPatient(t, db, "Jane Roe", "0811111111")

	newName := "Jane Roe-Smith"
	newAddress := "34 New Street"
	resp, err := uc.Update(ctx, patient.ID, &dto.UpdatePatientRequest{
		FullName: &newName,
		Address:  &newAddress,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe-Smith", resp.FullName)
	assert.Equal(t, "34 New Street", resp.Address)
	// Untouched fields survive the partial update
	assert.Equal(t, "0811111111", resp.PhoneNumber)
	assert.Equal(t, 1990, resp.BirthYear)
}

func TestUpdatePatientRejectsTakenPhone(t *testing.T) {
	db := newTestDB(t)
	uc := newPatientUsecase(db)
	ctx := context.Background()

	createTestPatient(t, db, "Jane Roe", "0811111111")
	other := createTestPatient(t, db, "John Doe", "0822222222")

	taken := "0811111111"
	_, err := uc.Update(ctx, other.ID, &dto.UpdatePatientRequest{PhoneNumber: &taken})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)

	// Re-submitting the patient's own number is not a conflict
	own := "0822222222"
	_, err = uc.Update(ctx, other.ID, &dto.UpdatePatientRequest{PhoneNumber: &own})
	assert.NoError(t, err)
}
