package repository

import (
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) DailyRevenue(db *gorm.DB, month, year int) ([]domainRepo.DailyRevenueRow, error) {
	var rows []domainRepo.DailyRevenueRow
	err := db.Raw(`
		SELECT
			DATE(created_at) AS date,
			COUNT(*) AS patient_count,
			SUM(consultation_fee) AS total_consultation_fee,
			SUM(medicine_fee) AS total_medicine_fee,
			SUM(total_amount) AS total_revenue
		FROM invoices
		WHERE EXTRACT(MONTH FROM created_at) = ?
			AND EXTRACT(YEAR FROM created_at) = ?
			AND payment_status = 'paid'
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at)`, month, year).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) MonthlyRevenueSummary(db *gorm.DB, month, year int) (*domainRepo.RevenueSummary, error) {
	var summary domainRepo.RevenueSummary
	err := db.Raw(`
		SELECT
			COUNT(*) AS total_patients,
			COALESCE(SUM(consultation_fee), 0) AS total_consultation_fee,
			COALESCE(SUM(medicine_fee), 0) AS total_medicine_fee,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(AVG(total_amount), 0) AS average_revenue_per_patient
		FROM invoices
		WHERE EXTRACT(MONTH FROM created_at) = ?
			AND EXTRACT(YEAR FROM created_at) = ?
			AND payment_status = 'paid'`, month, year).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *reportRepository) MedicineUsage(db *gorm.DB, month, year int) ([]domainRepo.MedicineUsageRow, error) {
	var rows []domainRepo.MedicineUsageRow
	err := db.Raw(`
		SELECT
			m.name AS medicine_name,
			m.unit,
			SUM(pd.quantity) AS total_quantity_used,
			COUNT(DISTINCT pd.medical_record_id) AS prescription_count,
			ROUND(AVG(pd.quantity), 2) AS average_quantity_per_prescription,
			SUM(pd.quantity * m.price) AS total_value
		FROM prescription_details pd
		JOIN medicines m ON pd.medicine_id = m.id
		JOIN medical_records mr ON pd.medical_record_id = mr.id
		WHERE EXTRACT(MONTH FROM mr.created_at) = ?
			AND EXTRACT(YEAR FROM mr.created_at) = ?
		GROUP BY m.id, m.name, m.unit
		ORDER BY total_quantity_used DESC`, month, year).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) MedicineUsageSummary(db *gorm.DB, month, year int) (*domainRepo.MedicineUsageSummary, error) {
	var summary domainRepo.MedicineUsageSummary
	err := db.Raw(`
		SELECT
			COUNT(DISTINCT m.id) AS unique_medicines_used,
			COALESCE(SUM(pd.quantity), 0) AS total_medicines_dispensed,
			COALESCE(SUM(pd.quantity * m.price), 0) AS total_medicine_value,
			COUNT(DISTINCT pd.medical_record_id) AS total_prescriptions
		FROM prescription_details pd
		JOIN medicines m ON pd.medicine_id = m.id
		JOIN medical_records mr ON pd.medical_record_id = mr.id
		WHERE EXTRACT(MONTH FROM mr.created_at) = ?
			AND EXTRACT(YEAR FROM mr.created_at) = ?`, month, year).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *reportRepository) PatientStats(db *gorm.DB, startDate, endDate string) (*domainRepo.PatientStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT da.patient_id) AS total_patients,
			COUNT(*) AS total_appointments,
			COUNT(CASE WHEN da.status = 'completed' THEN 1 END) AS completed_appointments,
			COUNT(CASE WHEN da.status = 'waiting' THEN 1 END) AS waiting_appointments,
			COUNT(CASE WHEN da.status = 'examined' THEN 1 END) AS examined_appointments,
			COUNT(CASE WHEN p.gender = 'male' THEN 1 END) AS male_patients,
			COUNT(CASE WHEN p.gender = 'female' THEN 1 END) AS female_patients
		FROM daily_appointments da
		LEFT JOIN patients p ON da.patient_id = p.id`

	var stats domainRepo.PatientStats
	var err error
	if startDate != "" && endDate != "" {
		err = db.Raw(query+` WHERE da.appointment_date BETWEEN ? AND ?`, startDate, endDate).Scan(&stats).Error
	} else {
		err = db.Raw(query).Scan(&stats).Error
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) AgeGroups(db *gorm.DB, startDate, endDate string) ([]domainRepo.AgeGroupRow, error) {
	filter := ""
	args := []interface{}{}
	if startDate != "" && endDate != "" {
		filter = "WHERE da.appointment_date BETWEEN ? AND ?"
		args = append(args, startDate, endDate)
	}

	var rows []domainRepo.AgeGroupRow
	err := db.Raw(`
		WITH age_groups AS (
			SELECT
				da.patient_id,
				CASE
					WHEN p.birth_year IS NULL THEN 'Unknown'
					WHEN EXTRACT(YEAR FROM CURRENT_DATE) - p.birth_year < 18 THEN 'Under 18'
					WHEN EXTRACT(YEAR FROM CURRENT_DATE) - p.birth_year BETWEEN 18 AND 30 THEN '18-30'
					WHEN EXTRACT(YEAR FROM CURRENT_DATE) - p.birth_year BETWEEN 31 AND 50 THEN '31-50'
					WHEN EXTRACT(YEAR FROM CURRENT_DATE) - p.birth_year BETWEEN 51 AND 70 THEN '51-70'
					ELSE 'Over 70'
				END AS age_group
			FROM daily_appointments da
			LEFT JOIN patients p ON da.patient_id = p.id
			`+filter+`
		)
		SELECT age_group, COUNT(DISTINCT patient_id) AS patient_count
		FROM age_groups
		GROUP BY age_group
		ORDER BY
			CASE age_group
				WHEN 'Under 18' THEN 1
				WHEN '18-30' THEN 2
				WHEN '31-50' THEN 3
				WHEN '51-70' THEN 4
				WHEN 'Over 70' THEN 5
				WHEN 'Unknown' THEN 6
			END`, args...).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) AppointmentStats(db *gorm.DB, date string) (*domainRepo.AppointmentStats, error) {
	var stats domainRepo.AppointmentStats
	err := db.Raw(`
		SELECT
			COUNT(*) AS total_appointments,
			COUNT(CASE WHEN status = 'waiting' THEN 1 END) AS waiting_count,
			COUNT(CASE WHEN status = 'examined' THEN 1 END) AS examined_count,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_count
		FROM daily_appointments
		WHERE appointment_date = ?`, date).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) AppointmentStatsForRange(db *gorm.DB, startDate, endDate string) (*domainRepo.MonthlyAppointmentStats, error) {
	var stats domainRepo.MonthlyAppointmentStats
	err := db.Raw(`
		SELECT
			COUNT(*) AS total_appointments,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_count
		FROM daily_appointments
		WHERE appointment_date >= ? AND appointment_date <= ?`, startDate, endDate).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) RevenueForDate(db *gorm.DB, date string) (*domainRepo.RevenueStats, error) {
	var stats domainRepo.RevenueStats
	err := db.Raw(`
		SELECT
			COUNT(*) AS invoices_count,
			COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM invoices
		WHERE DATE(created_at) = ? AND payment_status = 'paid'`, date).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) RevenueForMonth(db *gorm.DB, month, year int) (*domainRepo.RevenueStats, error) {
	var stats domainRepo.RevenueStats
	err := db.Raw(`
		SELECT
			COUNT(*) AS invoices_count,
			COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM invoices
		WHERE EXTRACT(MONTH FROM created_at) = ?
			AND EXTRACT(YEAR FROM created_at) = ?
			AND payment_status = 'paid'`, month, year).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
