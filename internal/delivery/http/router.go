package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	medicineHandler      *handler.MedicineHandler
	referenceHandler     *handler.ReferenceHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	invoiceHandler       *handler.InvoiceHandler
	userHandler          *handler.UserHandler
	settingHandler       *handler.SettingHandler
	reportHandler        *handler.ReportHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	medicineHandler *handler.MedicineHandler,
	referenceHandler *handler.ReferenceHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	invoiceHandler *handler.InvoiceHandler,
	userHandler *handler.UserHandler,
	settingHandler *handler.SettingHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		patientHandler:       patientHandler,
		medicineHandler:      medicineHandler,
		referenceHandler:     referenceHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		invoiceHandler:       invoiceHandler,
		userHandler:          userHandler,
		settingHandler:       settingHandler,
		reportHandler:        reportHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Reception desk: patients, queue and billing
	reception := api.PathPrefix("").Subrouter()
	reception.Use(r.authMiddleware.Authenticate)
	reception.Use(middleware.RequireReception)

	reception.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	reception.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)

	reception.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	reception.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	reception.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	reception.HandleFunc("/invoices", r.invoiceHandler.Create).Methods(http.MethodPost)
	reception.HandleFunc("/invoices/{id}/pay", r.invoiceHandler.Pay).Methods(http.MethodPut)

	// Examination room: records are written and read by doctors
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/medical-records", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.GetByID).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/medical-records", r.medicalRecordHandler.ListByPatient).Methods(http.MethodGet)

	// Read endpoints shared by all staff
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	staff.HandleFunc("/patients", r.patientHandler.Search).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)

	staff.HandleFunc("/appointments/daily", r.appointmentHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/stats", r.appointmentHandler.Stats).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)

	staff.HandleFunc("/invoices", r.invoiceHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/invoices/{id}", r.invoiceHandler.GetByID).Methods(http.MethodGet)

	staff.HandleFunc("/reports/dashboard", r.reportHandler.Dashboard).Methods(http.MethodGet)

	staff.HandleFunc("/medicines", r.medicineHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/medicines/{id}", r.medicineHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/diseases", r.referenceHandler.ListDiseases).Methods(http.MethodGet)
	staff.HandleFunc("/units", r.referenceHandler.ListUnits).Methods(http.MethodGet)
	staff.HandleFunc("/usage-methods", r.referenceHandler.ListUsageMethods).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Reference data management (admin)
	admin.HandleFunc("/medicines", r.medicineHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.Deactivate).Methods(http.MethodDelete)
	admin.HandleFunc("/diseases", r.referenceHandler.CreateDisease).Methods(http.MethodPost)
	admin.HandleFunc("/diseases/{id}", r.referenceHandler.UpdateDisease).Methods(http.MethodPut)
	admin.HandleFunc("/diseases/{id}", r.referenceHandler.DeactivateDisease).Methods(http.MethodDelete)
	admin.HandleFunc("/units", r.referenceHandler.CreateUnit).Methods(http.MethodPost)
	admin.HandleFunc("/units/{id}", r.referenceHandler.UpdateUnit).Methods(http.MethodPut)
	admin.HandleFunc("/units/{id}", r.referenceHandler.DeactivateUnit).Methods(http.MethodDelete)
	admin.HandleFunc("/usage-methods", r.referenceHandler.CreateUsageMethod).Methods(http.MethodPost)
	admin.HandleFunc("/usage-methods/{id}", r.referenceHandler.UpdateUsageMethod).Methods(http.MethodPut)
	admin.HandleFunc("/usage-methods/{id}", r.referenceHandler.DeactivateUsageMethod).Methods(http.MethodDelete)

	// Staff account management (admin)
	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Deactivate).Methods(http.MethodDelete)

	// System settings (admin)
	admin.HandleFunc("/settings", r.settingHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/settings", r.settingHandler.UpdateBatch).Methods(http.MethodPut)
	admin.HandleFunc("/settings/{key}", r.settingHandler.GetByKey).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", r.settingHandler.UpdateByKey).Methods(http.MethodPut)

	// Reports (admin)
	admin.HandleFunc("/reports/revenue", r.reportHandler.Revenue).Methods(http.MethodGet)
	admin.HandleFunc("/reports/medicine-usage", r.reportHandler.MedicineUsage).Methods(http.MethodGet)
	admin.HandleFunc("/reports/patient-stats", r.reportHandler.PatientStats).Methods(http.MethodGet)
	admin.HandleFunc("/reports/dashboard", r.reportHandler.Dashboard).Methods(http.MethodGet)

	// Cross-patient record overview (admin)
	admin.HandleFunc("/medical-records", r.medicalRecordHandler.List).Methods(http.MethodGet)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
