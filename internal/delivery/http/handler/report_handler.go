package handler

import (
	"net/http"
	"strconv"
	"time"

	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// reportPeriod reads month/year query params, defaulting to the current month.
func reportPeriod(r *http.Request) (month, year int) {
	now := time.Now()
	month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	if month == 0 {
		month = int(now.Month())
	}
	year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	month, year := reportPeriod(r)

	report, err := h.reportUsecase.Revenue(r.Context(), month, year)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPeriod:
			response.Error(w, http.StatusBadRequest, "Invalid report period", nil)
		default:
			response.InternalServerError(w, "Failed to build revenue report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Revenue report retrieved successfully", report)
}

func (h *ReportHandler) MedicineUsage(w http.ResponseWriter, r *http.Request) {
	month, year := reportPeriod(r)

	report, err := h.reportUsecase.MedicineUsage(r.Context(), month, year)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPeriod:
			response.Error(w, http.StatusBadRequest, "Invalid report period", nil)
		default:
			response.InternalServerError(w, "Failed to build medicine usage report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine usage report retrieved successfully", report)
}

func (h *ReportHandler) PatientStats(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	report, err := h.reportUsecase.PatientStats(r.Context(), startDate, endDate)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPeriod:
			response.Error(w, http.StatusBadRequest, "Provide both start_date and end_date, or neither", nil)
		default:
			response.InternalServerError(w, "Failed to build patient stats report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient stats retrieved successfully", report)
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportUsecase.Dashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
