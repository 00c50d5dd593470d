package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

// Create bills an examined appointment
// @Summary Create an invoice
// @Tags Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Invoice Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.invoiceUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrNotExamined:
			response.Error(w, http.StatusBadRequest, "Appointment has not been examined yet", nil)
		case usecase.ErrInvoiceAlreadyExists:
			response.Conflict(w, "Invoice already exists for this appointment")
		default:
			response.InternalServerError(w, "Failed to create invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", invoice)
}

func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	invoice, err := h.invoiceUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to get invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	patientID, _ := strconv.Atoi(r.URL.Query().Get("patient_id"))
	filter := repository.InvoiceFilter{
		PatientID:     patientID,
		PaymentStatus: r.URL.Query().Get("payment_status"),
		StartDate:     r.URL.Query().Get("start_date"),
		EndDate:       r.URL.Query().Get("end_date"),
	}

	invoices, total, err := h.invoiceUsecase.List(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list invoices")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Invoices retrieved successfully", invoices, response.NewMeta(page, limit, total))
}

// Pay settles a pending invoice and completes the visit
// @Summary Pay an invoice
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id}/pay [put]
func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	invoice, err := h.invoiceUsecase.Pay(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		case usecase.ErrInvoiceAlreadyPaid:
			response.Conflict(w, "Invoice has already been paid")
		default:
			response.InternalServerError(w, "Failed to pay invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice paid successfully", invoice)
}
