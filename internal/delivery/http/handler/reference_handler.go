package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"
)

// ReferenceHandler serves the lookup tables consumed by examinations:
// diseases, dispensing units and usage methods.
type ReferenceHandler struct {
	diseaseUsecase usecase.DiseaseUsecase
	unitUsecase    usecase.UnitUsecase
	methodUsecase  usecase.UsageMethodUsecase
	validator      *validator.CustomValidator
}

func NewReferenceHandler(
	diseaseUsecase usecase.DiseaseUsecase,
	unitUsecase usecase.UnitUsecase,
	methodUsecase usecase.UsageMethodUsecase,
	validator *validator.CustomValidator,
) *ReferenceHandler {
	return &ReferenceHandler{
		diseaseUsecase: diseaseUsecase,
		unitUsecase:    unitUsecase,
		methodUsecase:  methodUsecase,
		validator:      validator,
	}
}

func (h *ReferenceHandler) CreateDisease(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	disease, err := h.diseaseUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create disease")
		return
	}

	response.Success(w, http.StatusCreated, "Disease created successfully", disease)
}

func (h *ReferenceHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	search := r.URL.Query().Get("search")
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	diseases, total, err := h.diseaseUsecase.List(r.Context(), search, activeOnly, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list diseases")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Diseases retrieved successfully", diseases, response.NewMeta(page, limit, total))
}

func (h *ReferenceHandler) UpdateDisease(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid disease ID", nil)
		return
	}

	var req dto.UpdateDiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	disease, err := h.diseaseUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDiseaseNotFound:
			response.NotFound(w, "Disease not found")
		default:
			response.InternalServerError(w, "Failed to update disease")
		}
		return
	}

	response.Success(w, http.StatusOK, "Disease updated successfully", disease)
}

func (h *ReferenceHandler) DeactivateDisease(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid disease ID", nil)
		return
	}

	if err := h.diseaseUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDiseaseNotFound:
			response.NotFound(w, "Disease not found")
		default:
			response.InternalServerError(w, "Failed to deactivate disease")
		}
		return
	}

	response.Success(w, http.StatusOK, "Disease deactivated successfully", nil)
}

func (h *ReferenceHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	unit, err := h.unitUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create unit")
		return
	}

	response.Success(w, http.StatusCreated, "Unit created successfully", unit)
}

func (h *ReferenceHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	units, total, err := h.unitUsecase.List(r.Context(), activeOnly, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list units")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Units retrieved successfully", units, response.NewMeta(page, limit, total))
}

func (h *ReferenceHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid unit ID", nil)
		return
	}

	var req dto.UpdateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	unit, err := h.unitUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrUnitNotFound:
			response.NotFound(w, "Unit not found")
		default:
			response.InternalServerError(w, "Failed to update unit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Unit updated successfully", unit)
}

func (h *ReferenceHandler) DeactivateUnit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid unit ID", nil)
		return
	}

	if err := h.unitUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrUnitNotFound:
			response.NotFound(w, "Unit not found")
		default:
			response.InternalServerError(w, "Failed to deactivate unit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Unit deactivated successfully", nil)
}

func (h *ReferenceHandler) CreateUsageMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	method, err := h.methodUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create usage method")
		return
	}

	response.Success(w, http.StatusCreated, "Usage method created successfully", method)
}

func (h *ReferenceHandler) ListUsageMethods(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	methods, total, err := h.methodUsecase.List(r.Context(), activeOnly, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list usage methods")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Usage methods retrieved successfully", methods, response.NewMeta(page, limit, total))
}

func (h *ReferenceHandler) UpdateUsageMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid usage method ID", nil)
		return
	}

	var req dto.UpdateLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	method, err := h.methodUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrUsageMethodNotFound:
			response.NotFound(w, "Usage method not found")
		default:
			response.InternalServerError(w, "Failed to update usage method")
		}
		return
	}

	response.Success(w, http.StatusOK, "Usage method updated successfully", method)
}

func (h *ReferenceHandler) DeactivateUsageMethod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid usage method ID", nil)
		return
	}

	if err := h.methodUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrUsageMethodNotFound:
			response.NotFound(w, "Usage method not found")
		default:
			response.InternalServerError(w, "Failed to deactivate usage method")
		}
		return
	}

	response.Success(w, http.StatusOK, "Usage method deactivated successfully", nil)
}
