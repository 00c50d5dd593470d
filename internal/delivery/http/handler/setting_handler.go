package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

type SettingHandler struct {
	settingUsecase usecase.SettingUsecase
	validator      *validator.CustomValidator
}

func NewSettingHandler(settingUsecase usecase.SettingUsecase, validator *validator.CustomValidator) *SettingHandler {
	return &SettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

func (h *SettingHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	setting, err := h.settingUsecase.GetByKey(r.Context(), key)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Setting not found")
		default:
			response.InternalServerError(w, "Failed to get setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Setting retrieved successfully", setting)
}

func (h *SettingHandler) UpdateByKey(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req dto.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.settingUsecase.UpdateByKey(r.Context(), key, &req)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Setting not found")
		default:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Setting updated successfully", setting)
}

func (h *SettingHandler) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingUsecase.UpdateBatch(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNothingToUpdate:
			response.Error(w, http.StatusBadRequest, "No settings provided", nil)
		case usecase.ErrInvalidSettingFee:
			response.Error(w, http.StatusBadRequest, "Consultation fee must be zero or greater", nil)
		default:
			response.InternalServerError(w, "Failed to update settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Settings updated successfully", settings)
}
