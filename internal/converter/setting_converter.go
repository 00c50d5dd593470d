package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// SettingToResponse converts a SystemSetting entity to SettingResponse DTO
func SettingToResponse(setting *entity.SystemSetting) *dto.SettingResponse {
	if setting == nil {
		return nil
	}

	return &dto.SettingResponse{
		ID:           setting.ID,
		SettingKey:   setting.SettingKey,
		SettingValue: setting.SettingValue,
		Description:  setting.Description,
		UpdatedAt:    setting.UpdatedAt,
	}
}

// SettingsToResponses converts a slice of SystemSetting entities to slice of SettingResponse DTOs
func SettingsToResponses(settings []entity.SystemSetting) []dto.SettingResponse {
	responses := make([]dto.SettingResponse, len(settings))
	for i, setting := range settings {
		resp := SettingToResponse(&setting)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
