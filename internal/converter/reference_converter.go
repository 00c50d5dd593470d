package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// DiseaseToResponse converts a Disease entity to DiseaseResponse DTO
func DiseaseToResponse(disease *entity.Disease) *dto.DiseaseResponse {
	if disease == nil {
		return nil
	}

	return &dto.DiseaseResponse{
		ID:          disease.ID,
		Name:        disease.Name,
		Description: disease.Description,
		IsActive:    disease.IsActive,
		CreatedAt:   disease.CreatedAt,
		UpdatedAt:   disease.UpdatedAt,
	}
}

// DiseasesToResponses converts a slice of Disease entities to slice of DiseaseResponse DTOs
func DiseasesToResponses(diseases []entity.Disease) []dto.DiseaseResponse {
	responses := make([]dto.DiseaseResponse, len(diseases))
	for i, disease := range diseases {
		resp := DiseaseToResponse(&disease)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// UnitToResponse converts a Unit entity to LookupResponse DTO
func UnitToResponse(unit *entity.Unit) *dto.LookupResponse {
	if unit == nil {
		return nil
	}

	return &dto.LookupResponse{
		ID:        unit.ID,
		Name:      unit.Name,
		IsActive:  unit.IsActive,
		CreatedAt: unit.CreatedAt,
	}
}

// UnitsToResponses converts a slice of Unit entities to slice of LookupResponse DTOs
func UnitsToResponses(units []entity.Unit) []dto.LookupResponse {
	responses := make([]dto.LookupResponse, len(units))
	for i, unit := range units {
		resp := UnitToResponse(&unit)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// UsageMethodToResponse converts a UsageMethod entity to LookupResponse DTO
func UsageMethodToResponse(method *entity.UsageMethod) *dto.LookupResponse {
	if method == nil {
		return nil
	}

	return &dto.LookupResponse{
		ID:        method.ID,
		Name:      method.Name,
		IsActive:  method.IsActive,
		CreatedAt: method.CreatedAt,
	}
}

// UsageMethodsToResponses converts a slice of UsageMethod entities to slice of LookupResponse DTOs
func UsageMethodsToResponses(methods []entity.UsageMethod) []dto.LookupResponse {
	responses := make([]dto.LookupResponse, len(methods))
	for i, method := range methods {
		resp := UsageMethodToResponse(&method)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
