package v1

import (
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// DTOToEvacuationPointModel преобразует DTO предложения точки в доменную модель
func DTOToEvacuationPointModel(dto ProposeEvacuationPointRequest) *models.EvacuationPoint {
	return &models.EvacuationPoint{
		Name:         dto.Name,
		Locality:     dto.Locality,
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		Description:  dto.Description,
		Restrictions: dto.Restrictions,
		DaytimeOnly:  dto.DaytimeOnly,
		CreatedBy:    dto.CreatedBy,
		Photos:       dto.Photos,
	}
}

// ModelToEmergencyResponse преобразует доменную модель инцидента в DTO
func ModelToEmergencyResponse(model *models.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:              model.ID,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Address:         model.Address,
		Description:     model.Description,
		Priority:        string(model.Priority),
		RequiresAirUnit: model.RequiresAirUnit,
		AssignedIDs:     model.AssignedIDs,
		CreatedAt:       model.CreatedAt,
	}
}

// ModelToEvacuationPointResponse преобразует доменную модель точки в DTO
func ModelToEvacuationPointResponse(model *models.EvacuationPoint) *EvacuationPointResponse {
	return &EvacuationPointResponse{
		ID:           model.ID,
		Name:         model.Name,
		Locality:     model.Locality,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Description:  model.Description,
		Status:       model.Status,
		Restrictions: model.Restrictions,
		DaytimeOnly:  model.DaytimeOnly,
		CreatedBy:    model.CreatedBy,
		Photos:       model.Photos,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToEvacuationPointResponses преобразует слайс моделей точек в слайс DTO
func ModelsToEvacuationPointResponses(points []*models.EvacuationPoint) []*EvacuationPointResponse {
	responses := make([]*EvacuationPointResponse, len(points))
	for i, point := range points {
		responses[i] = ModelToEvacuationPointResponse(point)
	}
	return responses
}

// SnapshotToResponse преобразует срез инцидента в DTO
func SnapshotToResponse(snapshot *models.EmergencySnapshot) *EmergencySnapshotResponse {
	resp := &EmergencySnapshotResponse{
		Emergency: ModelToEmergencyResponse(snapshot.Emergency),
		Estimates: make([]*ArrivalEstimateResponse, len(snapshot.Estimates)),
	}
	if snapshot.NearestPoint != nil {
		resp.NearestPoint = ModelToEvacuationPointResponse(snapshot.NearestPoint)
	}
	for i, est := range snapshot.Estimates {
		resp.Estimates[i] = &ArrivalEstimateResponse{
			ResourceID:   est.ResourceID,
			ResourceKind: string(est.ResourceKind),
			EtaMinutes:   est.EtaMinutes,
			DistanceKm:   est.DistanceKm,
		}
	}
	return resp
}

// ModelToGroundUnitResponse преобразует доменную модель бригады в DTO
func ModelToGroundUnitResponse(model *models.GroundUnit) *GroundUnitResponse {
	return &GroundUnitResponse{
		ID:        model.ID,
		Name:      model.Name,
		Type:      string(model.Type),
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Base:      model.Base,
		Schedule:  model.Schedule,
		Available: model.Available,
	}
}

// ModelToAirUnitResponse преобразует доменную модель вертолета в DTO
func ModelToAirUnitResponse(model *models.AirUnit) *AirUnitResponse {
	return &AirUnitResponse{
		ID:             model.ID,
		Name:           model.Name,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Base:           model.Base,
		Available:      model.Available,
		CruiseSpeedKmh: model.CruiseSpeedKmh,
	}
}
