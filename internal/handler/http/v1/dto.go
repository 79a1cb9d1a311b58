package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateEmergencyRequest DTO для создания инцидента.
// Координаты через указатели: required означает "поле передано",
// нулевая широта/долгота — валидное значение.
// @Description DTO для создания инцидента
type CreateEmergencyRequest struct {
	Latitude        *float64 `json:"latitude" validate:"required,latitude"`
	Longitude       *float64 `json:"longitude" validate:"required,longitude"`
	Description     string   `json:"description,omitempty"`
	Priority        string   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	RequiresAirUnit *bool    `json:"requires_air_unit,omitempty"`
}

// ProposeEvacuationPointRequest DTO для предложения точки эвакуации
// @Description DTO для предложения точки эвакуации
type ProposeEvacuationPointRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Locality     string   `json:"locality" validate:"required,min=2,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	Description  string   `json:"description,omitempty"`
	Restrictions string   `json:"restrictions,omitempty"`
	DaytimeOnly  bool     `json:"daytime_only"`
	CreatedBy    string   `json:"created_by" validate:"required"`
	Photos       []string `json:"photos,omitempty"`
}

// EmergencyResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type EmergencyResponse struct {
	ID              uuid.UUID `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Address         string    `json:"address"`
	Description     string    `json:"description,omitempty"`
	Priority        string    `json:"priority"`
	RequiresAirUnit bool      `json:"requires_air_unit"`
	AssignedIDs     []string  `json:"assigned_resource_ids"`
	CreatedAt       time.Time `json:"created_at"`
}

// ArrivalEstimateResponse DTO для расчета прибытия ресурса
// @Description DTO для расчета прибытия ресурса
type ArrivalEstimateResponse struct {
	ResourceID   string  `json:"resource_id"`
	ResourceKind string  `json:"resource_kind"`
	EtaMinutes   int     `json:"eta_minutes"`
	DistanceKm   float64 `json:"distance_km"`
}

// EvacuationPointResponse DTO для ответа с информацией о точке эвакуации
// @Description DTO для ответа с информацией о точке эвакуации
type EvacuationPointResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Locality     string    `json:"locality"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	Restrictions string    `json:"restrictions,omitempty"`
	DaytimeOnly  bool      `json:"daytime_only"`
	CreatedBy    string    `json:"created_by"`
	Photos       []string  `json:"photos,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmergencySnapshotResponse DTO для среза активного инцидента
// @Description DTO для среза активного инцидента: инцидент, ближайшая точка, расчеты
type EmergencySnapshotResponse struct {
	Emergency    *EmergencyResponse         `json:"emergency"`
	NearestPoint *EvacuationPointResponse   `json:"nearest_point,omitempty"`
	Estimates    []*ArrivalEstimateResponse `json:"estimates"`
}

// GroundUnitResponse DTO для наземной бригады
// @Description DTO для наземной бригады
type GroundUnitResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Base      string  `json:"base"`
	Schedule  string  `json:"schedule"`
	Available bool    `json:"available"`
}

// AirUnitResponse DTO для вертолета
// @Description DTO для вертолета
type AirUnitResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Base           string  `json:"base"`
	Available      bool    `json:"available"`
	CruiseSpeedKmh float64 `json:"cruise_speed_kmh"`
}

// UnitsResponse DTO для списка всех ресурсов
// @Description DTO для списка всех ресурсов
type UnitsResponse struct {
	GroundUnits []*GroundUnitResponse `json:"ground_units"`
	AirUnit     *AirUnitResponse      `json:"air_unit,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	EmergencyCount int `json:"emergency_count"`
}
