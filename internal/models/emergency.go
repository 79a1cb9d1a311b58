package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority — приоритет экстренного вызова
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Emergency представляет активный инцидент. В текущей модели активен
// максимум один инцидент; создание нового вытесняет предыдущий без истории.
type Emergency struct {
	ID              uuid.UUID `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Address         string    `json:"address"`
	Description     string    `json:"description"`
	Priority        Priority  `json:"priority"`
	RequiresAirUnit bool      `json:"requires_air_unit"`
	AssignedIDs     []string  `json:"assigned_resource_ids"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsAssigned сообщает, закреплен ли ресурс за инцидентом
func (e *Emergency) IsAssigned(resourceID string) bool {
	for _, id := range e.AssignedIDs {
		if id == resourceID {
			return true
		}
	}
	return false
}

// ArrivalEstimate — расчетное время и расстояние прибытия ресурса.
// Производное значение, пересчитывается по запросу и нигде не хранится.
type ArrivalEstimate struct {
	ResourceID   string       `json:"resource_id"`
	ResourceKind ResourceKind `json:"resource_kind"`
	EtaMinutes   int          `json:"eta_minutes"`
	DistanceKm   float64      `json:"distance_km"`
}

// EmergencySnapshot — срез состояния активного инцидента: сам инцидент,
// ближайшая точка эвакуации и ранжированные расчеты прибытия
type EmergencySnapshot struct {
	Emergency    *Emergency         `json:"emergency"`
	NearestPoint *EvacuationPoint   `json:"nearest_point,omitempty"`
	Estimates    []*ArrivalEstimate `json:"estimates"`
}
