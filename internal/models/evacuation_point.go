package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы точки эвакуации
const (
	PointStatusAvailable   = "available"
	PointStatusUnavailable = "unavailable"
)

// EvacuationPoint представляет точку эвакуации/посадки.
// Создается через процесс предложения, ядро ее не редактирует и не удаляет.
type EvacuationPoint struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Locality     string    `json:"locality"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Restrictions string    `json:"restrictions"`
	DaytimeOnly  bool      `json:"daytime_only"`
	CreatedBy    string    `json:"created_by"`
	Photos       []string  `json:"photos"`
	CreatedAt    time.Time `json:"created_at"`
}
