package models

// GroundUnitType — тип наземной бригады: базовая или расширенная реанимация
type GroundUnitType string

const (
	GroundUnitBasic    GroundUnitType = "SVB"
	GroundUnitAdvanced GroundUnitType = "SVA"
)

// GroundUnit представляет наземный санитарный ресурс (машину скорой помощи)
type GroundUnit struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      GroundUnitType `json:"type"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Base      string         `json:"base"`
	Schedule  string         `json:"schedule"`
	Available bool           `json:"available"`
}

// AirUnit представляет санитарный вертолет.
// Сейчас в системе один борт, но модель не запрещает несколько.
type AirUnit struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Base           string  `json:"base"`
	Available      bool    `json:"available"`
	CruiseSpeedKmh float64 `json:"cruise_speed_kmh"`
}

// ResourceKind — вид ресурса в агрегате расчетов
type ResourceKind string

const (
	ResourceGround ResourceKind = "ground"
	ResourceAir    ResourceKind = "air"
)
