package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// earthRadiusKm — радиус Земли в километрах
	earthRadiusKm = 6371.0

	// RoadFactor — поправочный коэффициент дороги: отношение примерного
	// расстояния по дорогам к расстоянию по прямой. Фиксированная
	// аппроксимация, маршрутизация по дорожному графу не используется.
	RoadFactor = 1.3
)

// ErrInvalidCoordinate возвращается для координат вне допустимого диапазона
var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Point — неизменяемая географическая точка
type Point struct {
	Lat float64
	Lng float64
}

// NewPoint создает точку, отклоняя координаты вне диапазона
func NewPoint(lat, lng float64) (Point, error) {
	p := Point{Lat: lat, Lng: lng}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate проверяет, что широта и долгота в допустимых пределах
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %f: %w", p.Lat, ErrInvalidCoordinate)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude %f: %w", p.Lng, ErrInvalidCoordinate)
	}
	return nil
}

// Distance возвращает расстояние по дуге большого круга в километрах
// (формула хаверсинуса). Симметрична, ноль только для совпадающих точек.
func Distance(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// RoadDistance оценивает расстояние по дорогам для наземного транспорта,
// умножая расстояние по прямой на RoadFactor
func RoadDistance(a, b Point) float64 {
	return Distance(a, b) * RoadFactor
}
