package dispatch

import (
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// FindNearest возвращает ближайшую к инциденту доступную точку эвакуации
// по расстоянию большого круга. Рассматриваются только точки со статусом
// available; если таких нет — возвращается nil, недоступные точки никогда
// не подставляются. При равных расстояниях побеждает первая по порядку
// обхода точка.
func FindNearest(incident geo.Point, points []*models.EvacuationPoint) *models.EvacuationPoint {
	var nearest *models.EvacuationPoint
	var minDistance float64

	for _, point := range points {
		if point.Status != models.PointStatusAvailable {
			continue
		}
		d := geo.Distance(incident, geo.Point{Lat: point.Latitude, Lng: point.Longitude})
		if nearest == nil || d < minDistance {
			nearest = point
			minDistance = d
		}
	}
	return nearest
}
