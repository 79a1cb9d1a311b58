package dispatch

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// DefaultGroundSpeedKmh — средняя скорость наземной бригады по умолчанию
const DefaultGroundSpeedKmh = 60.0

// ErrInvalidSpeed возвращается при скорости <= 0: ETA в этом случае
// не определено, Inf/NaN наружу не выходят
var ErrInvalidSpeed = errors.New("speed must be positive")

// GroundETA рассчитывает прибытие наземной бригады: расстояние по дорогам
// (с поправочным коэффициентом), время в целых минутах
func GroundETA(unit *models.GroundUnit, target geo.Point, speedKmh float64) (*models.ArrivalEstimate, error) {
	if speedKmh <= 0 {
		return nil, fmt.Errorf("ground unit %s: speed %f: %w", unit.ID, speedKmh, ErrInvalidSpeed)
	}

	distance := geo.RoadDistance(geo.Point{Lat: unit.Latitude, Lng: unit.Longitude}, target)
	return &models.ArrivalEstimate{
		ResourceID:   unit.ID,
		ResourceKind: models.ResourceGround,
		EtaMinutes:   int(math.Round(distance / speedKmh * 60)),
		DistanceKm:   roundKm(distance),
	}, nil
}

// AirETA рассчитывает прибытие вертолета: расстояние по прямой,
// без дорожного коэффициента, крейсерская скорость борта
func AirETA(unit *models.AirUnit, target geo.Point) (*models.ArrivalEstimate, error) {
	if unit.CruiseSpeedKmh <= 0 {
		return nil, fmt.Errorf("air unit %s: speed %f: %w", unit.ID, unit.CruiseSpeedKmh, ErrInvalidSpeed)
	}

	distance := geo.Distance(geo.Point{Lat: unit.Latitude, Lng: unit.Longitude}, target)
	return &models.ArrivalEstimate{
		ResourceID:   unit.ID,
		ResourceKind: models.ResourceAir,
		EtaMinutes:   int(math.Round(distance / unit.CruiseSpeedKmh * 60)),
		DistanceKm:   roundKm(distance),
	}, nil
}

// AllETAs агрегирует расчеты по всем ресурсам к цели. Наземные бригады
// учитываются только доступные; вертолет включается всегда, независимо от
// доступности — решение об исключении остается за вызывающей стороной.
// Ресурсы с некорректной скоростью пропускаются и возвращаются отдельно.
// Результат отсортирован по возрастанию минут, сортировка стабильная.
func AllETAs(groundUnits []*models.GroundUnit, airUnit *models.AirUnit, target geo.Point, groundSpeedKmh float64) ([]*models.ArrivalEstimate, []error) {
	var estimates []*models.ArrivalEstimate
	var skipped []error

	for _, unit := range groundUnits {
		if !unit.Available {
			continue
		}
		est, err := GroundETA(unit, target, groundSpeedKmh)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		estimates = append(estimates, est)
	}

	if airUnit != nil {
		est, err := AirETA(airUnit, target)
		if err != nil {
			skipped = append(skipped, err)
		} else {
			estimates = append(estimates, est)
		}
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].EtaMinutes < estimates[j].EtaMinutes
	})
	return estimates, skipped
}

// roundKm округляет километры до двух знаков
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
