package dispatch

import (
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(name, status string, lat, lng float64) *models.EvacuationPoint {
	return &models.EvacuationPoint{
		Name:      name,
		Status:    status,
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestFindNearest_PicksClosestAvailable(t *testing.T) {
	incident := geo.Point{Lat: 42.3000, Lng: -2.1000}
	points := []*models.EvacuationPoint{
		point("far", models.PointStatusAvailable, 42.5000, -2.1000),
		point("near", models.PointStatusAvailable, 42.3100, -2.1000),
		point("mid", models.PointStatusAvailable, 42.4000, -2.1000),
	}

	nearest := FindNearest(incident, points)
	require.NotNil(t, nearest)
	assert.Equal(t, "near", nearest.Name)
}

func TestFindNearest_IgnoresUnavailableEvenWhenCloser(t *testing.T) {
	// Недоступная точка в 5 км не должна победить доступную в 20 км
	incident := geo.Point{Lat: 42.3000, Lng: -2.1000}
	points := []*models.EvacuationPoint{
		point("closed-a", models.PointStatusUnavailable, 42.3450, -2.1000), // ~5 км
		point("open", models.PointStatusAvailable, 42.4800, -2.1000),       // ~20 км
		point("closed-b", models.PointStatusUnavailable, 42.3100, -2.1000),
	}

	nearest := FindNearest(incident, points)
	require.NotNil(t, nearest)
	assert.Equal(t, "open", nearest.Name)
}

func TestFindNearest_NoneAvailable(t *testing.T) {
	incident := geo.Point{Lat: 42.3000, Lng: -2.1000}
	points := []*models.EvacuationPoint{
		point("closed-a", models.PointStatusUnavailable, 42.3100, -2.1000),
		point("closed-b", models.PointStatusUnavailable, 42.3200, -2.1000),
	}

	assert.Nil(t, FindNearest(incident, points))
}

func TestFindNearest_EmptyInput(t *testing.T) {
	assert.Nil(t, FindNearest(geo.Point{Lat: 42.3, Lng: -2.1}, nil))
}

func TestFindNearest_TieKeepsFirst(t *testing.T) {
	incident := geo.Point{Lat: 42.3000, Lng: -2.1000}
	points := []*models.EvacuationPoint{
		point("first", models.PointStatusAvailable, 42.3100, -2.1000),
		point("second", models.PointStatusAvailable, 42.3100, -2.1000),
	}

	nearest := FindNearest(incident, points)
	require.NotNil(t, nearest)
	assert.Equal(t, "first", nearest.Name)
}
