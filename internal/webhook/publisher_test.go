package webhook

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshal_KeepsZeroCoordinates(t *testing.T) {
	// Нулевая широта/долгота — валидная точка на экваторе и нулевом
	// меридиане, координаты не должны выпадать из полезной нагрузки
	event := Event{
		Type:        EventEmergencyCreated,
		Timestamp:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		EmergencyID: "b4f5c9a0-0000-0000-0000-000000000000",
		Latitude:    0,
		Longitude:   0,
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"latitude":0`)
	assert.Contains(t, string(payload), `"longitude":0`)
}

func TestEventMarshal_OmitsEmptyOptionalFields(t *testing.T) {
	event := Event{
		Type:      EventEmergencyCleared,
		Timestamp: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "resource_id")
	assert.NotContains(t, string(payload), "point_id")
	assert.NotContains(t, string(payload), "estimates")
}
