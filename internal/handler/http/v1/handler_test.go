package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockEmergencyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockEmergencyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		GroundSpeedKmh:         60,
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

func f64(v float64) *float64 {
	return &v
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testSnapshot(emergencyID uuid.UUID) *models.EmergencySnapshot {
	return &models.EmergencySnapshot{
		Emergency: &models.Emergency{
			ID:              emergencyID,
			Latitude:        42.3000,
			Longitude:       -2.1000,
			Address:         "Coordenadas: 42.3000, -2.1000",
			Description:     "Emergencia sanitaria",
			Priority:        models.PriorityHigh,
			RequiresAirUnit: true,
			AssignedIDs:     []string{},
			CreatedAt:       time.Now().UTC(),
		},
		NearestPoint: &models.EvacuationPoint{
			ID:        uuid.New(),
			Name:      "Helisuperficie Hospital San Pedro",
			Latitude:  42.46642,
			Longitude: -2.44184,
			Status:    models.PointStatusAvailable,
		},
		Estimates: []*models.ArrivalEstimate{
			{ResourceID: "heli-001", ResourceKind: models.ResourceAir, EtaMinutes: 2, DistanceKm: 5.56},
			{ResourceID: "amb-001", ResourceKind: models.ResourceGround, EtaMinutes: 7, DistanceKm: 7.23},
		},
	}
}

func TestCreateEmergency_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	reqBody := CreateEmergencyRequest{
		Latitude:  f64(42.3000),
		Longitude: f64(-2.1000),
	}

	// Без приоритета и флага в запросе хендлер подставляет значения по умолчанию
	mockService.EXPECT().
		CreateEmergency(gomock.Any(), 42.3000, -2.1000, "", models.PriorityHigh, true).
		Return(testSnapshot(emergencyID), nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp EmergencySnapshotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Emergency)
	assert.Equal(t, emergencyID, resp.Emergency.ID)
	assert.Equal(t, "high", resp.Emergency.Priority)
	require.NotNil(t, resp.NearestPoint)
	assert.Equal(t, "Helisuperficie Hospital San Pedro", resp.NearestPoint.Name)
	require.Len(t, resp.Estimates, 2)
	assert.Equal(t, "heli-001", resp.Estimates[0].ResourceID)
	assert.Equal(t, 2, resp.Estimates[0].EtaMinutes)
}

func TestCreateEmergency_Handler_ExplicitOptions(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	requiresAir := false
	reqBody := CreateEmergencyRequest{
		Latitude:        f64(42.3000),
		Longitude:       f64(-2.1000),
		Description:     "Accidente de tráfico",
		Priority:        "medium",
		RequiresAirUnit: &requiresAir,
	}

	mockService.EXPECT().
		CreateEmergency(gomock.Any(), 42.3000, -2.1000, reqBody.Description, models.PriorityMedium, false).
		Return(testSnapshot(emergencyID), nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateEmergency_Handler_ZeroCoordinatesAccepted(t *testing.T) {
	// Точка на экваторе/нулевом меридиане проходит валидацию границы
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().
		CreateEmergency(gomock.Any(), 0.0, 0.0, "", models.PriorityHigh, true).
		Return(testSnapshot(emergencyID), nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBufferString(`{"latitude": 0, "longitude": 0}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateEmergency_Handler_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateEmergency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBufferString(`{"latitude": 42.3`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateEmergency_Handler_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{ // Отсутствует Latitude
		Longitude: f64(-2.1000),
	}

	mockService.EXPECT().CreateEmergency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'required' tag")
}

func TestCreateEmergency_Handler_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{
		Latitude:  f64(89.0),
		Longitude: f64(-2.1000),
	}

	mockService.EXPECT().
		CreateEmergency(gomock.Any(), 89.0, -2.1000, "", models.PriorityHigh, true).
		Return(nil, fmt.Errorf("service: invalid emergency location: %w", geo.ErrInvalidCoordinate)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coordinates")
}

func TestCreateEmergency_Handler_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{
		Latitude:  f64(42.3000),
		Longitude: f64(-2.1000),
	}
	serviceError := errors.New("failed to create emergency in service")

	mockService.EXPECT().
		CreateEmergency(gomock.Any(), 42.3000, -2.1000, "", models.PriorityHigh, true).
		Return(nil, serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetActiveEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()

	mockService.EXPECT().ActiveEmergency(gomock.Any()).Return(testSnapshot(emergencyID), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/active", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencySnapshotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, emergencyID, resp.Emergency.ID)
}

func TestGetActiveEmergency_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ActiveEmergency(gomock.Any()).Return(nil, service.ErrNoActiveEmergency).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/active", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no active emergency")
}

func TestGetActiveEmergency_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("database error")

	mockService.EXPECT().ActiveEmergency(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/active", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestClearEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ClearEmergency(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/emergencies/active", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClearEmergency_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to release resources")

	mockService.EXPECT().ClearEmergency(gomock.Any()).Return(serviceError).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/emergencies/active", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to clear emergency")
}

func TestToggleResource_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergencyID := uuid.New()
	snapshot := testSnapshot(emergencyID)
	snapshot.Emergency.AssignedIDs = []string{"amb-001"}

	mockService.EXPECT().ToggleResource(gomock.Any(), "amb-001").Return(snapshot, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies/active/resources/amb-001", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencySnapshotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp.Emergency.AssignedIDs, "amb-001")
}

func TestToggleResource_Handler_NoActiveEmergency(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ToggleResource(gomock.Any(), "amb-001").Return(nil, service.ErrNoActiveEmergency).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies/active/resources/amb-001", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no active emergency")
}

func TestToggleResource_Handler_UnknownResource(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: resource ghost-999: %w", service.ErrUnknownResource)

	mockService.EXPECT().ToggleResource(gomock.Any(), "ghost-999").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies/active/resources/ghost-999", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown resource")
}

func TestToggleResource_Handler_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("database error")

	mockService.EXPECT().ToggleResource(gomock.Any(), "amb-001").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies/active/resources/amb-001", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListUnits_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	groundUnits := []*models.GroundUnit{
		{ID: "amb-001", Name: "Arnedo SVB", Type: models.GroundUnitBasic, Latitude: 42.228403, Longitude: -2.103743, Available: true},
		{ID: "amb-002", Name: "Calahorra SVB", Type: models.GroundUnitBasic, Latitude: 42.303073, Longitude: -1.959470, Available: false},
	}
	airUnit := &models.AirUnit{ID: "heli-001", Name: "Helicóptero Sanitario La Rioja", Latitude: 42.46642, Longitude: -2.44184, Available: true, CruiseSpeedKmh: 180}

	mockService.EXPECT().ListGroundUnits(gomock.Any()).Return(groundUnits, nil).Times(1)
	mockService.EXPECT().GetAirUnit(gomock.Any()).Return(airUnit, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/units", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UnitsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.GroundUnits, 2)
	assert.Equal(t, "amb-001", resp.GroundUnits[0].ID)
	require.NotNil(t, resp.AirUnit)
	assert.Equal(t, "heli-001", resp.AirUnit.ID)
	assert.Equal(t, 180.0, resp.AirUnit.CruiseSpeedKmh)
}

func TestListUnits_NoAirUnit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListGroundUnits(gomock.Any()).Return([]*models.GroundUnit{}, nil).Times(1)
	mockService.EXPECT().GetAirUnit(gomock.Any()).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/units", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UnitsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Empty(t, resp.GroundUnits)
	assert.Nil(t, resp.AirUnit)
}

func TestListUnits_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to list units")

	mockService.EXPECT().ListGroundUnits(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/units", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListEvacuationPoints_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedPoints := []*models.EvacuationPoint{
		{ID: uuid.New(), Name: "Helisuperficie Hospital San Pedro", Status: models.PointStatusAvailable},
		{ID: uuid.New(), Name: "Campo de Fútbol Quel", Status: models.PointStatusUnavailable},
	}

	mockService.EXPECT().ListEvacuationPoints(gomock.Any()).Return(expectedPoints, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/evacuation-points", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EvacuationPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedPoints[0].Name, resp[0].Name)
}

func TestListEvacuationPoints_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to list evacuation points")

	mockService.EXPECT().ListEvacuationPoints(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/evacuation-points", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestProposeEvacuationPoint_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	pointID := uuid.New()
	reqBody := ProposeEvacuationPointRequest{
		Name:      "Campo de Fútbol Quel",
		Locality:  "Quel",
		Latitude:  f64(42.2262),
		Longitude: f64(-2.0744),
		CreatedBy: "operator",
	}

	mockService.EXPECT().
		ProposeEvacuationPoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, point *models.EvacuationPoint) error {
			assert.Equal(t, reqBody.Name, point.Name)
			assert.Equal(t, reqBody.Locality, point.Locality)
			point.ID = pointID
			point.Status = models.PointStatusAvailable
			point.CreatedAt = time.Now().UTC()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/evacuation-points", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp EvacuationPointResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, pointID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestProposeEvacuationPoint_Handler_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ProposeEvacuationPointRequest{ // Отсутствует Name
		Locality:  "Quel",
		Latitude:  f64(42.2262),
		Longitude: f64(-2.0744),
		CreatedBy: "operator",
	}

	mockService.EXPECT().ProposeEvacuationPoint(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/evacuation-points", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestProposeEvacuationPoint_Handler_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ProposeEvacuationPointRequest{
		Name:      "Fuera de rango",
		Locality:  "Quel",
		Latitude:  f64(89.0),
		Longitude: f64(-2.0744),
		CreatedBy: "operator",
	}

	mockService.EXPECT().
		ProposeEvacuationPoint(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: invalid point location: %w", geo.ErrInvalidCoordinate)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/evacuation-points", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coordinates")
}

func TestGetStats_Handler_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedCount := 123

	mockService.EXPECT().GetStats(gomock.Any()).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.EmergencyCount)
}

func TestGetStats_Handler_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("failed to get stats")

	mockService.EXPECT().GetStats(gomock.Any()).Return(0, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
