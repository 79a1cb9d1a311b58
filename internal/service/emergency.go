package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/dispatch"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Ошибки уровня сервиса
var (
	ErrNoActiveEmergency = errors.New("no active emergency")
	ErrUnknownResource   = errors.New("unknown resource")
)

// ResourceRepository определяет контракт для хранилища ресурсов (бригад и борта)
type ResourceRepository interface {
	ListGroundUnits(ctx context.Context) ([]*models.GroundUnit, error)
	GetAirUnit(ctx context.Context) (*models.AirUnit, error)
	SaveGroundUnits(ctx context.Context, units []*models.GroundUnit) error
	SaveAirUnit(ctx context.Context, unit *models.AirUnit) error
}

// EvacuationPointRepository определяет контракт для хранилища точек эвакуации
type EvacuationPointRepository interface {
	ListPoints(ctx context.Context) ([]*models.EvacuationPoint, error)
	CreatePoint(ctx context.Context, point *models.EvacuationPoint) error
	GetPointsFromCache(ctx context.Context) ([]*models.EvacuationPoint, error)
	SetPointsCache(ctx context.Context, points []*models.EvacuationPoint) error
	InvalidatePointsCache(ctx context.Context) error
}

// EmergencyLogRepository определяет контракт для журнала инцидентов
type EmergencyLogRepository interface {
	LogEmergency(ctx context.Context, emergency *models.Emergency) error
	GetEmergencyStats(ctx context.Context, minutes int) (int, error)
}

// EmergencyService определяет контракт бизнес-логики диспетчеризации
type EmergencyService interface {
	CreateEmergency(ctx context.Context, lat, lng float64, description string, priority models.Priority, requiresAirUnit bool) (*models.EmergencySnapshot, error)
	ActiveEmergency(ctx context.Context) (*models.EmergencySnapshot, error)
	ClearEmergency(ctx context.Context) error
	ToggleResource(ctx context.Context, resourceID string) (*models.EmergencySnapshot, error)
	ListGroundUnits(ctx context.Context) ([]*models.GroundUnit, error)
	GetAirUnit(ctx context.Context) (*models.AirUnit, error)
	ListEvacuationPoints(ctx context.Context) ([]*models.EvacuationPoint, error)
	ProposeEvacuationPoint(ctx context.Context, point *models.EvacuationPoint) error
	GetStats(ctx context.Context) (int, error)
}

type emergencyService struct {
	resources ResourceRepository
	points    EvacuationPointRepository
	journal   EmergencyLogRepository
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config

	// Ядро рассчитано на одну пользовательскую сессию; в серверном
	// контексте все мутации активного инцидента сериализуются мьютексом.
	mu     sync.Mutex
	active *models.Emergency
}

func NewEmergencyService(
	resources ResourceRepository,
	points EvacuationPointRepository,
	journal EmergencyLogRepository,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) EmergencyService {
	return &emergencyService{
		resources: resources,
		points:    points,
		journal:   journal,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateEmergency создает активный инцидент по координатам. Предыдущий
// активный инцидент вытесняется без истории, его ресурсы освобождаются.
func (s *emergencyService) CreateEmergency(ctx context.Context, lat, lng float64, description string, priority models.Priority, requiresAirUnit bool) (*models.EmergencySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "CreateEmergency",
		"lat":     lat,
		"lng":     lng,
	})
	log.Info("Creating emergency")

	location, err := geo.NewPoint(lat, lng)
	if err != nil {
		log.WithError(err).Warn("Rejected emergency with invalid coordinates")
		return nil, fmt.Errorf("service: invalid emergency location: %w", err)
	}

	if description == "" {
		description = "Emergencia sanitaria"
	}
	if priority == "" {
		priority = models.PriorityHigh
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		if err := s.releaseAssigned(ctx, s.active); err != nil {
			log.WithError(err).Error("Failed to release resources of the replaced emergency")
			return nil, fmt.Errorf("service: could not replace emergency: %w", err)
		}
	}

	emergency := &models.Emergency{
		ID:              uuid.New(),
		Latitude:        location.Lat,
		Longitude:       location.Lng,
		Address:         fmt.Sprintf("Coordenadas: %.4f, %.4f", location.Lat, location.Lng),
		Description:     description,
		Priority:        priority,
		RequiresAirUnit: requiresAirUnit,
		AssignedIDs:     []string{},
		CreatedAt:       time.Now().UTC(),
	}
	s.active = emergency

	snapshot, err := s.buildSnapshot(ctx, emergency)
	if err != nil {
		return nil, err
	}

	if err := s.journal.LogEmergency(ctx, emergency); err != nil {
		log.WithError(err).Warn("Failed to record emergency in dispatch log")
	}

	s.publish(ctx, webhook.Event{
		Type:        webhook.EventEmergencyCreated,
		Timestamp:   emergency.CreatedAt,
		EmergencyID: emergency.ID.String(),
		Latitude:    emergency.Latitude,
		Longitude:   emergency.Longitude,
		Estimates:   snapshot.Estimates,
	})

	log.WithField("emergency_id", emergency.ID).Info("Emergency created")
	return snapshot, nil
}

// ActiveEmergency возвращает срез активного инцидента; расчеты каждый раз
// выполняются заново по текущему состоянию ресурсов
func (s *emergencyService) ActiveEmergency(ctx context.Context) (*models.EmergencySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNoActiveEmergency
	}
	return s.buildSnapshot(ctx, s.active)
}

// ClearEmergency снимает активный инцидент и возвращает все закрепленные
// за ним ресурсы в доступные. Без активного инцидента — ничего не делает.
func (s *emergencyService) ClearEmergency(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ClearEmergency",
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}

	emergency := s.active
	if err := s.releaseAssigned(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to release assigned resources on clear")
		return fmt.Errorf("service: could not clear emergency: %w", err)
	}
	s.active = nil

	s.publish(ctx, webhook.Event{
		Type:        webhook.EventEmergencyCleared,
		Timestamp:   time.Now().UTC(),
		EmergencyID: emergency.ID.String(),
	})

	log.WithField("emergency_id", emergency.ID).Info("Emergency cleared")
	return nil
}

// ToggleResource переключает закрепление ресурса за активным инцидентом.
// Состояния согласованы: id в наборе инцидента <=> ресурс недоступен.
// Неизвестный id отклоняется до любых изменений.
func (s *emergencyService) ToggleResource(ctx context.Context, resourceID string) (*models.EmergencySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "emergency",
		"method":      "ToggleResource",
		"resource_id": resourceID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNoActiveEmergency
	}

	groundUnits, err := s.resources.ListGroundUnits(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load ground units")
		return nil, fmt.Errorf("service: could not load ground units: %w", err)
	}
	airUnit, err := s.resources.GetAirUnit(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load air unit")
		return nil, fmt.Errorf("service: could not load air unit: %w", err)
	}

	var groundUnit *models.GroundUnit
	for _, unit := range groundUnits {
		if unit.ID == resourceID {
			groundUnit = unit
			break
		}
	}
	isAir := airUnit != nil && airUnit.ID == resourceID
	if groundUnit == nil && !isAir {
		log.Warn("Toggle requested for unknown resource")
		return nil, fmt.Errorf("service: resource %s: %w", resourceID, ErrUnknownResource)
	}

	assigned := s.active.IsAssigned(resourceID)

	// Ровно одна из коллекций меняется за вызов. Сначала сохраняем ресурс,
	// набор закреплений меняем только после успешной записи: при сбое
	// сохранения инцидент и хранилище остаются согласованными.
	if groundUnit != nil {
		groundUnit.Available = assigned
		if err := s.resources.SaveGroundUnits(ctx, groundUnits); err != nil {
			groundUnit.Available = !assigned
			log.WithError(err).Error("Failed to save ground units")
			return nil, fmt.Errorf("service: could not save ground units: %w", err)
		}
	} else {
		airUnit.Available = assigned
		if err := s.resources.SaveAirUnit(ctx, airUnit); err != nil {
			airUnit.Available = !assigned
			log.WithError(err).Error("Failed to save air unit")
			return nil, fmt.Errorf("service: could not save air unit: %w", err)
		}
	}

	if assigned {
		s.removeAssigned(resourceID)
	} else {
		s.active.AssignedIDs = append(s.active.AssignedIDs, resourceID)
	}

	eventType := webhook.EventResourceAssigned
	if assigned {
		eventType = webhook.EventResourceReleased
	}
	kind := models.ResourceGround
	if isAir {
		kind = models.ResourceAir
	}
	s.publish(ctx, webhook.Event{
		Type:         eventType,
		Timestamp:    time.Now().UTC(),
		EmergencyID:  s.active.ID.String(),
		ResourceID:   resourceID,
		ResourceKind: string(kind),
	})

	log.WithField("assigned", !assigned).Info("Resource assignment toggled")
	return s.buildSnapshot(ctx, s.active)
}

// ListGroundUnits возвращает наземные бригады
func (s *emergencyService) ListGroundUnits(ctx context.Context) ([]*models.GroundUnit, error) {
	units, err := s.resources.ListGroundUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ground units: %w", err)
	}
	return units, nil
}

// GetAirUnit возвращает вертолет, nil если борта нет
func (s *emergencyService) GetAirUnit(ctx context.Context) (*models.AirUnit, error) {
	unit, err := s.resources.GetAirUnit(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get air unit: %w", err)
	}
	return unit, nil
}

// ListEvacuationPoints возвращает точки эвакуации, сперва пробуя кеш
func (s *emergencyService) ListEvacuationPoints(ctx context.Context) ([]*models.EvacuationPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListEvacuationPoints",
	})

	cached, err := s.points.GetPointsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Evacuation points cache lookup failed")
	} else if cached != nil {
		return cached, nil
	}

	points, err := s.points.ListPoints(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list evacuation points")
		return nil, fmt.Errorf("service: could not list evacuation points: %w", err)
	}

	if err := s.points.SetPointsCache(ctx, points); err != nil {
		log.WithError(err).Warn("Failed to cache evacuation points")
	}
	return points, nil
}

// ProposeEvacuationPoint добавляет предложенную точку эвакуации.
// Только добавление: существующие точки ядро не меняет и не удаляет.
func (s *emergencyService) ProposeEvacuationPoint(ctx context.Context, point *models.EvacuationPoint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ProposeEvacuationPoint",
		"name":    point.Name,
	})
	log.Info("Proposing evacuation point")

	location := geo.Point{Lat: point.Latitude, Lng: point.Longitude}
	if err := location.Validate(); err != nil {
		log.WithError(err).Warn("Rejected evacuation point with invalid coordinates")
		return fmt.Errorf("service: invalid point location: %w", err)
	}

	if point.Status == "" {
		point.Status = models.PointStatusAvailable
	}

	if err := s.points.CreatePoint(ctx, point); err != nil {
		log.WithError(err).Error("Failed to create evacuation point")
		return fmt.Errorf("service: could not create evacuation point: %w", err)
	}

	if err := s.points.InvalidatePointsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate evacuation points cache")
	}

	s.publish(ctx, webhook.Event{
		Type:      webhook.EventPointProposed,
		Timestamp: time.Now().UTC(),
		PointID:   point.ID.String(),
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	})

	log.WithField("point_id", point.ID).Info("Evacuation point proposed")
	return nil
}

// GetStats возвращает количество инцидентов за настроенное окно времени
func (s *emergencyService) GetStats(ctx context.Context) (int, error) {
	count, err := s.journal.GetEmergencyStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get emergency stats: %w", err)
	}
	return count, nil
}

// buildSnapshot собирает производное состояние инцидента: ближайшая
// доступная точка и расчеты прибытия. Расчеты ведутся к точке эвакуации,
// если она нашлась, иначе к самому месту инцидента.
func (s *emergencyService) buildSnapshot(ctx context.Context, emergency *models.Emergency) (*models.EmergencySnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"emergency_id": emergency.ID,
	})

	groundUnits, err := s.resources.ListGroundUnits(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load ground units")
		return nil, fmt.Errorf("service: could not load ground units: %w", err)
	}
	airUnit, err := s.resources.GetAirUnit(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load air unit")
		return nil, fmt.Errorf("service: could not load air unit: %w", err)
	}
	points, err := s.listPointsCached(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load evacuation points")
		return nil, fmt.Errorf("service: could not load evacuation points: %w", err)
	}

	incidentLocation := geo.Point{Lat: emergency.Latitude, Lng: emergency.Longitude}
	nearest := dispatch.FindNearest(incidentLocation, points)

	target := incidentLocation
	if nearest != nil {
		target = geo.Point{Lat: nearest.Latitude, Lng: nearest.Longitude}
	}

	estimates, skipped := dispatch.AllETAs(groundUnits, airUnit, target, s.cfg.GroundSpeedKmh)
	for _, err := range skipped {
		log.WithError(err).Warn("Unit skipped from ETA aggregate")
	}

	return &models.EmergencySnapshot{
		Emergency:    emergency,
		NearestPoint: nearest,
		Estimates:    estimates,
	}, nil
}

// listPointsCached — как ListEvacuationPoints, но без прогрева кеша при
// промахе: срез инцидента не должен падать из-за недоступного кеша
func (s *emergencyService) listPointsCached(ctx context.Context) ([]*models.EvacuationPoint, error) {
	cached, err := s.points.GetPointsFromCache(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}
	return s.points.ListPoints(ctx)
}

// releaseAssigned возвращает все закрепленные за инцидентом ресурсы в
// доступные и очищает набор закреплений
func (s *emergencyService) releaseAssigned(ctx context.Context, emergency *models.Emergency) error {
	if len(emergency.AssignedIDs) == 0 {
		return nil
	}

	groundUnits, err := s.resources.ListGroundUnits(ctx)
	if err != nil {
		return fmt.Errorf("could not load ground units: %w", err)
	}
	airUnit, err := s.resources.GetAirUnit(ctx)
	if err != nil {
		return fmt.Errorf("could not load air unit: %w", err)
	}

	groundChanged := false
	for _, unit := range groundUnits {
		if emergency.IsAssigned(unit.ID) && !unit.Available {
			unit.Available = true
			groundChanged = true
		}
	}
	if groundChanged {
		if err := s.resources.SaveGroundUnits(ctx, groundUnits); err != nil {
			return fmt.Errorf("could not save ground units: %w", err)
		}
	}

	if airUnit != nil && emergency.IsAssigned(airUnit.ID) && !airUnit.Available {
		airUnit.Available = true
		if err := s.resources.SaveAirUnit(ctx, airUnit); err != nil {
			return fmt.Errorf("could not save air unit: %w", err)
		}
	}

	emergency.AssignedIDs = []string{}
	return nil
}

// removeAssigned убирает id из набора закреплений активного инцидента
func (s *emergencyService) removeAssigned(resourceID string) {
	assigned := s.active.AssignedIDs[:0]
	for _, id := range s.active.AssignedIDs {
		if id != resourceID {
			assigned = append(assigned, id)
		}
	}
	s.active.AssignedIDs = assigned
}

// publish отправляет семантическое событие во внешний слой уведомлений.
// Ошибки доставки не прерывают операцию ядра, только логируются.
func (s *emergencyService) publish(ctx context.Context, event webhook.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish webhook event")
	}
}
