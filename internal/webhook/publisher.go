package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// Типы семантических событий ядра
const (
	EventEmergencyCreated = "emergency_created"
	EventEmergencyCleared = "emergency_cleared"
	EventResourceAssigned = "resource_assigned"
	EventResourceReleased = "resource_released"
	EventPointProposed    = "evacuation_point_proposed"
)

// Event - структура данных вебхука. Ядро отдает только данные,
// форматирование пользовательских строк остается за получателем.
type Event struct {
	Type         string                    `json:"event_type"`
	Timestamp    time.Time                 `json:"timestamp"`
	EmergencyID  string                    `json:"emergency_id,omitempty"`
	ResourceID   string                    `json:"resource_id,omitempty"`
	ResourceKind string                    `json:"resource_kind,omitempty"`
	PointID      string                    `json:"point_id,omitempty"`
	Latitude     float64                   `json:"latitude"`
	Longitude    float64                   `json:"longitude"`
	Estimates    []*models.ArrivalEstimate `json:"estimates,omitempty"`
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
