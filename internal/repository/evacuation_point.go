package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const (
	pointsCacheKey = "evacuation_points:all"
	pointsCacheTTL = 5 * time.Minute
)

type EvacuationPointRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewEvacuationPointRepository(db *pgxpool.Pool, redisClient *redis.Client) service.EvacuationPointRepository {
	return &EvacuationPointRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ListPoints возвращает все точки эвакуации в порядке создания
func (r *EvacuationPointRepository) ListPoints(ctx context.Context) ([]*models.EvacuationPoint, error) {
	query := `
		SELECT
			id,
			name,
			locality,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			description,
			status,
			restrictions,
			daytime_only,
			created_by,
			photos,
			created_at
		FROM evacuation_points
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list evacuation points: %w", err)
	}
	defer rows.Close()

	points := make([]*models.EvacuationPoint, 0)
	for rows.Next() {
		point := &models.EvacuationPoint{}
		err := rows.Scan(
			&point.ID,
			&point.Name,
			&point.Locality,
			&point.Latitude,
			&point.Longitude,
			&point.Description,
			&point.Status,
			&point.Restrictions,
			&point.DaytimeOnly,
			&point.CreatedBy,
			&point.Photos,
			&point.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evacuation point row: %w", err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error evacuation points iteration: %w", err)
	}
	return points, nil
}

// CreatePoint создает новую точку эвакуации. Точки только добавляются,
// редактирования и удаления со стороны ядра нет.
func (r *EvacuationPointRepository) CreatePoint(ctx context.Context, point *models.EvacuationPoint) error {
	query := `
		INSERT INTO evacuation_points (name, locality, location, description, status, restrictions, daytime_only, created_by, photos)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8, $9, $10) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		point.Name,
		point.Locality,
		point.Longitude,
		point.Latitude,
		point.Description,
		point.Status,
		point.Restrictions,
		point.DaytimeOnly,
		point.CreatedBy,
		point.Photos,
	).Scan(&point.ID, &point.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create evacuation point: %w", err)
	}
	return nil
}

// GetPointsFromCache пытается получить список точек из Redis.
// Промах кеша — (nil, nil).
func (r *EvacuationPointRepository) GetPointsFromCache(ctx context.Context) ([]*models.EvacuationPoint, error) {
	val, err := r.redisClient.Get(ctx, pointsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evacuation points from cache: %w", err)
	}

	points := make([]*models.EvacuationPoint, 0)
	if err := json.Unmarshal(val, &points); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evacuation points from cache: %w", err)
	}
	return points, nil
}

// SetPointsCache сохраняет список точек в Redis
func (r *EvacuationPointRepository) SetPointsCache(ctx context.Context, points []*models.EvacuationPoint) error {
	val, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to marshal evacuation points for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, pointsCacheKey, val, pointsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set evacuation points in cache: %w", err)
	}
	return nil
}

// InvalidatePointsCache удаляет список точек из Redis кэша
func (r *EvacuationPointRepository) InvalidatePointsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, pointsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate evacuation points cache: %w", err)
	}
	return nil
}
