package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type EmergencyLogRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyLogRepository(db *pgxpool.Pool) service.EmergencyLogRepository {
	return &EmergencyLogRepository{
		db: db,
	}
}

// LogEmergency сохраняет запись о созданном инциденте в журнал
func (r *EmergencyLogRepository) LogEmergency(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergency_log (emergency_id, location, priority)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4);
	`
	_, err := r.db.Exec(ctx, query,
		emergency.ID,
		emergency.Longitude,
		emergency.Latitude,
		emergency.Priority,
	)
	if err != nil {
		return fmt.Errorf("failed to log emergency: %w", err)
	}
	return nil
}

// GetEmergencyStats возвращает количество инцидентов за последние minutes минут
func (r *EmergencyLogRepository) GetEmergencyStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM emergency_log
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get emergency stats: %w", err)
	}
	return count, nil
}
