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

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

// ListGroundUnits возвращает все наземные бригады
func (r *ResourceRepository) ListGroundUnits(ctx context.Context) ([]*models.GroundUnit, error) {
	query := `
		SELECT
			id,
			name,
			unit_type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			base,
			schedule,
			available
		FROM ground_units
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ground units: %w", err)
	}
	defer rows.Close()

	units := make([]*models.GroundUnit, 0)
	for rows.Next() {
		unit := &models.GroundUnit{}
		err := rows.Scan(
			&unit.ID,
			&unit.Name,
			&unit.Type,
			&unit.Latitude,
			&unit.Longitude,
			&unit.Base,
			&unit.Schedule,
			&unit.Available,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ground unit row: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error ground units iteration: %w", err)
	}
	return units, nil
}

// GetAirUnit возвращает вертолет. Если борта нет — (nil, nil).
func (r *ResourceRepository) GetAirUnit(ctx context.Context) (*models.AirUnit, error) {
	unit := &models.AirUnit{}
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			base,
			available,
			cruise_speed_kmh
		FROM air_units
		ORDER BY id
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query).Scan(
		&unit.ID,
		&unit.Name,
		&unit.Latitude,
		&unit.Longitude,
		&unit.Base,
		&unit.Available,
		&unit.CruiseSpeedKmh,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get air unit: %w", err)
	}
	return unit, nil
}

// SaveGroundUnits сохраняет состояние наземных бригад одной транзакцией
func (r *ResourceRepository) SaveGroundUnits(ctx context.Context, units []*models.GroundUnit) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE ground_units SET
			name = $1,
			unit_type = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326),
			base = $5,
			schedule = $6,
			available = $7
		WHERE id = $8;
	`
	for _, unit := range units {
		cmdTag, err := tx.Exec(ctx, query,
			unit.Name,
			unit.Type,
			unit.Longitude,
			unit.Latitude,
			unit.Base,
			unit.Schedule,
			unit.Available,
			unit.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to save ground unit %s: %w", unit.ID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("ground unit with id %s not found for save", unit.ID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ground units: %w", err)
	}
	return nil
}

// SaveAirUnit сохраняет состояние вертолета
func (r *ResourceRepository) SaveAirUnit(ctx context.Context, unit *models.AirUnit) error {
	query := `
		UPDATE air_units SET
			name = $1,
			location = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			base = $4,
			available = $5,
			cruise_speed_kmh = $6
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		unit.Name,
		unit.Longitude,
		unit.Latitude,
		unit.Base,
		unit.Available,
		unit.CruiseSpeedKmh,
		unit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save air unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("air unit with id %s not found for save", unit.ID)
	}
	return nil
}
