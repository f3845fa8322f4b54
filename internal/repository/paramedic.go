package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

type ParamedicRepository struct {
	db *pgxpool.Pool
}

func NewParamedicRepository(db *pgxpool.Pool) service.ParamedicRepository {
	return &ParamedicRepository{db: db}
}

// Create создает новую запись о фельдшере в бд
func (r *ParamedicRepository) Create(ctx context.Context, paramedic *models.Paramedic) error {
	query := `
		INSERT INTO paramedics (name, phone, ambulance_id, station_id, is_active)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		paramedic.Name,
		paramedic.Phone,
		paramedic.AmbulanceID,
		paramedic.StationID,
		paramedic.IsActive,
	).Scan(&paramedic.ID, &paramedic.CreatedAt, &paramedic.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create paramedic: %w", err)
	}
	return nil
}

// FindActiveByAmbulance возвращает активного фельдшера, закрепленного за
// машиной, или (nil, nil), если такого нет
func (r *ParamedicRepository) FindActiveByAmbulance(ctx context.Context, ambulanceID uuid.UUID) (*models.Paramedic, error) {
	query := `
		SELECT id, name, phone, ambulance_id, station_id, is_active, created_at, updated_at
		FROM paramedics
		WHERE ambulance_id = $1 AND is_active = TRUE
		LIMIT 1;
	`
	paramedic := &models.Paramedic{}
	err := r.db.QueryRow(ctx, query, ambulanceID).Scan(
		&paramedic.ID,
		&paramedic.Name,
		&paramedic.Phone,
		&paramedic.AmbulanceID,
		&paramedic.StationID,
		&paramedic.IsActive,
		&paramedic.CreatedAt,
		&paramedic.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find paramedic by ambulance: %w", err)
	}
	return paramedic, nil
}
