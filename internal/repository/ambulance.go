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

type AmbulanceRepository struct {
	db *pgxpool.Pool
}

func NewAmbulanceRepository(db *pgxpool.Pool) service.AmbulanceRepository {
	return &AmbulanceRepository{db: db}
}

const ambulanceColumns = `
	id,
	vehicle_number,
	station_id,
	status,
	driver_name,
	driver_phone,
	current_latitude,
	current_longitude,
	location_updated_at,
	current_report_id,
	created_at,
	updated_at`

func scanAmbulance(row pgx.Row) (*models.Ambulance, error) {
	ambulance := &models.Ambulance{}
	err := row.Scan(
		&ambulance.ID,
		&ambulance.VehicleNumber,
		&ambulance.StationID,
		&ambulance.Status,
		&ambulance.DriverName,
		&ambulance.DriverPhone,
		&ambulance.CurrentLatitude,
		&ambulance.CurrentLongitude,
		&ambulance.LocationUpdatedAt,
		&ambulance.CurrentReportID,
		&ambulance.CreatedAt,
		&ambulance.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ambulance, nil
}

// Create создает новую запись о машине в бд
func (r *AmbulanceRepository) Create(ctx context.Context, ambulance *models.Ambulance) error {
	query := `
		INSERT INTO ambulances (vehicle_number, station_id, status, driver_name, driver_phone)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		ambulance.VehicleNumber,
		ambulance.StationID,
		ambulance.Status,
		ambulance.DriverName,
		ambulance.DriverPhone,
	).Scan(&ambulance.ID, &ambulance.CreatedAt, &ambulance.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ambulance: %w", err)
	}
	return nil
}

// GetByID возвращает машину по ее UUID
func (r *AmbulanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ambulance, error) {
	query := `SELECT` + ambulanceColumns + ` FROM ambulances WHERE id = $1;`
	ambulance, err := scanAmbulance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ambulance by id: %w", err)
	}
	return ambulance, nil
}

// List возвращает все машины
func (r *AmbulanceRepository) List(ctx context.Context) ([]*models.Ambulance, error) {
	query := `SELECT` + ambulanceColumns + ` FROM ambulances ORDER BY status, vehicle_number;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulances: %w", err)
	}
	defer rows.Close()

	ambulances := make([]*models.Ambulance, 0)
	for rows.Next() {
		ambulance, err := scanAmbulance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ambulance row: %w", err)
		}
		ambulances = append(ambulances, ambulance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return ambulances, nil
}

// ClaimAvailable атомарно захватывает одну свободную машину станции:
// условие status = 'available' входит в обновление, так что две
// параллельные диспетчеризации не могут захватить одну и ту же машину.
// Возвращает (nil, nil), если свободных машин нет.
func (r *AmbulanceRepository) ClaimAvailable(ctx context.Context, stationID, reportID uuid.UUID) (*models.Ambulance, error) {
	query := `
		UPDATE ambulances SET
			status = 'dispatched',
			current_report_id = $2,
			updated_at = NOW()
		WHERE id = (
			SELECT id FROM ambulances
			WHERE station_id = $1 AND status = 'available'
			ORDER BY vehicle_number
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING` + ambulanceColumns + `;
	`
	ambulance, err := scanAmbulance(r.db.QueryRow(ctx, query, stationID, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim available ambulance: %w", err)
	}
	return ambulance, nil
}

// CountByStation возвращает количество машин, приписанных к станции
func (r *AmbulanceRepository) CountByStation(ctx context.Context, stationID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ambulances WHERE station_id = $1;`, stationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ambulances by station: %w", err)
	}
	return count, nil
}

// SetStatus обновляет статус машины
func (r *AmbulanceRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) error {
	query := `UPDATE ambulances SET status = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set ambulance status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %s not found for status update", id)
	}
	return nil
}

// ReleaseFromDispatch возвращает машину в статус available и очищает привязку к отчету
func (r *AmbulanceRepository) ReleaseFromDispatch(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE ambulances SET
			status = 'available',
			current_report_id = NULL,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to release ambulance from dispatch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %s not found for release", id)
	}
	return nil
}

// UpdateLocation обновляет текущие координаты машины
func (r *AmbulanceRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	query := `
		UPDATE ambulances SET
			current_latitude = $1,
			current_longitude = $2,
			location_updated_at = NOW(),
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lon, id)
	if err != nil {
		return fmt.Errorf("failed to update ambulance location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ambulance with id %s not found for location update", id)
	}
	return nil
}
