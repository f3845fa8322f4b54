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

type StationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) service.StationRepository {
	return &StationRepository{db: db}
}

const stationColumns = `
	id,
	name,
	governorate,
	district,
	latitude,
	longitude,
	address,
	contact_phone,
	total_ambulances,
	available_ambulances,
	is_active,
	created_at,
	updated_at`

func scanStation(row pgx.Row) (*models.Station, error) {
	station := &models.Station{}
	err := row.Scan(
		&station.ID,
		&station.Name,
		&station.Governorate,
		&station.District,
		&station.Latitude,
		&station.Longitude,
		&station.Address,
		&station.ContactPhone,
		&station.TotalAmbulances,
		&station.AvailableAmbulances,
		&station.IsActive,
		&station.CreatedAt,
		&station.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return station, nil
}

// Create создает новую запись о станции в бд
func (r *StationRepository) Create(ctx context.Context, station *models.Station) error {
	query := `
		INSERT INTO stations (name, governorate, district, latitude, longitude, address, contact_phone, total_ambulances, available_ambulances, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		station.Name,
		station.Governorate,
		station.District,
		station.Latitude,
		station.Longitude,
		station.Address,
		station.ContactPhone,
		station.TotalAmbulances,
		station.AvailableAmbulances,
		station.IsActive,
	).Scan(&station.ID, &station.CreatedAt, &station.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}

// GetByID возвращает станцию по ее UUID
func (r *StationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Station, error) {
	query := `SELECT` + stationColumns + ` FROM stations WHERE id = $1;`
	station, err := scanStation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get station by id: %w", err)
	}
	return station, nil
}

// List возвращает все станции
func (r *StationRepository) List(ctx context.Context) ([]*models.Station, error) {
	query := `SELECT` + stationColumns + ` FROM stations ORDER BY governorate, name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	stations := make([]*models.Station, 0)
	for rows.Next() {
		station, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return stations, nil
}

// FindAvailable возвращает активные станции со свободными машинами,
// при заданном губернаторстве - только в нем
func (r *StationRepository) FindAvailable(ctx context.Context, governorate string) ([]*models.Station, error) {
	query := `SELECT` + stationColumns + `
		FROM stations
		WHERE is_active = TRUE AND available_ambulances > 0`
	args := []any{}
	if governorate != "" {
		query += ` AND governorate = $1`
		args = append(args, governorate)
	}
	query += ` ORDER BY id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find available stations: %w", err)
	}
	defer rows.Close()

	stations := make([]*models.Station, 0)
	for rows.Next() {
		station, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row in FindAvailable: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindAvailable: %w", err)
	}
	return stations, nil
}

// Reserve атомарно уменьшает счетчик свободных машин на единицу.
// Условие available_ambulances > 0 входит в само обновление, поэтому
// параллельные вызовы не могут увести счетчик ниже нуля.
func (r *StationRepository) Reserve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE stations SET
			available_ambulances = available_ambulances - 1,
			updated_at = NOW()
		WHERE id = $1 AND available_ambulances > 0;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to reserve station capacity: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// Release атомарно увеличивает счетчик свободных машин на единицу,
// не позволяя ему превысить total_ambulances
func (r *StationRepository) Release(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE stations SET
			available_ambulances = available_ambulances + 1,
			updated_at = NOW()
		WHERE id = $1 AND available_ambulances < total_ambulances;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to release station capacity: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// AvailabilityTotals возвращает суммарные свободные и общие машины по всем станциям
func (r *StationRepository) AvailabilityTotals(ctx context.Context) (int, int, error) {
	query := `
		SELECT COALESCE(SUM(available_ambulances), 0), COALESCE(SUM(total_ambulances), 0)
		FROM stations
		WHERE is_active = TRUE;
	`
	var available, total int
	if err := r.db.QueryRow(ctx, query).Scan(&available, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to get availability totals: %w", err)
	}
	return available, total, nil
}
