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

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{db: db}
}

const dispatchColumns = `
	id,
	report_id,
	station_id,
	ambulance_id,
	paramedic_id,
	status,
	priority,
	dispatched_at,
	accepted_at,
	departed_at,
	arrived_at,
	completed_at,
	cancelled_at,
	distance_km,
	estimated_arrival,
	driver_notes,
	created_at,
	updated_at`

func scanDispatch(row pgx.Row) (*models.Dispatch, error) {
	dispatch := &models.Dispatch{}
	err := row.Scan(
		&dispatch.ID,
		&dispatch.ReportID,
		&dispatch.StationID,
		&dispatch.AmbulanceID,
		&dispatch.ParamedicID,
		&dispatch.Status,
		&dispatch.Priority,
		&dispatch.Timeline.Dispatched,
		&dispatch.Timeline.Accepted,
		&dispatch.Timeline.Departed,
		&dispatch.Timeline.Arrived,
		&dispatch.Timeline.Completed,
		&dispatch.Timeline.Cancelled,
		&dispatch.DistanceKm,
		&dispatch.EstimatedArrival,
		&dispatch.DriverNotes,
		&dispatch.CreatedAt,
		&dispatch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dispatch, nil
}

// Create создает новую запись о диспетчеризации в бд
func (r *DispatchRepository) Create(ctx context.Context, dispatch *models.Dispatch) error {
	query := `
		INSERT INTO dispatches (report_id, station_id, ambulance_id, paramedic_id, status, priority, dispatched_at, distance_km, estimated_arrival, driver_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		dispatch.ReportID,
		dispatch.StationID,
		dispatch.AmbulanceID,
		dispatch.ParamedicID,
		dispatch.Status,
		dispatch.Priority,
		dispatch.Timeline.Dispatched,
		dispatch.DistanceKm,
		dispatch.EstimatedArrival,
		dispatch.DriverNotes,
	).Scan(&dispatch.ID, &dispatch.CreatedAt, &dispatch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create dispatch: %w", err)
	}
	return nil
}

// GetByID возвращает диспетчеризацию по ее UUID
func (r *DispatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dispatch, error) {
	query := `SELECT` + dispatchColumns + ` FROM dispatches WHERE id = $1;`
	dispatch, err := scanDispatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dispatch by id: %w", err)
	}
	return dispatch, nil
}

// Update сохраняет статус, отметки времени и заметки диспетчеризации
func (r *DispatchRepository) Update(ctx context.Context, dispatch *models.Dispatch) error {
	query := `
		UPDATE dispatches SET
			status = $1,
			accepted_at = $2,
			departed_at = $3,
			arrived_at = $4,
			completed_at = $5,
			cancelled_at = $6,
			driver_notes = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		dispatch.Status,
		dispatch.Timeline.Accepted,
		dispatch.Timeline.Departed,
		dispatch.Timeline.Arrived,
		dispatch.Timeline.Completed,
		dispatch.Timeline.Cancelled,
		dispatch.DriverNotes,
		dispatch.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dispatch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch with id %s not found for update", dispatch.ID)
	}
	return nil
}

// ListActiveByAmbulance возвращает незавершенные диспетчеризации машины
func (r *DispatchRepository) ListActiveByAmbulance(ctx context.Context, ambulanceID uuid.UUID) ([]*models.Dispatch, error) {
	query := `SELECT` + dispatchColumns + `
		FROM dispatches
		WHERE ambulance_id = $1
			AND status IN ('pending', 'dispatched', 'accepted', 'en_route', 'arrived')
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ambulanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active dispatches by ambulance: %w", err)
	}
	defer rows.Close()

	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		dispatch, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return dispatches, nil
}

// List возвращает последние диспетчеризации, опционально отфильтрованные
// по статусу. Выборка ограничена, сортировка от новых к старым.
func (r *DispatchRepository) List(ctx context.Context, status models.DispatchStatus, limit int) ([]*models.Dispatch, error) {
	query := `SELECT` + dispatchColumns + `
		FROM dispatches
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()

	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		dispatch, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return dispatches, nil
}

// ListActive возвращает все незавершенные диспетчеризации
func (r *DispatchRepository) ListActive(ctx context.Context) ([]*models.Dispatch, error) {
	query := `SELECT` + dispatchColumns + `
		FROM dispatches
		WHERE status IN ('pending', 'dispatched', 'accepted', 'en_route', 'arrived')
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active dispatches: %w", err)
	}
	defer rows.Close()

	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		dispatch, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return dispatches, nil
}

// CountActive возвращает количество незавершенных диспетчеризаций
func (r *DispatchRepository) CountActive(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*) FROM dispatches
		WHERE status IN ('pending', 'dispatched', 'accepted', 'en_route', 'arrived');
	`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active dispatches: %w", err)
	}
	return count, nil
}

// AverageResponseMinutes возвращает среднее время от назначения до прибытия
// по завершенным выездам в минутах
func (r *DispatchRepository) AverageResponseMinutes(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (arrived_at - dispatched_at)) / 60), 0)
		FROM dispatches
		WHERE arrived_at IS NOT NULL AND dispatched_at IS NOT NULL;
	`
	var avg float64
	if err := r.db.QueryRow(ctx, query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to compute average response minutes: %w", err)
	}
	return avg, nil
}
