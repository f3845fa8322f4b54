package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const reportColumns = `
	id,
	incident_photo_key,
	reporter_photo_key,
	latitude,
	longitude,
	governorate,
	district,
	full_address,
	status,
	dispatch_status,
	dispatch_id,
	ambulance_notified,
	notes,
	ip_address,
	user_agent,
	created_at,
	updated_at`

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID,
		&report.IncidentPhotoKey,
		&report.ReporterPhotoKey,
		&report.Latitude,
		&report.Longitude,
		&report.Governorate,
		&report.District,
		&report.FullAddress,
		&report.Status,
		&report.DispatchStatus,
		&report.DispatchID,
		&report.AmbulanceNotified,
		&report.Notes,
		&report.IPAddress,
		&report.UserAgent,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Create создает новую запись об отчете в бд. Идентификатор отчета
// генерируется сервисом заранее, чтобы ключи фотографий могли его содержать.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (id, incident_photo_key, reporter_photo_key, latitude, longitude, governorate, district, full_address, status, dispatch_status, notes, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.ID,
		report.IncidentPhotoKey,
		report.ReporterPhotoKey,
		report.Latitude,
		report.Longitude,
		report.Governorate,
		report.District,
		report.FullAddress,
		report.Status,
		report.DispatchStatus,
		report.Notes,
		report.IPAddress,
		report.UserAgent,
	).Scan(&report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID возвращает отчет по его UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports WHERE id = $1;`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List возвращает отчеты с пагинацией и необязательным фильтром по губернаторству
func (r *ReportRepository) List(ctx context.Context, page, pageSize int, governorate string) ([]*models.Report, int, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	where := ``
	args := []any{}
	if governorate != "" {
		where = ` WHERE governorate = $1`
		args = append(args, governorate)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM reports` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	query := `SELECT` + reportColumns + ` FROM reports` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, total, nil
}

// LinkDispatch привязывает диспетчеризацию к отчету и помечает службу уведомленной
func (r *ReportRepository) LinkDispatch(ctx context.Context, reportID, dispatchID uuid.UUID, status models.ReportStatus, dispatchStatus models.DispatchStatus) error {
	query := `
		UPDATE reports SET
			dispatch_id = $2,
			status = $3,
			dispatch_status = $4,
			ambulance_notified = TRUE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, reportID, dispatchID, status, dispatchStatus)
	if err != nil {
		return fmt.Errorf("failed to link dispatch to report: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for dispatch link", reportID)
	}
	return nil
}

// SyncStatus обновляет денормализованные статусные поля отчета
func (r *ReportRepository) SyncStatus(ctx context.Context, reportID uuid.UUID, status models.ReportStatus, dispatchStatus models.DispatchStatus) error {
	query := `
		UPDATE reports SET
			status = $2,
			dispatch_status = $3,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, reportID, status, dispatchStatus)
	if err != nil {
		return fmt.Errorf("failed to sync report status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for status sync", reportID)
	}
	return nil
}

// CountByStatus возвращает количество отчетов в каждом статусе
func (r *ReportRepository) CountByStatus(ctx context.Context) (map[models.ReportStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM reports GROUP BY status;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ReportStatus]int)
	for rows.Next() {
		var status models.ReportStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan report count row: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error count iteration: %w", err)
	}
	return counts, nil
}

// GetReportFromCache пытается получить отчет из Redis
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	key := fmt.Sprintf("report:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache сохраняет отчет в Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	key := fmt.Sprintf("report:%s", report.ID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache удаляет отчет из Redis кэша
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("report:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}
