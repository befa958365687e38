package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hobbyclass/geo_checkin_system/internal/models"
	"github.com/hobbyclass/geo_checkin_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// Срок жизни кеша занятий
const classCacheTTL = 5 * time.Minute

type CheckInRepository struct {
	db          Querier
	redisClient *redis.Client
}

func NewCheckInRepository(db Querier, redisClient *redis.Client) service.CheckInRepository {
	return &CheckInRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// GetClassByID возвращает занятие по его UUID вместе с настройками геозоны
func (r *CheckInRepository) GetClassByID(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	class := &models.Class{}
	query := `
		SELECT
			id,
			name,
			venue_type,
			class_type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			duration_minutes,
			to_char(start_date, 'YYYY-MM-DD') as start_date,
			to_char(start_time, 'HH24:MI:SS') as start_time,
			geo_fence,
			created_at,
			updated_at
		FROM classes
		WHERE id = $1;
	`
	var fenceJSON []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.VenueType,
		&class.ClassType,
		&class.Latitude,
		&class.Longitude,
		&class.DurationMinutes,
		&class.StartDate,
		&class.StartTime,
		&fenceJSON,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("class with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get class by id: %w", err)
	}

	if len(fenceJSON) > 0 {
		fence := &models.GeoFenceSettings{}
		if err := json.Unmarshal(fenceJSON, fence); err != nil {
			return nil, fmt.Errorf("failed to unmarshal geo-fence settings: %w", err)
		}
		class.GeoFence = fence
	}
	return class, nil
}

// UpdateClassGeoFence сохраняет настройки геозоны занятия (nil снимает геозону)
func (r *CheckInRepository) UpdateClassGeoFence(ctx context.Context, id uuid.UUID, fence *models.GeoFenceSettings) error {
	query := `
		UPDATE classes SET
			geo_fence = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	var fenceJSON []byte
	if fence != nil {
		var err error
		fenceJSON, err = json.Marshal(fence)
		if err != nil {
			return fmt.Errorf("failed to marshal geo-fence settings: %w", err)
		}
	}
	cmdTag, err := r.db.Exec(ctx, query, fenceJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update class geo-fence: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("class with id %s not found for geo-fence update", id)
	}
	return nil
}

// ListLocationHistory возвращает последние limit показаний геолокации
// пользователя по брони в хронологическом порядке
func (r *CheckInRepository) ListLocationHistory(ctx context.Context, userID string, bookingID uuid.UUID, limit int) ([]models.LocationSample, error) {
	query := `
		SELECT latitude, longitude, accuracy, source, privacy_rounded, recorded_at
		FROM (
			SELECT
				ST_Y(location::geometry) as latitude,
				ST_X(location::geometry) as longitude,
				accuracy,
				source,
				privacy_rounded,
				recorded_at
			FROM location_samples
			WHERE user_id = $1 AND booking_id = $2
			ORDER BY recorded_at DESC
			LIMIT $3
		) recent
		ORDER BY recorded_at ASC;
	`
	rows, err := r.db.Query(ctx, query, userID, bookingID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list location history: %w", err)
	}
	defer rows.Close()

	samples := make([]models.LocationSample, 0)
	for rows.Next() {
		sample := models.LocationSample{}
		err := rows.Scan(
			&sample.Latitude,
			&sample.Longitude,
			&sample.Accuracy,
			&sample.Source,
			&sample.PrivacyRounded,
			&sample.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location sample row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error location history iteration: %w", err)
	}
	return samples, nil
}

// SaveLocationSample дописывает показание геолокации в историю брони
func (r *CheckInRepository) SaveLocationSample(ctx context.Context, userID string, bookingID uuid.UUID, sample models.LocationSample) error {
	query := `
		INSERT INTO location_samples (user_id, booking_id, location, accuracy, source, privacy_rounded, recorded_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		userID,
		bookingID,
		sample.Longitude,
		sample.Latitude,
		sample.Accuracy,
		sample.Source,
		sample.PrivacyRounded,
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save location sample: %w", err)
	}
	return nil
}

// SaveCheckInAttempt фиксирует попытку чекина. Для успешных попыток действует
// частичный уникальный индекс по booking_id: конкурирующая успешная попытка
// не вставляется, и метод возвращает false.
func (r *CheckInRepository) SaveCheckInAttempt(ctx context.Context, attempt *models.CheckInAttempt) (bool, error) {
	query := `
		INSERT INTO check_in_attempts
			(id, booking_id, user_id, class_id, attempted_at, success, method, failure_reason, distance_meters, fraud_score, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (booking_id) WHERE success DO NOTHING;
	`
	var locationJSON []byte
	if attempt.Location != nil {
		var err error
		locationJSON, err = json.Marshal(attempt.Location)
		if err != nil {
			return false, fmt.Errorf("failed to marshal attempt location: %w", err)
		}
	}
	cmdTag, err := r.db.Exec(ctx, query,
		attempt.ID,
		attempt.BookingID,
		attempt.UserID,
		attempt.ClassID,
		attempt.AttemptedAt,
		attempt.Success,
		attempt.Method,
		attempt.FailureReason,
		attempt.DistanceMeters,
		attempt.FraudScore,
		locationJSON,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save check-in attempt: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// GetCheckInStats возвращает количество уникальных пользователей
// с попытками чекина за последние minutes минут
func (r *CheckInRepository) GetCheckInStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM check_in_attempts
		WHERE attempted_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get check-in stats: %w", err)
	}
	return count, nil
}

// GetClassFromCache пытается получить занятие из Redis
func (r *CheckInRepository) GetClassFromCache(ctx context.Context, id uuid.UUID) (*models.Class, error) {
	key := fmt.Sprintf("class:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get class from cache: %w", err)
	}

	class := &models.Class{}
	if err := json.Unmarshal(val, class); err != nil {
		return nil, fmt.Errorf("failed to unmarshal class from cache: %w", err)
	}
	return class, nil
}

// SetClassCache сохраняет занятие в Redis
func (r *CheckInRepository) SetClassCache(ctx context.Context, class *models.Class) error {
	key := fmt.Sprintf("class:%s", class.ID.String())
	val, err := json.Marshal(class)
	if err != nil {
		return fmt.Errorf("failed to marshal class for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, classCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set class in cache: %w", err)
	}
	return nil
}

// InvalidateClassCache удаляет занятие из Redis кэша
func (r *CheckInRepository) InvalidateClassCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("class:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate class cache: %w", err)
	}
	return nil
}
