package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "dispatch_events"
)

// Типы событий диспетчеризации
const (
	EventDispatchCreated       = "dispatch.created"
	EventDispatchStatusChanged = "dispatch.status_changed"
)

// Event - событие жизненного цикла диспетчеризации для внешних потребителей
type Event struct {
	Type       string    `json:"type"`
	DispatchID uuid.UUID `json:"dispatch_id"`
	ReportID   uuid.UUID `json:"report_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий диспетчеризации
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
