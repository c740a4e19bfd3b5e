package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_awareness_system/internal/models"
)

const (
	alertQueueKey = "crisis_alert_events"
)

// AlertEvent - структура данных вебхука о критическом инциденте
type AlertEvent struct {
	IncidentID string           `json:"incident_id,omitempty"`
	Headline   string           `json:"headline"`
	Type       string           `json:"type,omitempty"`
	Severity   string           `json:"severity"`
	Agencies   []models.Agency  `json:"agencies"` // Службы, назначенные движком маршрутизации
	Location   *models.Location `json:"location,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации вебхуков
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
