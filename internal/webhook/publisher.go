package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/urbanaccess/report-api/internal/models"
)

const (
	eventQueueKey = "report_events"
)

// ReportEvent is the payload delivered to the configured webhook endpoint
// whenever a report is created or changes status.
type ReportEvent struct {
	ReportID       uuid.UUID           `json:"report_id"`
	Title          string              `json:"title"`
	Status         models.ReportStatus `json:"status"`
	PreviousStatus models.ReportStatus `json:"previous_status,omitempty"`
	UpdatedBy      uuid.UUID           `json:"updated_by"`
	Timestamp      time.Time           `json:"timestamp"`
}

// EventPublisher enqueues report events for asynchronous delivery.
type EventPublisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisEventPublisher implements EventPublisher on a Redis list.
type RedisEventPublisher struct {
	redisClient *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the Redis queue consumed by the delivery
// worker.
func (p *RedisEventPublisher) Publish(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event to Redis: %w", err)
	}
	return nil
}
