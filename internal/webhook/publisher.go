package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/urgences_dashboard/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

const (
	webhookQueueKey = "urgences_webhook_events"
)

type EventKind string

const (
	EventIncidentCreated  EventKind = "incident.created"
	EventIncidentStatus   EventKind = "incident.status_changed"
	EventIncidentAssigned EventKind = "incident.assigned"
)

// IncidentEvent - событие жизненного цикла инцидента для внешних подписчиков
type IncidentEvent struct {
	Kind       EventKind             `json:"kind"`
	IncidentID string                `json:"incident_id"`
	Type       models.IncidentType   `json:"type"`
	SubType    string                `json:"sub_type"`
	Region     string                `json:"region,omitempty"`
	Status     models.IncidentStatus `json:"status"`
	AssignedTo string                `json:"assigned_to,omitempty"`
	ActorID    string                `json:"actor_id,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// NewIncidentEvent собирает событие из текущего состояния инцидента
func NewIncidentEvent(kind EventKind, incident *models.Incident, actor models.Actor) IncidentEvent {
	return IncidentEvent{
		Kind:       kind,
		IncidentID: incident.ID,
		Type:       incident.Type,
		SubType:    incident.SubType,
		Region:     incident.Region,
		Status:     incident.Status,
		AssignedTo: incident.AssignedTo,
		ActorID:    actor.ID,
		Timestamp:  time.Now().UTC(),
	}
}

// EventPublisher - интерфейс для публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
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
func (p *RedisEventPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда очередь событий не настроена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, IncidentEvent) error {
	return nil
}
