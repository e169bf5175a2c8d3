package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/shenikar/urgences_dashboard/internal/service"
	"github.com/shenikar/urgences_dashboard/internal/storage"
	"github.com/sirupsen/logrus"
)

type IncidentRepository struct {
	incidents *storage.Collection[models.Incident]
	now       func() time.Time
}

func NewIncidentRepository(kv storage.KV, prefix string, logger *logrus.Logger) service.IncidentRepository {
	return &IncidentRepository{
		incidents: storage.NewCollection[models.Incident](kv, storage.Key(prefix, storage.IncidentsCollection), logger),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create проверяет входные данные и сохраняет новый инцидент со статусом ALERT_RECEIVED
func (r *IncidentRepository) Create(ctx context.Context, in models.IncidentInput) (*models.Incident, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	incident := models.Incident{
		ID:          uuid.NewString(),
		Type:        in.Type,
		SubType:     in.SubType,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Address:     in.Address,
		Region:      in.Region,
		Description: in.Description,
		Attachments: in.Attachments,
		VictimCount: in.VictimCount,
		DangerLevel: in.DangerLevel,
		Status:      models.StatusAlertReceived,
		UserID:      in.UserID,
		Comments:    []models.Comment{},
		CreatedAt:   r.now(),
	}

	err := r.incidents.Mutate(ctx, func(records []models.Incident) ([]models.Incident, error) {
		return append(records, incident), nil
	})
	if err != nil {
		return nil, err
	}
	return incident.Clone(), nil
}

// GetAll возвращает все инциденты в порядке хранения
func (r *IncidentRepository) GetAll(ctx context.Context) []*models.Incident {
	return r.filter(ctx, func(*models.Incident) bool { return true })
}

func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	found := r.filter(ctx, func(i *models.Incident) bool { return i.ID == id })
	if len(found) == 0 {
		return nil, models.NotFoundError("incident", id)
	}
	return found[0], nil
}

// GetByRegion возвращает инциденты с точным совпадением региона
func (r *IncidentRepository) GetByRegion(ctx context.Context, region string) []*models.Incident {
	return r.filter(ctx, func(i *models.Incident) bool { return i.Region != "" && i.Region == region })
}

func (r *IncidentRepository) GetByUserID(ctx context.Context, userID string) []*models.Incident {
	return r.filter(ctx, func(i *models.Incident) bool { return i.UserID != "" && i.UserID == userID })
}

// UpdateStatus перезаписывает статус. Порядок статусов здесь не проверяется:
// администратор может выставить любой из четырех.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error) {
	return r.UpdateStatusIf(ctx, id, status, nil)
}

// UpdateStatusIf перезаписывает статус, если guard разрешает переход.
// Проверка и запись выполняются в одном Mutate, поэтому guard видит актуальный статус.
func (r *IncidentRepository) UpdateStatusIf(ctx context.Context, id string, status models.IncidentStatus, guard models.StatusGuard) (*models.Incident, error) {
	if !status.IsValid() {
		return nil, models.NewValidationError("status", "unknown status "+string(status))
	}
	return r.update(ctx, id, func(i *models.Incident) error {
		if guard != nil {
			if err := guard(i.Status); err != nil {
				return err
			}
		}
		i.Status = status
		return nil
	})
}

// AddComment добавляет комментарий в конец ленты
func (r *IncidentRepository) AddComment(ctx context.Context, id, author, message string) (*models.Incident, error) {
	if err := models.ValidateComment(message); err != nil {
		return nil, err
	}
	return r.update(ctx, id, func(i *models.Incident) error {
		i.Comments = append(i.Comments, models.Comment{
			Author:    author,
			Message:   message,
			CreatedAt: r.commentTime(i),
		})
		return nil
	})
}

// Assign записывает идентификатор администратора как есть, без проверки его существования
func (r *IncidentRepository) Assign(ctx context.Context, id, adminID string) (*models.Incident, error) {
	return r.update(ctx, id, func(i *models.Incident) error {
		i.AssignedTo = adminID
		return nil
	})
}

// commentTime не дает времени комментариев идти назад при скачках часов
func (r *IncidentRepository) commentTime(i *models.Incident) time.Time {
	now := r.now()
	if n := len(i.Comments); n > 0 && now.Before(i.Comments[n-1].CreatedAt) {
		return i.Comments[n-1].CreatedAt
	}
	return now
}

func (r *IncidentRepository) update(ctx context.Context, id string, apply func(*models.Incident) error) (*models.Incident, error) {
	var updated *models.Incident
	err := r.incidents.Mutate(ctx, func(records []models.Incident) ([]models.Incident, error) {
		for idx := range records {
			if records[idx].ID != id {
				continue
			}
			if err := apply(&records[idx]); err != nil {
				return nil, err
			}
			updated = records[idx].Clone()
			return records, nil
		}
		return nil, models.NotFoundError("incident", id)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *IncidentRepository) filter(ctx context.Context, keep func(*models.Incident) bool) []*models.Incident {
	records := r.incidents.GetAll(ctx)
	incidents := make([]*models.Incident, 0, len(records))
	for idx := range records {
		if keep(&records[idx]) {
			incidents = append(incidents, &records[idx])
		}
	}
	return incidents
}
