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

type AlertRepository struct {
	alerts *storage.Collection[models.Alert]
	now    func() time.Time
}

func NewAlertRepository(kv storage.KV, prefix string, logger *logrus.Logger) service.AlertRepository {
	return &AlertRepository{
		alerts: storage.NewCollection[models.Alert](kv, storage.Key(prefix, storage.AlertsCollection), logger),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *AlertRepository) Create(ctx context.Context, in models.AlertInput) (*models.Alert, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	alert := models.Alert{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Message:   in.Message,
		Level:     in.Level,
		Active:    in.Active,
		Scope:     in.Scope,
		Region:    in.Region,
		CreatedAt: r.now(),
	}
	err := r.alerts.Mutate(ctx, func(records []models.Alert) ([]models.Alert, error) {
		return append(records, alert), nil
	})
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// Update заменяет изменяемые поля, сохраняя идентификатор и время создания
func (r *AlertRepository) Update(ctx context.Context, id string, in models.AlertInput) (*models.Alert, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated models.Alert
	err := r.alerts.Mutate(ctx, func(records []models.Alert) ([]models.Alert, error) {
		for idx := range records {
			if records[idx].ID != id {
				continue
			}
			a := &records[idx]
			a.Title = in.Title
			a.Message = in.Message
			a.Level = in.Level
			a.Active = in.Active
			a.Scope = in.Scope
			a.Region = in.Region
			updated = *a
			return records, nil
		}
		return nil, models.NotFoundError("alert", id)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *AlertRepository) Delete(ctx context.Context, id string) error {
	return r.alerts.Mutate(ctx, func(records []models.Alert) ([]models.Alert, error) {
		for idx := range records {
			if records[idx].ID == id {
				return append(records[:idx], records[idx+1:]...), nil
			}
		}
		return nil, models.NotFoundError("alert", id)
	})
}

func (r *AlertRepository) GetAll(ctx context.Context) []*models.Alert {
	return r.filter(ctx, func(*models.Alert) bool { return true })
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*models.Alert, error) {
	found := r.filter(ctx, func(a *models.Alert) bool { return a.ID == id })
	if len(found) == 0 {
		return nil, models.NotFoundError("alert", id)
	}
	return found[0], nil
}

// GetByRegion возвращает глобальные оповещения и региональные оповещения указанного региона
func (r *AlertRepository) GetByRegion(ctx context.Context, region string) []*models.Alert {
	return r.filter(ctx, func(a *models.Alert) bool { return a.VisibleIn(region) })
}

func (r *AlertRepository) filter(ctx context.Context, keep func(*models.Alert) bool) []*models.Alert {
	records := r.alerts.GetAll(ctx)
	alerts := make([]*models.Alert, 0, len(records))
	for idx := range records {
		if keep(&records[idx]) {
			alerts = append(alerts, &records[idx])
		}
	}
	return alerts
}
