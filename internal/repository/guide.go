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

type GuideRepository struct {
	guides *storage.Collection[models.Guide]
	now    func() time.Time
}

func NewGuideRepository(kv storage.KV, prefix string, logger *logrus.Logger) service.GuideRepository {
	return &GuideRepository{
		guides: storage.NewCollection[models.Guide](kv, storage.Key(prefix, storage.GuidesCollection), logger),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *GuideRepository) Create(ctx context.Context, in models.GuideInput) (*models.Guide, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	guide := models.Guide{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		CreatedAt: r.now(),
	}
	err := r.guides.Mutate(ctx, func(records []models.Guide) ([]models.Guide, error) {
		return append(records, guide), nil
	})
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *GuideRepository) GetAll(ctx context.Context) []*models.Guide {
	records := r.guides.GetAll(ctx)
	guides := make([]*models.Guide, len(records))
	for idx := range records {
		guides[idx] = &records[idx]
	}
	return guides
}

func (r *GuideRepository) GetByID(ctx context.Context, id string) (*models.Guide, error) {
	for _, g := range r.GetAll(ctx) {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, models.NotFoundError("guide", id)
}

// Replace заменяет содержимое гайда на месте: идентификатор и время создания сохраняются
func (r *GuideRepository) Replace(ctx context.Context, id string, in models.GuideInput) (*models.Guide, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var replaced models.Guide
	err := r.guides.Mutate(ctx, func(records []models.Guide) ([]models.Guide, error) {
		for idx := range records {
			if records[idx].ID != id {
				continue
			}
			records[idx].Title = in.Title
			records[idx].Content = in.Content
			records[idx].Category = in.Category
			replaced = records[idx]
			return records, nil
		}
		return nil, models.NotFoundError("guide", id)
	})
	if err != nil {
		return nil, err
	}
	return &replaced, nil
}

func (r *GuideRepository) Delete(ctx context.Context, id string) error {
	return r.guides.Mutate(ctx, func(records []models.Guide) ([]models.Guide, error) {
		for idx := range records {
			if records[idx].ID == id {
				return append(records[:idx], records[idx+1:]...), nil
			}
		}
		return nil, models.NotFoundError("guide", id)
	})
}
