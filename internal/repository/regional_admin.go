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

type RegionalAdminRepository struct {
	admins *storage.Collection[models.RegionalAdmin]
	now    func() time.Time
}

func NewRegionalAdminRepository(kv storage.KV, prefix string, logger *logrus.Logger) service.RegionalAdminRepository {
	return &RegionalAdminRepository{
		admins: storage.NewCollection[models.RegionalAdmin](kv, storage.Key(prefix, storage.RegionalAdminsCollection), logger),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *RegionalAdminRepository) Create(ctx context.Context, in models.RegionalAdminInput) (*models.RegionalAdmin, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	admin := models.RegionalAdmin{
		ID:                   uuid.NewString(),
		FullName:             in.FullName,
		Email:                in.Email,
		Phone:                in.Phone,
		Region:               in.Region,
		Permissions:          in.Permissions,
		NotificationsEnabled: in.NotificationsEnabled,
		Active:               in.Active,
		Role:                 models.RoleRegionalAdmin,
		CreatedAt:            r.now(),
	}
	err := r.admins.Mutate(ctx, func(records []models.RegionalAdmin) ([]models.RegionalAdmin, error) {
		return append(records, admin), nil
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *RegionalAdminRepository) Update(ctx context.Context, id string, in models.RegionalAdminInput) (*models.RegionalAdmin, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated models.RegionalAdmin
	err := r.admins.Mutate(ctx, func(records []models.RegionalAdmin) ([]models.RegionalAdmin, error) {
		for idx := range records {
			if records[idx].ID != id {
				continue
			}
			a := &records[idx]
			a.FullName = in.FullName
			a.Email = in.Email
			a.Phone = in.Phone
			a.Region = in.Region
			a.Permissions = in.Permissions
			a.NotificationsEnabled = in.NotificationsEnabled
			a.Active = in.Active
			a.Role = models.RoleRegionalAdmin
			updated = *a
			return records, nil
		}
		return nil, models.NotFoundError("regional admin", id)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *RegionalAdminRepository) Delete(ctx context.Context, id string) error {
	return r.admins.Mutate(ctx, func(records []models.RegionalAdmin) ([]models.RegionalAdmin, error) {
		for idx := range records {
			if records[idx].ID == id {
				return append(records[:idx], records[idx+1:]...), nil
			}
		}
		return nil, models.NotFoundError("regional admin", id)
	})
}

func (r *RegionalAdminRepository) GetAll(ctx context.Context) []*models.RegionalAdmin {
	return r.filter(ctx, func(*models.RegionalAdmin) bool { return true })
}

func (r *RegionalAdminRepository) GetByID(ctx context.Context, id string) (*models.RegionalAdmin, error) {
	found := r.filter(ctx, func(a *models.RegionalAdmin) bool { return a.ID == id })
	if len(found) == 0 {
		return nil, models.NotFoundError("regional admin", id)
	}
	return found[0], nil
}

// GetActive возвращает администраторов, которым можно назначать инциденты
func (r *RegionalAdminRepository) GetActive(ctx context.Context) []*models.RegionalAdmin {
	return r.filter(ctx, func(a *models.RegionalAdmin) bool { return a.Active })
}

func (r *RegionalAdminRepository) filter(ctx context.Context, keep func(*models.RegionalAdmin) bool) []*models.RegionalAdmin {
	records := r.admins.GetAll(ctx)
	admins := make([]*models.RegionalAdmin, 0, len(records))
	for idx := range records {
		if keep(&records[idx]) {
			admins = append(admins, &records[idx])
		}
	}
	return admins
}
