package service

import (
	"context"
	"fmt"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=regional_admin.go -destination=mocks/regional_admin.go -package=mocks

// RegionalAdminRepository определяет контракт справочника региональных администраторов
type RegionalAdminRepository interface {
	Create(ctx context.Context, in models.RegionalAdminInput) (*models.RegionalAdmin, error)
	Update(ctx context.Context, id string, in models.RegionalAdminInput) (*models.RegionalAdmin, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) []*models.RegionalAdmin
	GetByID(ctx context.Context, id string) (*models.RegionalAdmin, error)
	GetActive(ctx context.Context) []*models.RegionalAdmin
}

type RegionalAdminService interface {
	ListAdmins(ctx context.Context, actor models.Actor) ([]*models.RegionalAdmin, error)
	ListAssignable(ctx context.Context, actor models.Actor) ([]*models.RegionalAdmin, error)
	CreateAdmin(ctx context.Context, actor models.Actor, in models.RegionalAdminInput) (*models.RegionalAdmin, error)
	UpdateAdmin(ctx context.Context, actor models.Actor, id string, in models.RegionalAdminInput) (*models.RegionalAdmin, error)
	DeleteAdmin(ctx context.Context, actor models.Actor, id string) error
}

type regionalAdminService struct {
	repo   RegionalAdminRepository
	policy *access.Policy
	logger *logrus.Logger
}

func NewRegionalAdminService(repo RegionalAdminRepository, policy *access.Policy, logger *logrus.Logger) RegionalAdminService {
	return &regionalAdminService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// ListAdmins - полный справочник для супер-администратора, свой регион для регионального
func (s *regionalAdminService) ListAdmins(ctx context.Context, actor models.Actor) ([]*models.RegionalAdmin, error) {
	if err := s.policy.Authorize(actor, access.ResourceAdmin, access.ActionRead); err != nil {
		return nil, err
	}
	return s.inScope(actor, s.repo.GetAll(ctx)), nil
}

// ListAssignable возвращает активных администраторов, которым можно назначить инцидент
func (s *regionalAdminService) ListAssignable(ctx context.Context, actor models.Actor) ([]*models.RegionalAdmin, error) {
	if err := s.policy.Authorize(actor, access.ResourceAdmin, access.ActionRead); err != nil {
		return nil, err
	}
	return s.inScope(actor, s.repo.GetActive(ctx)), nil
}

func (s *regionalAdminService) CreateAdmin(ctx context.Context, actor models.Actor, in models.RegionalAdminInput) (*models.RegionalAdmin, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "regional_admin",
		"method":  "CreateAdmin",
		"region":  in.Region,
	})
	log.Info("Attempting to create regional admin")

	if err := s.policy.Authorize(actor, access.ResourceAdmin, access.ActionManage); err != nil {
		log.WithError(err).Warn("Actor is not allowed to manage admins")
		return nil, err
	}

	admin, err := s.repo.Create(ctx, in)
	if err != nil {
		log.WithError(err).Warn("Failed to create regional admin in repository")
		return nil, fmt.Errorf("service: could not create regional admin: %w", err)
	}

	log.WithField("admin_id", admin.ID).Info("Regional admin created successfully")
	return admin, nil
}

func (s *regionalAdminService) UpdateAdmin(ctx context.Context, actor models.Actor, id string, in models.RegionalAdminInput) (*models.RegionalAdmin, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "regional_admin",
		"method":   "UpdateAdmin",
		"admin_id": id,
	})
	log.Info("Attempting to update regional admin")

	if err := s.policy.Authorize(actor, access.ResourceAdmin, access.ActionManage); err != nil {
		return nil, err
	}

	admin, err := s.repo.Update(ctx, id, in)
	if err != nil {
		log.WithError(err).Warn("Failed to update regional admin in repository")
		return nil, fmt.Errorf("service: could not update regional admin: %w", err)
	}

	log.Info("Regional admin updated successfully")
	return admin, nil
}

func (s *regionalAdminService) DeleteAdmin(ctx context.Context, actor models.Actor, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "regional_admin",
		"method":   "DeleteAdmin",
		"admin_id": id,
	})

	if err := s.policy.Authorize(actor, access.ResourceAdmin, access.ActionManage); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete regional admin in repository")
		return fmt.Errorf("service: could not delete regional admin: %w", err)
	}

	log.Info("Regional admin deleted successfully")
	return nil
}

func (s *regionalAdminService) inScope(actor models.Actor, admins []*models.RegionalAdmin) []*models.RegionalAdmin {
	if actor.IsSuperAdmin() {
		return admins
	}
	scoped := make([]*models.RegionalAdmin, 0, len(admins))
	for _, a := range admins {
		if a.Region == actor.Region {
			scoped = append(scoped, a)
		}
	}
	return scoped
}
