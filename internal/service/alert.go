package service

import (
	"context"
	"fmt"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/alert.go -package=mocks

// AlertRepository определяет контракт хранилища оповещений
type AlertRepository interface {
	Create(ctx context.Context, in models.AlertInput) (*models.Alert, error)
	Update(ctx context.Context, id string, in models.AlertInput) (*models.Alert, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) []*models.Alert
	GetByID(ctx context.Context, id string) (*models.Alert, error)
	GetByRegion(ctx context.Context, region string) []*models.Alert
}

type AlertService interface {
	ListAlerts(ctx context.Context, actor models.Actor) ([]*models.Alert, error)
	CreateAlert(ctx context.Context, actor models.Actor, in models.AlertInput) (*models.Alert, error)
	UpdateAlert(ctx context.Context, actor models.Actor, id string, in models.AlertInput) (*models.Alert, error)
	DeleteAlert(ctx context.Context, actor models.Actor, id string) error
}

type alertService struct {
	repo   AlertRepository
	policy *access.Policy
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, policy *access.Policy, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// ListAlerts возвращает оповещения, видимые участнику.
// Гражданин видит только активные: глобальные и своего региона.
func (s *alertService) ListAlerts(ctx context.Context, actor models.Actor) ([]*models.Alert, error) {
	if err := s.policy.Authorize(actor, access.ResourceAlert, access.ActionRead); err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.repo.GetAll(ctx), nil
	case models.RoleRegionalAdmin:
		return s.repo.GetByRegion(ctx, actor.Region), nil
	}

	visible := s.repo.GetByRegion(ctx, actor.Region)
	active := make([]*models.Alert, 0, len(visible))
	for _, a := range visible {
		if a.Active {
			active = append(active, a)
		}
	}
	return active, nil
}

// CreateAlert создает оповещение. Региональный администратор может создавать
// только региональные оповещения своего региона. Регион сверяется после нормализации ввода.
func (s *alertService) CreateAlert(ctx context.Context, actor models.Actor, in models.AlertInput) (*models.Alert, error) {
	in.Normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
		"scope":   in.Scope,
		"region":  in.Region,
	})
	log.Info("Attempting to create alert")

	if err := s.policy.Authorize(actor, access.ResourceAlert, access.ActionManage); err != nil {
		log.WithError(err).Warn("Actor is not allowed to create alerts")
		return nil, err
	}
	if err := checkAlertScope(actor, in); err != nil {
		log.WithError(err).Warn("Alert scope is outside of the actor region")
		return nil, err
	}

	alert, err := s.repo.Create(ctx, in)
	if err != nil {
		log.WithError(err).Warn("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return alert, nil
}

func (s *alertService) UpdateAlert(ctx context.Context, actor models.Actor, id string, in models.AlertInput) (*models.Alert, error) {
	in.Normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlert",
		"alert_id": id,
	})
	log.Info("Attempting to update alert")

	if err := s.policy.Authorize(actor, access.ResourceAlert, access.ActionManage); err != nil {
		return nil, err
	}
	if err := s.checkExisting(ctx, actor, id); err != nil {
		log.WithError(err).Warn("Alert is not available for update")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}
	if err := checkAlertScope(actor, in); err != nil {
		return nil, err
	}

	alert, err := s.repo.Update(ctx, id, in)
	if err != nil {
		log.WithError(err).Warn("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}

	log.Info("Alert updated successfully")
	return alert, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, actor models.Actor, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeleteAlert",
		"alert_id": id,
	})
	log.Info("Attempting to delete alert")

	if err := s.policy.Authorize(actor, access.ResourceAlert, access.ActionManage); err != nil {
		return err
	}
	if err := s.checkExisting(ctx, actor, id); err != nil {
		log.WithError(err).Warn("Alert is not available for deletion")
		return fmt.Errorf("service: could not delete alert: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete alert in repository")
		return fmt.Errorf("service: could not delete alert: %w", err)
	}

	log.Info("Alert deleted successfully")
	return nil
}

func (s *alertService) checkExisting(ctx context.Context, actor models.Actor, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if existing.Scope != models.ScopeRegional || !access.CanManageRegion(actor, existing.Region) {
		return fmt.Errorf("alert %s belongs to another scope: %w", id, models.ErrForbidden)
	}
	return nil
}

func checkAlertScope(actor models.Actor, in models.AlertInput) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if in.Scope != models.ScopeRegional || !access.CanManageRegion(actor, in.Region) {
		return fmt.Errorf("regional admins may only manage REGIONAL alerts of %s: %w", actor.Region, models.ErrForbidden)
	}
	return nil
}
