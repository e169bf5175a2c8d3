package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/config"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/shenikar/urgences_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, in models.IncidentInput) (*models.Incident, error)
	GetAll(ctx context.Context) []*models.Incident
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	GetByRegion(ctx context.Context, region string) []*models.Incident
	GetByUserID(ctx context.Context, userID string) []*models.Incident
	UpdateStatus(ctx context.Context, id string, status models.IncidentStatus) (*models.Incident, error)
	UpdateStatusIf(ctx context.Context, id string, status models.IncidentStatus, guard models.StatusGuard) (*models.Incident, error)
	AddComment(ctx context.Context, id, author, message string) (*models.Incident, error)
	Assign(ctx context.Context, id, adminID string) (*models.Incident, error)
}

// IncidentService определяет контракт бизнес-логики инцидентов с учетом прав участника
type IncidentService interface {
	ReportIncident(ctx context.Context, actor models.Actor, in models.IncidentInput) (*models.Incident, error)
	GetIncident(ctx context.Context, actor models.Actor, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context, actor models.Actor, filter access.IncidentFilter) ([]*models.Incident, error)
	ListMyIncidents(ctx context.Context, actor models.Actor) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.IncidentStatus) (*models.Incident, error)
	AddComment(ctx context.Context, actor models.Actor, id, message string) (*models.Incident, error)
	AssignIncident(ctx context.Context, actor models.Actor, id, adminID string) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	admins    RegionalAdminRepository
	policy    *access.Policy
	publisher webhook.EventPublisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewIncidentService(
	repo IncidentRepository,
	admins RegionalAdminRepository,
	policy *access.Policy,
	publisher webhook.EventPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	return &incidentService{
		repo:      repo,
		admins:    admins,
		policy:    policy,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// ReportIncident создает инцидент от имени участника
func (s *incidentService) ReportIncident(ctx context.Context, actor models.Actor, in models.IncidentInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ReportIncident",
		"actor_id": actor.ID,
		"type":     in.Type,
		"sub_type": in.SubType,
	})
	log.Info("Attempting to report a new incident")

	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionCreate); err != nil {
		log.WithError(err).Warn("Actor is not allowed to report incidents")
		return nil, err
	}

	if actor.ID != "" {
		in.UserID = actor.ID
	}

	incident, err := s.repo.Create(ctx, in)
	if err != nil {
		log.WithError(err).Warn("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	s.publish(ctx, webhook.EventIncidentCreated, incident, actor)
	s.scheduleDispatch(incident, actor)
	return incident, nil
}

// GetIncident возвращает инцидент, если участник имеет к нему доступ
func (s *incidentService) GetIncident(ctx context.Context, actor models.Actor, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionRead); err != nil {
		return nil, err
	}
	incident, err := s.accessible(ctx, actor, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты, видимые участнику, с примененными фильтрами.
// Региональная выборка делается до фильтров, результат отсортирован от новых к старым.
func (s *incidentService) ListIncidents(ctx context.Context, actor models.Actor, filter access.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"role":    actor.Role,
		"region":  actor.Region,
	})
	log.Info("Listing incidents")

	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionRead); err != nil {
		return nil, err
	}

	incidents := filter.Apply(s.scoped(ctx, actor))
	sortNewestFirst(incidents)

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// ListMyIncidents - история обращений участника
func (s *incidentService) ListMyIncidents(ctx context.Context, actor models.Actor) ([]*models.Incident, error) {
	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionRead); err != nil {
		return nil, err
	}
	if actor.ID == "" {
		return []*models.Incident{}, nil
	}
	incidents := s.repo.GetByUserID(ctx, actor.ID)
	sortNewestFirst(incidents)
	return incidents, nil
}

// UpdateStatus выставляет статус. По умолчанию допускается любой переход,
// в строгом режиме запрещен возврат к более раннему статусу.
func (s *incidentService) UpdateStatus(ctx context.Context, actor models.Actor, id string, status models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionManage); err != nil {
		log.WithError(err).Warn("Actor is not allowed to update status")
		return nil, err
	}
	if _, err := s.accessible(ctx, actor, id); err != nil {
		log.WithError(err).Warn("Attempted to update status of an inaccessible incident")
		return nil, fmt.Errorf("service: incident %s not available for status update: %w", id, err)
	}

	var incident *models.Incident
	var err error
	if s.cfg.StrictStatusTransitions {
		incident, err = s.repo.UpdateStatusIf(ctx, id, status, forwardOnly(status))
	} else {
		incident, err = s.repo.UpdateStatus(ctx, id, status)
	}
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			log.WithError(err).Warn("Status update rejected")
			return nil, err
		}
		log.WithError(err).Error("Failed to update status in repository")
		return nil, fmt.Errorf("service: could not update status: %w", err)
	}

	log.Info("Incident status updated successfully")
	s.publish(ctx, webhook.EventIncidentStatus, incident, actor)
	return incident, nil
}

// AddComment добавляет комментарий администратора
func (s *incidentService) AddComment(ctx context.Context, actor models.Actor, id, message string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddComment",
		"incident_id": id,
	})

	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionManage); err != nil {
		return nil, err
	}
	if _, err := s.accessible(ctx, actor, id); err != nil {
		log.WithError(err).Warn("Attempted to comment an inaccessible incident")
		return nil, fmt.Errorf("service: incident %s not available for comments: %w", id, err)
	}

	incident, err := s.repo.AddComment(ctx, id, authorName(actor), message)
	if err != nil {
		log.WithError(err).Warn("Failed to add comment in repository")
		return nil, fmt.Errorf("service: could not add comment: %w", err)
	}

	log.WithField("comments", len(incident.Comments)).Info("Comment added successfully")
	return incident, nil
}

// AssignIncident назначает инцидент администратору. Существование администратора
// не проверяется: неизвестный идентификатор только логируется.
func (s *incidentService) AssignIncident(ctx context.Context, actor models.Actor, id, adminID string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AssignIncident",
		"incident_id": id,
		"admin_id":    adminID,
	})
	log.Info("Attempting to assign incident")

	if err := s.policy.Authorize(actor, access.ResourceIncident, access.ActionManage); err != nil {
		return nil, err
	}
	if _, err := s.accessible(ctx, actor, id); err != nil {
		log.WithError(err).Warn("Attempted to assign an inaccessible incident")
		return nil, fmt.Errorf("service: incident %s not available for assignment: %w", id, err)
	}

	if _, err := s.admins.GetByID(ctx, adminID); err != nil {
		log.Warn("Assigning incident to an admin missing from the directory")
	}

	incident, err := s.repo.Assign(ctx, id, adminID)
	if err != nil {
		log.WithError(err).Error("Failed to assign incident in repository")
		return nil, fmt.Errorf("service: could not assign incident: %w", err)
	}

	log.Info("Incident assigned successfully")
	s.publish(ctx, webhook.EventIncidentAssigned, incident, actor)
	return incident, nil
}

// scoped возвращает выборку, доступную участнику, до применения фильтров
func (s *incidentService) scoped(ctx context.Context, actor models.Actor) []*models.Incident {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.repo.GetAll(ctx)
	case models.RoleRegionalAdmin:
		return s.repo.GetByRegion(ctx, actor.Region)
	default:
		if actor.ID == "" {
			return []*models.Incident{}
		}
		return s.repo.GetByUserID(ctx, actor.ID)
	}
}

func (s *incidentService) accessible(ctx context.Context, actor models.Actor, id string) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessIncident(actor, incident) {
		return nil, fmt.Errorf("incident %s is outside of the actor scope: %w", id, models.ErrForbidden)
	}
	return incident, nil
}

var errStatusChanged = errors.New("incident status changed")

// scheduleDispatch переводит срочный инцидент в RESPONDERS_EN_ROUTE через заданную задержку,
// если статус к этому моменту не менялся
func (s *incidentService) scheduleDispatch(incident *models.Incident, actor models.Actor) {
	if s.cfg.AutoDispatchDelay <= 0 || incident.Type != models.VitalEmergency {
		return
	}
	id := incident.ID
	time.AfterFunc(s.cfg.AutoDispatchDelay, func() {
		ctx := context.Background()
		log := s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"method":      "autoDispatch",
			"incident_id": id,
		})
		updated, err := s.repo.UpdateStatusIf(ctx, id, models.StatusRespondersEnRoute, func(current models.IncidentStatus) error {
			if current != models.StatusAlertReceived {
				return errStatusChanged
			}
			return nil
		})
		if errors.Is(err, errStatusChanged) {
			log.Debug("Incident status changed before auto-dispatch, skipping")
			return
		}
		if err != nil {
			log.WithError(err).Error("Failed to auto-dispatch incident")
			return
		}
		log.Info("Incident auto-dispatched")
		s.publish(ctx, webhook.EventIncidentStatus, updated, actor)
	})
}

func (s *incidentService) publish(ctx context.Context, kind webhook.EventKind, incident *models.Incident, actor models.Actor) {
	if err := s.publisher.Publish(ctx, webhook.NewIncidentEvent(kind, incident, actor)); err != nil {
		s.logger.WithError(err).WithField("incident_id", incident.ID).Warn("Failed to publish incident event")
	}
}

// forwardOnly запрещает возврат к более раннему статусу
func forwardOnly(next models.IncidentStatus) models.StatusGuard {
	return func(current models.IncidentStatus) error {
		if next.Rank() < current.Rank() {
			return models.NewValidationError("status", fmt.Sprintf("cannot move back from %s to %s", current, next))
		}
		return nil
	}
}

func authorName(actor models.Actor) string {
	if actor.Name != "" {
		return actor.Name
	}
	return string(actor.Role)
}

func sortNewestFirst(incidents []*models.Incident) {
	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})
}
