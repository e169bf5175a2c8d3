package service

import (
	"context"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=stats.go -destination=mocks/stats.go -package=mocks

type StatsService interface {
	Stats(ctx context.Context, actor models.Actor) (*models.DashboardStats, error)
}

type statsService struct {
	incidents IncidentRepository
	alerts    AlertRepository
	admins    RegionalAdminRepository
	policy    *access.Policy
	logger    *logrus.Logger
}

func NewStatsService(
	incidents IncidentRepository,
	alerts AlertRepository,
	admins RegionalAdminRepository,
	policy *access.Policy,
	logger *logrus.Logger,
) StatsService {
	return &statsService{
		incidents: incidents,
		alerts:    alerts,
		admins:    admins,
		policy:    policy,
		logger:    logger,
	}
}

// Stats считает показатели по выборке, доступной участнику
func (s *statsService) Stats(ctx context.Context, actor models.Actor) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "Stats",
		"role":    actor.Role,
		"region":  actor.Region,
	})

	if err := s.policy.Authorize(actor, access.ResourceStats, access.ActionRead); err != nil {
		log.WithError(err).Warn("Actor is not allowed to read stats")
		return nil, err
	}

	var (
		incidents []*models.Incident
		alerts    []*models.Alert
	)
	if actor.IsSuperAdmin() {
		incidents = s.incidents.GetAll(ctx)
		alerts = s.alerts.GetAll(ctx)
	} else {
		incidents = s.incidents.GetByRegion(ctx, actor.Region)
		alerts = s.alerts.GetByRegion(ctx, actor.Region)
	}

	stats := &models.DashboardStats{TotalIncidents: len(incidents), TotalAlerts: len(alerts)}
	for _, i := range incidents {
		if i.Status == models.StatusResolved {
			stats.Resolved++
		} else {
			stats.ActiveIncidents++
		}
		switch i.Type {
		case models.VitalEmergency:
			stats.VitalEmergency++
		case models.CivilProblem:
			stats.CivilProblem++
		}
	}
	for _, a := range alerts {
		if a.Active {
			stats.ActiveAlerts++
		}
	}
	if actor.IsSuperAdmin() {
		stats.TotalAdmins = len(s.admins.GetAll(ctx))
	}

	log.WithField("total_incidents", stats.TotalIncidents).Info("Dashboard stats computed")
	return stats, nil
}
