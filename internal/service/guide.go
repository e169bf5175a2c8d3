package service

import (
	"context"
	"fmt"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=guide.go -destination=mocks/guide.go -package=mocks

// GuideRepository определяет контракт хранилища памяток
type GuideRepository interface {
	Create(ctx context.Context, in models.GuideInput) (*models.Guide, error)
	GetAll(ctx context.Context) []*models.Guide
	GetByID(ctx context.Context, id string) (*models.Guide, error)
	Replace(ctx context.Context, id string, in models.GuideInput) (*models.Guide, error)
	Delete(ctx context.Context, id string) error
}

type GuideService interface {
	ListGuides(ctx context.Context, actor models.Actor) ([]*models.Guide, error)
	GetGuide(ctx context.Context, actor models.Actor, id string) (*models.Guide, error)
	CreateGuide(ctx context.Context, actor models.Actor, in models.GuideInput) (*models.Guide, error)
	UpdateGuide(ctx context.Context, actor models.Actor, id string, in models.GuideInput) (*models.Guide, error)
	DeleteGuide(ctx context.Context, actor models.Actor, id string) error
}

type guideService struct {
	repo   GuideRepository
	policy *access.Policy
	logger *logrus.Logger
}

func NewGuideService(repo GuideRepository, policy *access.Policy, logger *logrus.Logger) GuideService {
	return &guideService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

func (s *guideService) ListGuides(ctx context.Context, actor models.Actor) ([]*models.Guide, error) {
	if err := s.policy.Authorize(actor, access.ResourceGuide, access.ActionRead); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx), nil
}

func (s *guideService) GetGuide(ctx context.Context, actor models.Actor, id string) (*models.Guide, error) {
	if err := s.policy.Authorize(actor, access.ResourceGuide, access.ActionRead); err != nil {
		return nil, err
	}
	guide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get guide: %w", err)
	}
	return guide, nil
}

func (s *guideService) CreateGuide(ctx context.Context, actor models.Actor, in models.GuideInput) (*models.Guide, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "guide",
		"method":   "CreateGuide",
		"category": in.Category,
	})
	log.Info("Attempting to create guide")

	if err := s.policy.Authorize(actor, access.ResourceGuide, access.ActionManage); err != nil {
		log.WithError(err).Warn("Actor is not allowed to create guides")
		return nil, err
	}

	guide, err := s.repo.Create(ctx, in)
	if err != nil {
		log.WithError(err).Warn("Failed to create guide in repository")
		return nil, fmt.Errorf("service: could not create guide: %w", err)
	}

	log.WithField("guide_id", guide.ID).Info("Guide created successfully")
	return guide, nil
}

// UpdateGuide заменяет содержимое памятки, идентификатор и дата создания сохраняются
func (s *guideService) UpdateGuide(ctx context.Context, actor models.Actor, id string, in models.GuideInput) (*models.Guide, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "guide",
		"method":   "UpdateGuide",
		"guide_id": id,
	})
	log.Info("Attempting to update guide")

	if err := s.policy.Authorize(actor, access.ResourceGuide, access.ActionManage); err != nil {
		return nil, err
	}

	guide, err := s.repo.Replace(ctx, id, in)
	if err != nil {
		log.WithError(err).Warn("Failed to replace guide in repository")
		return nil, fmt.Errorf("service: could not update guide: %w", err)
	}

	log.Info("Guide updated successfully")
	return guide, nil
}

func (s *guideService) DeleteGuide(ctx context.Context, actor models.Actor, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "guide",
		"method":   "DeleteGuide",
		"guide_id": id,
	})

	if err := s.policy.Authorize(actor, access.ResourceGuide, access.ActionManage); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete guide in repository")
		return fmt.Errorf("service: could not delete guide: %w", err)
	}

	log.Info("Guide deleted successfully")
	return nil
}
