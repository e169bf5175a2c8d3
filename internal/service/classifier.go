package service

import (
	"context"

	"github.com/shenikar/urgences_dashboard/internal/access"
	"github.com/shenikar/urgences_dashboard/internal/classifier"
	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=classifier.go -destination=mocks/classifier.go -package=mocks

// ImageClassifier - модель, предлагающая тип инцидента по изображению
type ImageClassifier interface {
	Classify(ctx context.Context, img classifier.Image) classifier.Result
}

type ClassifierService interface {
	ClassifyImage(ctx context.Context, actor models.Actor, img classifier.Image) (classifier.Result, error)
}

type classifierService struct {
	model  ImageClassifier
	policy *access.Policy
	logger *logrus.Logger
}

func NewClassifierService(model ImageClassifier, policy *access.Policy, logger *logrus.Logger) ClassifierService {
	return &classifierService{
		model:  model,
		policy: policy,
		logger: logger,
	}
}

// ClassifyImage не возвращает ошибок модели: при неудаче результат имеет тип UNKNOWN
func (s *classifierService) ClassifyImage(ctx context.Context, actor models.Actor, img classifier.Image) (classifier.Result, error) {
	if err := s.policy.Authorize(actor, access.ResourceClassifier, access.ActionRead); err != nil {
		return classifier.Result{}, err
	}

	result := s.model.Classify(ctx, img)
	s.logger.WithFields(logrus.Fields{
		"service":    "classifier",
		"method":     "ClassifyImage",
		"image":      img.Name,
		"type":       result.Type,
		"sub_type":   result.SubType,
		"confidence": result.Confidence,
	}).Info("Image classified")
	return result, nil
}
